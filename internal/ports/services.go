package ports

import (
	"context"

	"github.com/Gunvolt24/cleanpos/internal/domain"
)

// Контракты прикладных сервисов, которые использует транспортный слой.

// OrderReadService — чтение заказов; (nil, nil), если заказа нет.
type OrderReadService interface {
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

// BranchReader — справочник филиалов поверх кэша.
type BranchReader interface {
	Resolve(ctx context.Context, branchID string) (*domain.Branch, error)
	ResolveName(ctx context.Context, branchID string) string
	Seed(ctx context.Context, branch *domain.Branch)
	Invalidate(ctx context.Context, branchID string)
	InvalidateAll(ctx context.Context)
}

// DeliveryValidator — проверка предложенного времени доставки заказа.
type DeliveryValidator interface {
	ValidateDelivery(ctx context.Context, orderID, scheduledTime string) (*domain.DeliveryValidationResult, error)
}

// TransactionQuery — запрос журнала лояльности из HTTP.
type TransactionQuery struct {
	CustomerID string
	LoyaltyID  string
	Type       string
	Limit      int
}

// LoyaltyReader — журнал операций с агрегатами.
type LoyaltyReader interface {
	Transactions(ctx context.Context, query TransactionQuery) (*domain.LedgerPage, error)
}

// WeatherReader — текущая погода (через TTL-кэш).
type WeatherReader interface {
	Current(ctx context.Context, location string) (*domain.Weather, error)
}
