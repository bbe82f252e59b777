package ports

import (
	"context"

	"github.com/Gunvolt24/cleanpos/internal/domain"
)

// LoyaltyFilter — выборка журнала: хотя бы один из идентификаторов обязателен.
type LoyaltyFilter struct {
	CustomerID string
	LoyaltyID  string
	Limit      int
}

// LoyaltyRepository — журнал операций лояльности (только чтение; порядок — от новых к старым).
type LoyaltyRepository interface {
	ListTransactions(ctx context.Context, filter LoyaltyFilter) ([]domain.LoyaltyTransaction, error)
}
