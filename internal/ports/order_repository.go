package ports

import (
	"context"

	"github.com/Gunvolt24/cleanpos/internal/domain"
)

// OrderRepository — хранилище заказов.
// GetByID возвращает (nil, nil), если заказа нет.
type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
}
