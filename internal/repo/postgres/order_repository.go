package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository - конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Save — транзакционно сохраняет заказ (идемпотентный upsert).
// Снимок филиала, пришедший вместе с заказом, обновляет справочник в той же транзакции.
// Ошибка отката (кроме ErrTxClosed после Commit) добавляется к возвращаемой.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) (err error) {
	if order == nil || order.ID == "" {
		return errors.New("order is empty or id is required")
	}
	if order.CustomerID == "" {
		return errors.New("customer_id is required")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = joinRollback(err, transaction.Rollback(ctx))
	}()

	// 1) branches — upsert снимка (если есть).
	if order.Branch != nil {
		if err = upsertBranch(ctx, transaction, order.Branch); err != nil {
			return err
		}
	}

	// 2) orders — upsert по id.
	if _, err = transaction.Exec(ctx, `
		INSERT INTO orders (
			id, customer_id, processing_branch_id, status,
			arrived_at_branch_at, earliest_delivery_time, created_at
		) VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			customer_id = EXCLUDED.customer_id,
			processing_branch_id = EXCLUDED.processing_branch_id,
			status = EXCLUDED.status,
			arrived_at_branch_at = EXCLUDED.arrived_at_branch_at,
			earliest_delivery_time = EXCLUDED.earliest_delivery_time,
			created_at = EXCLUDED.created_at
	`,
		order.ID, order.CustomerID, order.ProcessingBranchID, string(order.Status),
		order.ArrivedAtBranchAt, order.EarliestDeliveryTime, order.CreatedAt,
	); err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}

	// Завершаем транзакцию
	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// joinRollback — добавить ошибку Rollback к err; ErrTxClosed означает, что транзакция уже завершена.
func joinRollback(err, rbErr error) error {
	if rbErr == nil || errors.Is(rbErr, pgx.ErrTxClosed) {
		return err
	}
	return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
}

// GetByID — заказ вместе с филиалом обработки (LEFT JOIN). Если не нашли, возвращает (nil, nil).
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var (
		order      domain.Order
		branchID   *string
		status     string
		bName      *string
		bType      *string
		bAddress   *string
		bPhone     *string
		bWindow    *float64
		bUpdatedAt *time.Time
	)

	err := r.pool.QueryRow(ctx, `
		SELECT o.id, o.customer_id, o.processing_branch_id, o.status,
			o.arrived_at_branch_at, o.earliest_delivery_time, o.created_at,
			b.name, b.branch_type, b.address, b.contact_phone, b.sorting_window_hours, b.updated_at
		FROM orders o
		LEFT JOIN branches b ON b.id = o.processing_branch_id
		WHERE o.id = $1
	`, id).Scan(
		&order.ID, &order.CustomerID, &branchID, &status,
		&order.ArrivedAtBranchAt, &order.EarliestDeliveryTime, &order.CreatedAt,
		&bName, &bType, &bAddress, &bPhone, &bWindow, &bUpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}

	order.Status = domain.OrderStatus(status)
	if branchID != nil {
		order.ProcessingBranchID = *branchID
	}
	// филиал может отсутствовать в справочнике
	if bName != nil {
		order.Branch = &domain.Branch{
			ID:                 order.ProcessingBranchID,
			Name:               *bName,
			Type:               domain.BranchType(deref(bType)),
			Address:            deref(bAddress),
			ContactPhone:       deref(bPhone),
			SortingWindowHours: bWindow,
		}
		if bUpdatedAt != nil {
			order.Branch.UpdatedAt = *bUpdatedAt
		}
	}
	return &order, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
