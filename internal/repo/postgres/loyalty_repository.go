package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
)

var _ ports.LoyaltyRepository = (*LoyaltyRepository)(nil)

// LoyaltyRepository — журнал операций лояльности на Postgres (только чтение и дозапись).
type LoyaltyRepository struct {
	pool *pgxpool.Pool
}

// NewLoyaltyRepository — конструктор LoyaltyRepository.
func NewLoyaltyRepository(pool *pgxpool.Pool) *LoyaltyRepository {
	return &LoyaltyRepository{pool: pool}
}

// ListTransactions — операции по клиенту и/или карте, от новых к старым.
// Фильтр без идентификаторов отклоняется, чтобы не выгрузить весь журнал.
func (r *LoyaltyRepository) ListTransactions(ctx context.Context, f ports.LoyaltyFilter) ([]domain.LoyaltyTransaction, error) {
	var (
		where []string
		args  []any
	)
	if f.CustomerID != "" {
		args = append(args, f.CustomerID)
		where = append(where, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if f.LoyaltyID != "" {
		args = append(args, f.LoyaltyID)
		where = append(where, fmt.Sprintf("loyalty_id = $%d", len(args)))
	}
	if len(where) == 0 {
		return nil, fmt.Errorf("%w: customer_id or loyalty_id is required", domain.ErrInvalidInput)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, `
		SELECT id, type, points, customer_id, loyalty_id, description, created_at
		FROM loyalty_transactions
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY created_at DESC, id DESC
		LIMIT $`+fmt.Sprint(len(args)), args...)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	defer rows.Close()

	list := make([]domain.LoyaltyTransaction, 0, limit)
	for rows.Next() {
		var (
			tx     domain.LoyaltyTransaction
			txType string
		)
		if err := rows.Scan(&tx.ID, &txType, &tx.Points, &tx.CustomerID, &tx.LoyaltyID, &tx.Description, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Type = domain.TransactionType(txType)
		list = append(list, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("transactions rows: %w", err)
	}
	return list, nil
}

// Append — дописать операцию в журнал (записи не изменяются).
func (r *LoyaltyRepository) Append(ctx context.Context, tx domain.LoyaltyTransaction) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO loyalty_transactions (id, type, points, customer_id, loyalty_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, tx.ID, string(tx.Type), tx.Points, tx.CustomerID, tx.LoyaltyID, tx.Description, tx.CreatedAt); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}
