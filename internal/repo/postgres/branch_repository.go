package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
)

var _ ports.BranchSource = (*BranchRepository)(nil)

// BranchRepository — справочник филиалов на Postgres.
type BranchRepository struct {
	pool *pgxpool.Pool
}

// NewBranchRepository — конструктор BranchRepository.
func NewBranchRepository(pool *pgxpool.Pool) *BranchRepository { return &BranchRepository{pool: pool} }

const branchColumns = `id, name, branch_type, address, contact_phone, sorting_window_hours, updated_at`

// GetBranch — филиал по id; отсутствие оборачивает domain.ErrNotFound.
func (r *BranchRepository) GetBranch(ctx context.Context, id string) (*domain.Branch, error) {
	b, err := scanBranch(r.pool.QueryRow(ctx, `SELECT `+branchColumns+` FROM branches WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: branch %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("select branch: %w", err)
	}
	return b, nil
}

// ListBranches — первые limit филиалов (по id), для прогрева кэша.
func (r *BranchRepository) ListBranches(ctx context.Context, limit int) ([]*domain.Branch, error) {
	if limit <= 0 {
		return []*domain.Branch{}, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+branchColumns+` FROM branches ORDER BY id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("select branches: %w", err)
	}
	defer rows.Close()

	list := make([]*domain.Branch, 0, limit)
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("branches rows: %w", err)
	}
	return list, nil
}

// Upsert — записать филиал (админские изменения, тестовые данные).
func (r *BranchRepository) Upsert(ctx context.Context, b *domain.Branch) error {
	return upsertBranch(ctx, r.pool, b)
}

// execer — общий интерфейс пула и транзакции.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func upsertBranch(ctx context.Context, db execer, b *domain.Branch) error {
	if b == nil || b.ID == "" {
		return errors.New("branch is empty or id is required")
	}
	if _, err := db.Exec(ctx, `
		INSERT INTO branches (id, name, branch_type, address, contact_phone, sorting_window_hours, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			branch_type = EXCLUDED.branch_type,
			address = EXCLUDED.address,
			contact_phone = EXCLUDED.contact_phone,
			sorting_window_hours = EXCLUDED.sorting_window_hours,
			updated_at = now()
	`, b.ID, b.Name, string(b.Type), b.Address, b.ContactPhone, b.SortingWindowHours); err != nil {
		return fmt.Errorf("upsert branch: %w", err)
	}
	return nil
}

func scanBranch(row pgx.Row) (*domain.Branch, error) {
	var (
		b     domain.Branch
		btype string
	)
	if err := row.Scan(&b.ID, &b.Name, &btype, &b.Address, &b.ContactPhone, &b.SortingWindowHours, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Type = domain.BranchType(btype)
	return &b, nil
}
