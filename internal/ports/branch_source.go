package ports

import (
	"context"

	"github.com/Gunvolt24/cleanpos/internal/domain"
)

// BranchSource — источник справочника филиалов.
// GetBranch оборачивает domain.ErrNotFound, если филиала нет.
type BranchSource interface {
	GetBranch(ctx context.Context, branchID string) (*domain.Branch, error)
	ListBranches(ctx context.Context, limit int) ([]*domain.Branch, error)
}
