package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
)

// Подписи для отображения, когда филиал определить нельзя.
const (
	NoBranchAssigned = "No branch assigned"
	UnknownBranch    = "Unknown branch"
)

var _ ports.BranchReader = (*BranchResolver)(nil)

var tracer = otel.Tracer("github.com/Gunvolt24/cleanpos/internal/usecase")

// BranchResolver — справочник филиалов поверх single-flight кэша.
// Resolve отдаёт ошибки как есть; ResolveName/ResolveRecord подставляют заглушки
// и пишут причину в лог.
type BranchResolver struct {
	source       ports.BranchSource
	cache        ports.BranchCache
	log          ports.Logger
	fetchTimeout time.Duration
}

// NewBranchResolver — DI-конструктор. fetchTimeout ограничивает одну загрузку из хранилища
// (загрузка идёт на контексте без отмены); 0 — без ограничения.
func NewBranchResolver(
	source ports.BranchSource,
	cache ports.BranchCache,
	log ports.Logger,
	fetchTimeout time.Duration,
) *BranchResolver {
	return &BranchResolver{
		source:       source,
		cache:        cache,
		log:          log,
		fetchTimeout: fetchTimeout,
	}
}

// Resolve — получить филиал по id. Пустой id —> domain.ErrNoBranchAssigned.
// Отсутствующий филиал оборачивает domain.ErrNotFound, сбой хранилища — domain.ErrUpstream.
func (r *BranchResolver) Resolve(ctx context.Context, branchID string) (*domain.Branch, error) {
	if branchID == "" {
		return nil, domain.ErrNoBranchAssigned
	}
	branch, err := r.cache.Get(ctx, branchID, func(fetchCtx context.Context) (domain.Branch, error) {
		return r.fetch(fetchCtx, branchID)
	})
	if err != nil {
		return nil, err
	}
	return branch.Clone(), nil
}

// ResolveName — имя филиала для отображения.
func (r *BranchResolver) ResolveName(ctx context.Context, branchID string) string {
	if branchID == "" {
		return NoBranchAssigned
	}
	branch, err := r.Resolve(ctx, branchID)
	if err != nil {
		r.log.Warnf(ctx, "branch name unresolved branch_id=%s err=%v", branchID, err)
		return UnknownBranch
	}
	return branch.Name
}

// ResolveRecord — запись филиала или nil, если её нет или загрузка не удалась.
func (r *BranchResolver) ResolveRecord(ctx context.Context, branchID string) *domain.Branch {
	if branchID == "" {
		return nil
	}
	branch, err := r.Resolve(ctx, branchID)
	if err != nil {
		r.log.Warnf(ctx, "branch record unresolved branch_id=%s err=%v", branchID, err)
		return nil
	}
	return branch
}

// Seed — положить снимок филиала в кэш (например, пришедший вместе с заказом).
// Снимок старше закэшированного (по UpdatedAt) отбрасывается.
func (r *BranchResolver) Seed(ctx context.Context, branch *domain.Branch) {
	if branch == nil || branch.ID == "" {
		return
	}
	snapshot := *branch.Clone()
	stored := r.cache.SeedIf(branch.ID, snapshot, func(current domain.Branch) bool {
		return !current.UpdatedAt.After(snapshot.UpdatedAt)
	})
	if !stored {
		r.log.Infof(ctx, "branch seed skipped: cached snapshot is newer branch_id=%s", branch.ID)
	}
}

// Invalidate — сбросить один филиал (после его изменения в хранилище).
func (r *BranchResolver) Invalidate(ctx context.Context, branchID string) {
	r.cache.Forget(branchID)
	r.log.Infof(ctx, "branch cache invalidated branch_id=%s", branchID)
}

// InvalidateAll — сбросить весь справочник.
func (r *BranchResolver) InvalidateAll(ctx context.Context) {
	r.cache.Clear()
	r.log.Infof(ctx, "branch cache cleared")
}

// WarmUp — прогрев кэша первыми n филиалами из хранилища.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (r *BranchResolver) WarmUp(ctx context.Context, n int) error {
	if n <= 0 {
		r.log.Warnf(ctx, "branch warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := r.source.ListBranches(ctx, n)
	if err != nil {
		r.log.Errorf(ctx, "source.ListBranches failed n=%d err=%v", n, err)
		return err
	}
	for _, b := range list {
		r.Seed(ctx, b)
	}
	r.log.Infof(ctx, "branch cache warmed with %d branches in %s", len(list), time.Since(start))
	return nil
}

// fetch — одна загрузка из хранилища, обёрнутая в span.
func (r *BranchResolver) fetch(ctx context.Context, branchID string) (domain.Branch, error) {
	if r.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.fetchTimeout)
		defer cancel()
	}
	ctx, span := tracer.Start(ctx, "branch.fetch")
	defer span.End()
	span.SetAttributes(attribute.String("branch.id", branchID))

	branch, err := r.source.GetBranch(ctx, branchID)
	if err == nil && branch == nil {
		err = fmt.Errorf("%w: branch %s", domain.ErrNotFound, branchID)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "branch fetch failed")
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Branch{}, err
		}
		r.log.Errorf(ctx, "source.GetBranch failed branch_id=%s err=%v", branchID, err)
		return domain.Branch{}, fmt.Errorf("%w: branch %s: %w", domain.ErrUpstream, branchID, err)
	}
	return *branch.Clone(), nil
}
