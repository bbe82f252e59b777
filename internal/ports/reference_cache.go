package ports

import (
	"context"

	"github.com/Gunvolt24/cleanpos/internal/domain"
)

// BranchCache — кэш филиалов с дедупликацией одновременных загрузок (single-flight).
// Требования к реализации: не больше одной загрузки на ключ одновременно;
// ошибка загрузки не кэшируется и возвращается всем ожидающим.
type BranchCache interface {
	Get(ctx context.Context, branchID string, fetch func(context.Context) (domain.Branch, error)) (domain.Branch, error)
	Seed(branchID string, branch domain.Branch)
	SeedIf(branchID string, branch domain.Branch, replace func(current domain.Branch) bool) bool
	Forget(branchID string)
	Clear()
}

// WeatherCache — тот же контракт для погоды; записи устаревают по TTL.
type WeatherCache interface {
	Get(ctx context.Context, location string, fetch func(context.Context) (domain.Weather, error)) (domain.Weather, error)
	Clear()
}
