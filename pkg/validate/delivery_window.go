package validate

import (
	"fmt"
	"time"

	"github.com/Gunvolt24/cleanpos/internal/domain"
)

// DefaultSortingWindowHours — окно сортировки, если у филиала оно не настроено.
const DefaultSortingWindowHours = 6.0

// MaxSortingWindowHours — верхняя граница окна (год); больше — обрезается.
const MaxSortingWindowHours = 24 * 365.0

// SortingWindowHours — окно сортировки филиала или значение по умолчанию.
func SortingWindowHours(branch *domain.Branch) float64 {
	if branch == nil || branch.SortingWindowHours == nil {
		return DefaultSortingWindowHours
	}
	hours := *branch.SortingWindowHours
	switch {
	case !(hours > 0): // в том числе NaN
		return DefaultSortingWindowHours
	case hours > MaxSortingWindowHours:
		return MaxSortingWindowHours
	}
	return hours
}

// DeliveryWindow — чистая проверка предложенного времени доставки.
//
// Раннее время доставки:
//   - order.EarliestDeliveryTime, если задано (берётся как есть, даже если противоречит поступлению);
//   - иначе база + окно сортировки, где база — order.ArrivedAtBranchAt или now.
//
// Граница включительная: proposed == earliest считается допустимым.
// order не должен быть nil — наличие заказа и филиала проверяет вызывающий.
func DeliveryWindow(order *domain.Order, branch *domain.Branch, proposed, now time.Time) domain.DeliveryValidationResult {
	hours := SortingWindowHours(branch)

	var earliest time.Time
	var baseline string
	switch {
	case order.EarliestDeliveryTime != nil:
		earliest = *order.EarliestDeliveryTime
		baseline = domain.BaselineEarliestDelivery
	case order.ArrivedAtBranchAt != nil:
		earliest = order.ArrivedAtBranchAt.Add(hoursToDuration(hours))
		baseline = domain.BaselineArrivedAtBranch
	default:
		earliest = now.Add(hoursToDuration(hours))
		baseline = domain.BaselineNow
	}

	res := domain.DeliveryValidationResult{
		Valid:              !proposed.Before(earliest),
		EarliestTime:       earliest,
		ProposedTime:       proposed,
		SortingWindowHours: hours,
		Baseline:           baseline,
	}
	if res.Valid {
		res.Message = "Delivery time is valid"
	} else {
		res.Message = fmt.Sprintf(
			"Delivery cannot be scheduled before %s (sorting window: %g hours)",
			earliest.Format(time.RFC3339), hours,
		)
	}
	return res
}

// ParseScheduledTime — разбор предложенного времени (RFC3339, допускаются доли секунды).
func ParseScheduledTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: scheduledTime is required", domain.ErrInvalidInput)
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: scheduledTime %q is not a valid RFC3339 timestamp", domain.ErrInvalidInput, raw)
	}
	return t, nil
}

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
