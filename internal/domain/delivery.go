package domain

import "time"

// Источник базового времени для расчёта окна доставки.
const (
	BaselineEarliestDelivery = "earliest_delivery_time"
	BaselineArrivedAtBranch  = "arrived_at_branch"
	BaselineNow              = "now"
)

// DeliveryValidationResult — вердикт по предложенному времени доставки.
type DeliveryValidationResult struct {
	Valid              bool      `json:"valid"`
	EarliestTime       time.Time `json:"earliestTime"`
	ProposedTime       time.Time `json:"proposedTime"`
	SortingWindowHours float64   `json:"sortingWindowHours"`
	Message            string    `json:"message"`
	Baseline           string    `json:"baseline"`
}
