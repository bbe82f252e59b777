//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/cleanpos/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeBranch — валидный филиал с уникальным id.
func MakeBranch(opts ...func(*domain.Branch)) domain.Branch {
	window := 6.0
	b := domain.Branch{
		ID:                 "br-" + UniqSuffix(),
		Name:               "Central",
		Type:               domain.BranchMain,
		Address:            "Main st 1",
		ContactPhone:       "+1-202-555-01",
		SortingWindowHours: &window,
	}
	for _, fn := range opts {
		fn(&b)
	}
	return b
}

// MakeOrder — мини-генератор валидного заказа со снимком филиала.
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	now := time.Now().UTC().Truncate(time.Second)
	arrived := now.Add(-time.Hour)
	branch := MakeBranch()

	o := domain.Order{
		ID:                 "ord-" + UniqSuffix(),
		CustomerID:         "cust-" + UniqSuffix(),
		ProcessingBranchID: branch.ID,
		Status:             domain.OrderSorting,
		ArrivedAtBranchAt:  &arrived,
		CreatedAt:          now.Add(-2 * time.Hour),
		Branch:             &branch,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithCustomer(cust string) func(*domain.Order) {
	return func(o *domain.Order) { o.CustomerID = cust }
}

func WithOrderID(id string) func(*domain.Order) {
	return func(o *domain.Order) { o.ID = id }
}

// WithoutBranch — заказ без филиала обработки.
func WithoutBranch() func(*domain.Order) {
	return func(o *domain.Order) {
		o.ProcessingBranchID = ""
		o.Branch = nil
		o.ArrivedAtBranchAt = nil
	}
}

// MakeTransaction — операция журнала лояльности.
func MakeTransaction(customerID string, t domain.TransactionType, points int, at time.Time) domain.LoyaltyTransaction {
	return domain.LoyaltyTransaction{
		ID:          "tx-" + UniqSuffix(),
		Type:        t,
		Points:      points,
		CustomerID:  customerID,
		LoyaltyID:   "L-" + customerID,
		Description: string(t),
		CreatedAt:   at.UTC().Truncate(time.Microsecond),
	}
}
