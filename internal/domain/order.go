package domain

import "time"

// OrderStatus — статус заказа химчистки.
type OrderStatus string

const (
	OrderReceived       OrderStatus = "received"
	OrderSorting        OrderStatus = "sorting"
	OrderProcessing     OrderStatus = "processing"
	OrderReady          OrderStatus = "ready"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// Valid — известный ли статус.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderReceived, OrderSorting, OrderProcessing, OrderReady,
		OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order — заказ (только поля, нужные для расчёта окна доставки и справочных данных).
type Order struct {
	ID                 string      `json:"id"`
	CustomerID         string      `json:"customer_id"`
	ProcessingBranchID string      `json:"processing_branch_id"`
	Status             OrderStatus `json:"status"`

	// ArrivedAtBranchAt — момент поступления в филиал обработки.
	ArrivedAtBranchAt *time.Time `json:"arrived_at_branch_at,omitempty"`
	// EarliestDeliveryTime — заранее рассчитанное (авторитетное) раннее время доставки.
	EarliestDeliveryTime *time.Time `json:"earliest_delivery_time,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// Branch — снимок филиала, если он пришёл вместе с заказом (сообщение Kafka, JOIN в БД).
	Branch *Branch `json:"branch,omitempty"`
}
