package validate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// OrderValidator — структура для валидации заказа из потока приёма.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей заказа.
func (v *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if err := v.validateCore(order); err != nil {
		return err
	}
	if err := v.validateTimeline(order); err != nil {
		return err
	}
	return v.validateBranch(order)
}

// validateCore — валидация основных полей заказа.
func (v *OrderValidator) validateCore(order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if order.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidOrder)
	}
	if order.CustomerID == "" {
		return fmt.Errorf("%w: customer_id обязателен", ErrInvalidOrder)
	}
	if !order.Status.Valid() {
		return fmt.Errorf("%w: status %q некорректен", ErrInvalidOrder, order.Status)
	}
	if order.CreatedAt.IsZero() || order.CreatedAt.Before(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)) {
		return fmt.Errorf("%w: created_at некорректен", ErrInvalidOrder)
	}
	return nil
}

// Валидация временных отметок
func (v *OrderValidator) validateTimeline(order *domain.Order) error {
	if order.ArrivedAtBranchAt != nil {
		if order.ProcessingBranchID == "" {
			return fmt.Errorf("%w: processing_branch_id обязателен при arrived_at_branch_at", ErrInvalidOrder)
		}
		if order.ArrivedAtBranchAt.Before(order.CreatedAt) {
			return fmt.Errorf("%w: arrived_at_branch_at раньше created_at", ErrInvalidOrder)
		}
	}
	if order.EarliestDeliveryTime != nil && order.EarliestDeliveryTime.Before(order.CreatedAt) {
		return fmt.Errorf("%w: earliest_delivery_time раньше created_at", ErrInvalidOrder)
	}
	return nil
}

// Валидация встроенного снимка филиала
func (v *OrderValidator) validateBranch(order *domain.Order) error {
	b := order.Branch
	if b == nil {
		return nil
	}
	if b.ID == "" {
		return fmt.Errorf("%w: branch.id обязателен", ErrInvalidOrder)
	}
	if b.ID != order.ProcessingBranchID {
		return fmt.Errorf("%w: branch.id не совпадает с processing_branch_id", ErrInvalidOrder)
	}
	if b.Name == "" {
		return fmt.Errorf("%w: branch.name обязателен", ErrInvalidOrder)
	}
	if !b.Type.Valid() {
		return fmt.Errorf("%w: branch.branch_type %q некорректен", ErrInvalidOrder, b.Type)
	}
	if b.SortingWindowHours != nil {
		if h := *b.SortingWindowHours; !(h > 0) || h > MaxSortingWindowHours {
			return fmt.Errorf("%w: branch.sorting_window_hours должен быть в (0, %g]", ErrInvalidOrder, MaxSortingWindowHours)
		}
	}
	return nil
}
