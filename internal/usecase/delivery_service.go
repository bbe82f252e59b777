package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
	"github.com/Gunvolt24/cleanpos/pkg/metrics"
	"github.com/Gunvolt24/cleanpos/pkg/validate"
)

var _ ports.DeliveryValidator = (*DeliveryService)(nil)

// DeliveryService — проверка предложенного времени доставки.
type DeliveryService struct {
	orders   ports.OrderRepository
	branches ports.BranchReader
	log      ports.Logger
	now      func() time.Time
}

// DeliveryOption — настройка DeliveryService.
type DeliveryOption func(*DeliveryService)

// WithDeliveryClock — подмена часов (тесты).
func WithDeliveryClock(now func() time.Time) DeliveryOption {
	return func(s *DeliveryService) { s.now = now }
}

// NewDeliveryService — DI-конструктор.
func NewDeliveryService(
	orders ports.OrderRepository,
	branches ports.BranchReader,
	log ports.Logger,
	opts ...DeliveryOption,
) *DeliveryService {
	s := &DeliveryService{orders: orders, branches: branches, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateDelivery — ввод проверяется до обращения к хранилищу; дальше заказ,
// филиал обработки и чистый расчёт окна.
func (s *DeliveryService) ValidateDelivery(ctx context.Context, orderID, scheduledTime string) (*domain.DeliveryValidationResult, error) {
	res, err := s.validate(ctx, strings.TrimSpace(orderID), scheduledTime)
	switch {
	case err != nil:
		metrics.DeliveryValidations.WithLabelValues("error").Inc()
	case res.Valid:
		metrics.DeliveryValidations.WithLabelValues("valid").Inc()
	default:
		metrics.DeliveryValidations.WithLabelValues("invalid").Inc()
	}
	return res, err
}

func (s *DeliveryService) validate(ctx context.Context, orderID, scheduledTime string) (*domain.DeliveryValidationResult, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: orderId is required", domain.ErrInvalidInput)
	}
	proposed, err := validate.ParseScheduledTime(scheduledTime)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed order_id=%s err=%v", orderID, err)
		return nil, fmt.Errorf("%w: load order: %w", domain.ErrUpstream, err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order not found", domain.ErrNotFound)
	}

	branch, err := s.branches.Resolve(ctx, order.ProcessingBranchID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: branch not found", domain.ErrNotFound)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: load branch: %w", domain.ErrUpstream, err)
	}

	res := validate.DeliveryWindow(order, branch, proposed, s.now())
	if res.Baseline == domain.BaselineNow {
		s.log.Warnf(ctx, "order has no arrival timestamp, window measured from now order_id=%s", orderID)
	}
	return &res, nil
}
