package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
	"github.com/Gunvolt24/cleanpos/pkg/validate"
)

var _ ports.OrderReadService = (*OrderService)(nil)

// OrderService — прикладная логика работы с заказами (без знаний о транспорте).
// Заказы не кэшируются. Снимок филиала кладётся в кэш только при записи заказа:
// чтение по JOIN могло увидеть строку до инвалидации и вернуло бы её в кэш.
type OrderService struct {
	repo      ports.OrderRepository
	branches  ports.BranchReader
	log       ports.Logger
	validator ports.OrderValidator
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	repo ports.OrderRepository,
	branches ports.BranchReader,
	log ports.Logger,
	validator ports.OrderValidator,
) *OrderService {
	return &OrderService{
		repo:      repo,
		branches:  branches,
		log:       log,
		validator: validator,
	}
}

// GetOrder — заказ по id. Возвращает (*Order, nil) или (nil, nil), если записи нет.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	start := time.Now()
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed order_id=%s err=%v", orderID, err)
		return nil, err
	}
	s.log.Infof(ctx, "db fetch order_id=%s took=%s", orderID, time.Since(start))
	return order, nil
}

// SaveFromMessage — сохранить заказ, пришедший из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (неизвестные поля и хвост запрещены);
//  2. доменная валидация (validate.ErrInvalidOrder при проблемах);
//  3. транзакционное сохранение в БД вместе со снимком филиала;
//  4. снимок филиала попадает в кэш справочника.
func (s *OrderService) SaveFromMessage(ctx context.Context, raw []byte) error {
	order, err := validate.DecodeOrder(raw)
	if err != nil {
		s.log.Warnf(ctx, "decode failed err=%v", err)
		return err
	}

	if err := s.validator.Validate(ctx, order); err != nil {
		s.log.Warnf(ctx, "validation failed order_id=%s err=%v", order.ID, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Save(ctx, order); err != nil {
		s.log.Errorf(ctx, "repo.Save failed order_id=%s err=%v", order.ID, err)
		return fmt.Errorf("failed to save order: %w", err)
	}

	if order.Branch != nil {
		s.branches.Seed(ctx, order.Branch)
	}

	s.log.Infof(ctx, "order saved id=%s branch=%s status=%s", order.ID, order.ProcessingBranchID, order.Status)
	return nil
}
