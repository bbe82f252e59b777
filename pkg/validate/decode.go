package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
)

// DecodeOrder — строгий разбор заказа из JSON: неизвестные поля и хвостовые данные запрещены.
// Любая ошибка разбора оборачивает ErrInvalidOrder, чтобы потребитель мог отличить "ядовитое" сообщение.
func DecodeOrder(raw []byte) (*domain.Order, error) {
	var order domain.Order
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidOrder, err)
	}
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidOrder)
	}
	return &order, nil
}

// OrderFromJSON — разбор и валидация заказа.
func OrderFromJSON(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.Order, error) {
	order, err := DecodeOrder(raw)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
