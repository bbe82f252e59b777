package domain

import (
	"errors"
	"fmt"
)

// Базовые (sentinel) ошибки предметной области.
// Слои выше оборачивают их через %w и проверяют через errors.Is.
var (
	// ErrNotFound — запись (заказ, филиал) отсутствует.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput — некорректный ввод: нераспознанное время, нет обязательного фильтра и т.п.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstream — сбой внешней зависимости (БД, HTTP API).
	ErrUpstream = errors.New("upstream failure")

	// ErrUnauthorized — нет или неверные учётные данные (обрабатывается middleware авторизации).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNoBranchAssigned — у заказа не указан филиал обработки.
	ErrNoBranchAssigned = fmt.Errorf("%w: no branch assigned", ErrNotFound)
)
