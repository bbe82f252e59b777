package domain

import (
	"fmt"
	"strings"
	"time"
)

// TransactionType — тип операции в журнале лояльности.
type TransactionType string

const (
	TxEarned   TransactionType = "earned"
	TxRedeemed TransactionType = "redeemed"
	TxExpired  TransactionType = "expired"
	TxBonus    TransactionType = "bonus"
	TxAdjusted TransactionType = "adjusted"
)

// ParseTransactionType — разбор типа из query-параметра; пустая строка = без фильтра.
func ParseTransactionType(raw string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case "", TxEarned, TxRedeemed, TxExpired, TxBonus, TxAdjusted:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown transaction type %q", ErrInvalidInput, raw)
}

// LoyaltyTransaction — неизменяемая запись журнала (журнал только дописывается).
type LoyaltyTransaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Points      int             `json:"points"` // знак хранится как есть
	CustomerID  string          `json:"customer_id"`
	LoyaltyID   string          `json:"loyalty_id"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LedgerSummary — суммы по модулю баллов для каждого типа операций.
type LedgerSummary struct {
	TotalEarned   int `json:"totalEarned"`
	TotalRedeemed int `json:"totalRedeemed"`
	TotalExpired  int `json:"totalExpired"`
	TotalBonus    int `json:"totalBonus"`
}

// LedgerPage — ответ на запрос журнала.
type LedgerPage struct {
	Data    []LoyaltyTransaction `json:"data"`
	Summary LedgerSummary        `json:"summary"`
	Count   int                  `json:"count"`
}
