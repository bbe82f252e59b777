package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
	"github.com/Gunvolt24/cleanpos/pkg/httpx"
	"github.com/Gunvolt24/cleanpos/pkg/ledger"
)

var _ ports.LoyaltyReader = (*LoyaltyService)(nil)

// LoyaltyService — журнал операций лояльности с агрегатами.
type LoyaltyService struct {
	repo         ports.LoyaltyRepository
	log          ports.Logger
	defaultLimit int
	maxLimit     int
}

// NewLoyaltyService — DI-конструктор. Непроставленные лимиты получают значения 50/200.
func NewLoyaltyService(repo ports.LoyaltyRepository, log ports.Logger, defaultLimit, maxLimit int) *LoyaltyService {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	if maxLimit <= 0 {
		maxLimit = 200
	}
	return &LoyaltyService{repo: repo, log: log, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Transactions — последние операции клиента или карты, отфильтрованные по типу, и суммы по ним.
func (s *LoyaltyService) Transactions(ctx context.Context, q ports.TransactionQuery) (*domain.LedgerPage, error) {
	if q.CustomerID == "" && q.LoyaltyID == "" {
		return nil, fmt.Errorf("%w: customerId or loyaltyId is required", domain.ErrInvalidInput)
	}
	txType, err := domain.ParseTransactionType(q.Type)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	limit = httpx.ClampInt(limit, 1, s.maxLimit)

	txs, err := s.repo.ListTransactions(ctx, ports.LoyaltyFilter{
		CustomerID: q.CustomerID,
		LoyaltyID:  q.LoyaltyID,
		Limit:      limit,
	})
	if err != nil {
		s.log.Errorf(ctx, "repo.ListTransactions failed customer_id=%s loyalty_id=%s err=%v", q.CustomerID, q.LoyaltyID, err)
		return nil, fmt.Errorf("%w: load transactions: %w", domain.ErrUpstream, err)
	}

	data, summary := ledger.Summarize(txs, txType)
	if data == nil {
		data = []domain.LoyaltyTransaction{}
	}
	return &domain.LedgerPage{Data: data, Summary: summary, Count: len(data)}, nil
}
