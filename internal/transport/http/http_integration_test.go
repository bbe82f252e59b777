//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/cleanpos/internal/cache/memory"
	"github.com/Gunvolt24/cleanpos/internal/domain"
	pgrepo "github.com/Gunvolt24/cleanpos/internal/repo/postgres"
	"github.com/Gunvolt24/cleanpos/internal/testutil"
	rest "github.com/Gunvolt24/cleanpos/internal/transport/http"
	"github.com/Gunvolt24/cleanpos/internal/usecase"
	"github.com/Gunvolt24/cleanpos/pkg/logger"
	"github.com/Gunvolt24/cleanpos/pkg/validate"
)

type pgStack struct {
	orders   *pgrepo.OrderRepository
	branches *pgrepo.BranchRepository
	loyalty  *pgrepo.LoyaltyRepository
	resolver *usecase.BranchResolver
	server   *httptest.Server
}

// startStack — Postgres в контейнере, реальные репозитории, кэш и сервисы за HTTP.
func startStack(t *testing.T, now time.Time) *pgStack {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	s := &pgStack{
		orders:   pgrepo.NewOrderRepository(pg.Pool),
		branches: pgrepo.NewBranchRepository(pg.Pool),
		loyalty:  pgrepo.NewLoyaltyRepository(pg.Pool),
	}
	s.resolver = usecase.NewBranchResolver(s.branches, cachemem.NewFlightCache[domain.Branch]("branches", 0), logg, 2*time.Second)

	h := rest.NewHandler(rest.Services{
		Orders:   usecase.NewOrderService(s.orders, s.resolver, logg, validate.NewOrderValidator()),
		Branches: s.resolver,
		Delivery: usecase.NewDeliveryService(s.orders, s.resolver, logg, usecase.WithDeliveryClock(func() time.Time { return now })),
		Loyalty:  usecase.NewLoyaltyService(s.loyalty, logg, 50, 200),
	}, logg, 2*time.Second)

	s.server = httptest.NewServer(rest.NewRouter(h, "", nil))
	t.Cleanup(s.server.Close)
	return s
}

func (s *pgStack) getJSON(t *testing.T, path string, out any) int {
	t.Helper()
	resp, err := http.Get(s.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *pgStack) postJSON(t *testing.T, path string, body any, out any) int {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(s.server.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHTTP_GetOrder_WithBranchName_TC(t *testing.T) {
	s := startStack(t, time.Now())
	ctx := context.Background()

	ord := testutil.MakeOrder()
	require.NoError(t, s.orders.Save(ctx, &ord))

	var got map[string]any
	require.Equal(t, http.StatusOK, s.getJSON(t, "/order/"+ord.ID, &got))
	require.Equal(t, ord.ID, got["id"])
	require.Equal(t, ord.Branch.Name, got["branch_name"])

	orphan := testutil.MakeOrder(testutil.WithoutBranch())
	require.NoError(t, s.orders.Save(ctx, &orphan))
	got = nil
	require.Equal(t, http.StatusOK, s.getJSON(t, "/order/"+orphan.ID, &got))
	require.Equal(t, usecase.NoBranchAssigned, got["branch_name"])

	got = nil
	require.Equal(t, http.StatusNotFound, s.getJSON(t, "/order/not-existing-id", &got))
	require.Equal(t, "order not found", got["error"])
}

func TestHTTP_ValidateDelivery_TC(t *testing.T) {
	s := startStack(t, time.Now())
	ctx := context.Background()

	arrived := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	window := 6.0
	branch := testutil.MakeBranch(func(b *domain.Branch) { b.SortingWindowHours = &window })
	ord := testutil.MakeOrder(func(o *domain.Order) {
		o.ProcessingBranchID = branch.ID
		o.Branch = &branch
		o.CreatedAt = arrived.Add(-time.Hour)
		o.ArrivedAtBranchAt = &arrived
	})
	require.NoError(t, s.orders.Save(ctx, &ord))

	var res domain.DeliveryValidationResult
	require.Equal(t, http.StatusOK, s.postJSON(t, "/delivery/validate",
		map[string]string{"orderId": ord.ID, "scheduledTime": "2024-03-10T15:00:00Z"}, &res))
	require.True(t, res.Valid)
	require.Equal(t, 6.0, res.SortingWindowHours)

	res = domain.DeliveryValidationResult{}
	require.Equal(t, http.StatusOK, s.postJSON(t, "/delivery/validate",
		map[string]string{"orderId": ord.ID, "scheduledTime": "2024-03-10T14:59:00Z"}, &res))
	require.False(t, res.Valid)

	var env map[string]any
	require.Equal(t, http.StatusNotFound, s.postJSON(t, "/delivery/validate",
		map[string]string{"orderId": "missing", "scheduledTime": "2024-03-10T15:00:00Z"}, &env))
	require.Equal(t, http.StatusBadRequest, s.postJSON(t, "/delivery/validate",
		map[string]string{"orderId": ord.ID, "scheduledTime": "not-a-time"}, &env))
}

func TestHTTP_LoyaltyTransactions_TC(t *testing.T) {
	s := startStack(t, time.Now())
	ctx := context.Background()

	cust := "cust-" + testutil.UniqSuffix()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, tx := range []domain.LoyaltyTransaction{
		testutil.MakeTransaction(cust, domain.TxEarned, 100, base),
		testutil.MakeTransaction(cust, domain.TxRedeemed, -40, base.Add(time.Hour)),
		testutil.MakeTransaction(cust, domain.TxBonus, 25, base.Add(2*time.Hour)),
	} {
		require.NoError(t, s.loyalty.Append(ctx, tx), "tx #%d", i)
	}

	var page domain.LedgerPage
	require.Equal(t, http.StatusOK, s.getJSON(t, "/loyalty/transactions?customerId="+cust, &page))
	require.Equal(t, 3, page.Count)
	require.Equal(t, domain.TxBonus, page.Data[0].Type)
	require.Equal(t, 100, page.Summary.TotalEarned)
	require.Equal(t, 40, page.Summary.TotalRedeemed)
	require.Equal(t, 25, page.Summary.TotalBonus)

	page = domain.LedgerPage{}
	require.Equal(t, http.StatusOK, s.getJSON(t, "/loyalty/transactions?customerId="+cust+"&type=earned", &page))
	require.Equal(t, 1, page.Count)

	require.Equal(t, http.StatusBadRequest, s.getJSON(t, "/loyalty/transactions", nil))
	require.Equal(t, http.StatusBadRequest, s.getJSON(t, "/loyalty/transactions?customerId="+cust+"&type=stolen", nil))
}

func TestHTTP_BranchInvalidate_TC(t *testing.T) {
	s := startStack(t, time.Now())
	ctx := context.Background()

	b := testutil.MakeBranch()
	require.NoError(t, s.branches.Upsert(ctx, &b))

	var got domain.Branch
	require.Equal(t, http.StatusOK, s.getJSON(t, "/branches/"+b.ID, &got))
	require.Equal(t, "Central", got.Name)

	b.Name = "Renamed"
	require.NoError(t, s.branches.Upsert(ctx, &b))

	// до инвалидации отдаётся закэшированное значение
	got = domain.Branch{}
	require.Equal(t, http.StatusOK, s.getJSON(t, "/branches/"+b.ID, &got))
	require.Equal(t, "Central", got.Name)

	require.Equal(t, http.StatusOK, s.postJSON(t, "/branches/cache/invalidate", map[string]string{"branch_id": b.ID}, nil))

	got = domain.Branch{}
	require.Equal(t, http.StatusOK, s.getJSON(t, "/branches/"+b.ID, &got))
	require.Equal(t, "Renamed", got.Name)

	require.Equal(t, http.StatusNotFound, s.getJSON(t, "/branches/ghost-"+testutil.UniqSuffix(), nil))
}
