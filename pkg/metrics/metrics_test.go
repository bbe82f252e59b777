package metrics_test

import (
	"testing"
	"time"

	"github.com/Gunvolt24/cleanpos/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("orders"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("orders", "invalid"))

	metrics.KafkaMessagesConsumed.WithLabelValues("orders").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("orders", "invalid").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("orders")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("orders", "invalid")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("metrics-test", "hit"))
	missBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("metrics-test", "miss"))

	metrics.CacheOps.WithLabelValues("metrics-test", "hit").Inc()
	metrics.CacheOps.WithLabelValues("metrics-test", "hit").Inc()

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("metrics-test", "hit")); got != hitBefore+2 {
		t.Fatalf("CacheOps(hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("metrics-test", "miss")); got != missBefore {
		t.Fatalf("CacheOps(miss): got=%v want=%v", got, missBefore)
	}
}

func TestDeliveryValidations_ByResult(t *testing.T) {
	metrics.MustRegister()

	before := testutil.ToFloat64(metrics.DeliveryValidations.WithLabelValues("invalid"))
	metrics.DeliveryValidations.WithLabelValues("invalid").Inc()

	if got := testutil.ToFloat64(metrics.DeliveryValidations.WithLabelValues("invalid")); got != before+1 {
		t.Fatalf("DeliveryValidations(invalid): got=%v want=%v", got, before+1)
	}
}

func TestObserveHTTP_LabelsByRouteTemplate(t *testing.T) {
	metrics.MustRegister()

	c := metrics.HTTPRequests.WithLabelValues("GET", "/order/:id", "404")
	before := testutil.ToFloat64(c)
	metrics.ObserveHTTP("GET", "/order/:id", 404, 3*time.Millisecond)

	if got := testutil.ToFloat64(c); got != before+1 {
		t.Fatalf("HTTPRequests: got=%v want=%v", got, before+1)
	}
}
