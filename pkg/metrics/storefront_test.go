package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStorefrontMetricsRecord(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewStorefrontMetrics(reg)

	m.IncCartMutation("add")
	m.IncCartMutation("add")
	m.IncCartMutation("clear")
	m.IncPersistenceFailure()
	m.IncCheckoutOutcome("confirmed")
	m.ObserveOrderRoundTrip(120 * time.Millisecond)

	if got := testutil.ToFloat64(m.cartMutations.WithLabelValues("add")); got != 2 {
		t.Fatalf("expected 2 add mutations, got %v", got)
	}
	if got := testutil.ToFloat64(m.persistenceFailures); got != 1 {
		t.Fatalf("expected 1 persistence failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.checkoutOutcomes.WithLabelValues("confirmed")); got != 1 {
		t.Fatalf("expected 1 confirmed checkout, got %v", got)
	}
}

func TestStorefrontMetricsNilSafe(t *testing.T) {
	t.Parallel()

	var m *StorefrontMetrics
	m.IncCartMutation("add")
	m.IncPersistenceFailure()
	m.IncCheckoutOutcome("failed")
	m.ObserveOrderRoundTrip(time.Second)

	noop := NewStorefrontMetrics(nil)
	noop.IncCartMutation("add")
}
