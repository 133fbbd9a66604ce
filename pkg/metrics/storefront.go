package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records cart and checkout activity.
type StorefrontMetrics struct {
	cartMutations       *prometheus.CounterVec
	persistenceFailures prometheus.Counter
	checkoutOutcomes    *prometheus.CounterVec
	orderRoundTrip      prometheus.Histogram
}

// NewStorefrontMetrics registers the storefront metrics on the provided
// registerer. A nil registerer yields a no-op recorder for tests.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart engine mutations by operation.",
	}, []string{"op"})
	persistenceFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_persistence_failures_total",
		Help: "Best-effort cart persistence writes that failed.",
	})
	checkoutOutcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_submissions_total",
		Help: "Checkout submissions by outcome.",
	}, []string{"outcome"})
	orderRoundTrip := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_service_round_trip_seconds",
		Help:    "Duration of order service submissions in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(cartMutations, persistenceFailures, checkoutOutcomes, orderRoundTrip)
	return &StorefrontMetrics{
		cartMutations:       cartMutations,
		persistenceFailures: persistenceFailures,
		checkoutOutcomes:    checkoutOutcomes,
		orderRoundTrip:      orderRoundTrip,
	}
}

// IncCartMutation counts one mutation of the named operation.
func (m *StorefrontMetrics) IncCartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(op).Inc()
}

// IncPersistenceFailure counts a swallowed persistence write failure.
func (m *StorefrontMetrics) IncPersistenceFailure() {
	if m == nil || m.persistenceFailures == nil {
		return
	}
	m.persistenceFailures.Inc()
}

// IncCheckoutOutcome counts a checkout submission outcome
// (confirmed, failed, rejected).
func (m *StorefrontMetrics) IncCheckoutOutcome(outcome string) {
	if m == nil || m.checkoutOutcomes == nil {
		return
	}
	m.checkoutOutcomes.WithLabelValues(outcome).Inc()
}

// ObserveOrderRoundTrip records one order service round trip.
func (m *StorefrontMetrics) ObserveOrderRoundTrip(d time.Duration) {
	if m == nil || m.orderRoundTrip == nil {
		return
	}
	m.orderRoundTrip.Observe(d.Seconds())
}
