package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Storefront records catalog loads, cart mutations and email captures.
type Storefront struct {
	catalogLoads    *prometheus.CounterVec
	catalogDuration prometheus.Histogram
	cartMutations   *prometheus.CounterVec
	subscriptions   *prometheus.CounterVec
}

// NewStorefront registers the storefront metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewStorefront(reg prometheus.Registerer) *Storefront {
	if reg == nil {
		return &Storefront{}
	}
	catalogLoads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_loads_total",
		Help: "Catalog load attempts by result.",
	}, []string{"result"})
	catalogDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_load_duration_seconds",
		Help:    "Duration of catalog loads in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart ledger mutations by operation.",
	}, []string{"op"})
	subscriptions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "subscriptions_total",
		Help: "Email capture submissions by result.",
	}, []string{"result"})
	reg.MustRegister(catalogLoads, catalogDuration, cartMutations, subscriptions)
	return &Storefront{
		catalogLoads:    catalogLoads,
		catalogDuration: catalogDuration,
		cartMutations:   cartMutations,
		subscriptions:   subscriptions,
	}
}

// ObserveCatalogLoad records one load attempt and its duration.
func (s *Storefront) ObserveCatalogLoad(ok bool, duration time.Duration) {
	if s == nil || s.catalogLoads == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	s.catalogLoads.WithLabelValues(result).Inc()
	s.catalogDuration.Observe(duration.Seconds())
}

// IncCartMutation counts a cart operation (add, set, adjust, remove).
func (s *Storefront) IncCartMutation(op string) {
	if s == nil || s.cartMutations == nil {
		return
	}
	s.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncSubscription counts an email capture outcome (accepted, invalid, duplicate).
func (s *Storefront) IncSubscription(result string) {
	if s == nil || s.subscriptions == nil {
		return
	}
	s.subscriptions.WithLabelValues(normalizeLabel(result)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
