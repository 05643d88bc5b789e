// Package metrics defines the Prometheus collectors used by the support
// service and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	TurnsTotal           *prometheus.CounterVec
	ResolveLatency       prometheus.Histogram
	ResolutionsTotal     *prometheus.CounterVec
	GenerativeFallbacks  prometheus.Counter
	OrderCacheHitsTotal  prometheus.Counter
	OrderCacheMissTotal  prometheus.Counter
	ActiveSessions       prometheus.Gauge
	SessionsPrunedTotal  prometheus.Counter

	registry *prometheus.Registry
}

// New creates and registers all collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		TurnsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "support_turns_total",
				Help: "Conversation turns handled, by reply source.",
			},
			[]string{"source"},
		),
		ResolveLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "support_resolve_latency_seconds",
				Help:    "Order query resolution latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		ResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "support_resolutions_total",
				Help: "Order query resolutions, by outcome (order, order_not_found, product, product_not_found, guidance).",
			},
			[]string{"outcome"},
		),
		GenerativeFallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "support_generative_fallbacks_total",
				Help: "Replies served from the static fallback because the generative collaborator failed.",
			},
		),
		OrderCacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "support_order_cache_hits_total",
				Help: "Order view lookups served from the cache.",
			},
		),
		OrderCacheMissTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "support_order_cache_misses_total",
				Help: "Order view lookups that fell through to storage.",
			},
		),
		ActiveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "support_active_sessions",
				Help: "Conversation sessions currently held in memory.",
			},
		),
		SessionsPrunedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "support_sessions_pruned_total",
				Help: "Idle conversation sessions evicted by the prune job.",
			},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.TurnsTotal,
		m.ResolveLatency,
		m.ResolutionsTotal,
		m.GenerativeFallbacks,
		m.OrderCacheHitsTotal,
		m.OrderCacheMissTotal,
		m.ActiveSessions,
		m.SessionsPrunedTotal,
	)
	return m
}

// Handler returns the HTTP handler serving the scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
