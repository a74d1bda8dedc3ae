package storefront

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments Storefront API traffic.
type Metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	throttled   prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coffeehunt",
			Subsystem: "storefront",
			Name:      "requests_total",
			Help:      "Storefront API requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "coffeehunt",
			Subsystem: "storefront",
			Name:      "request_duration_seconds",
			Help:      "Storefront API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coffeehunt",
			Subsystem: "storefront",
			Name:      "cache_hits_total",
			Help:      "Layout queries served from cache.",
		}, []string{"operation"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coffeehunt",
			Subsystem: "storefront",
			Name:      "cache_misses_total",
			Help:      "Layout queries that reached the API.",
		}, []string{"operation"}),
		throttled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "coffeehunt",
			Subsystem: "storefront",
			Name:      "throttled_total",
			Help:      "Responses that reported throttling.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration, m.cacheHits, m.cacheMisses, m.throttled)
	}
	return m
}

func (m *Metrics) observe(operation, outcome string, seconds float64) {
	m.requests.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(seconds)
}
