// Package metrics provides Prometheus collectors for the backend's HTTP
// surface and the completion pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Completion outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	OutcomeStub  = "stub"
)

// Metrics holds all collectors. Each instance owns its own registry so tests
// can construct metrics freely without duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests      *prometheus.CounterVec
	completions       *prometheus.CounterVec
	completionLatency *prometheus.HistogramVec
	rateLimited       prometheus.Counter
}

// New creates a Metrics instance with all collectors registered (DI constructor).
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests served, by path and status code.",
			},
			[]string{"path", "status"},
		),
		completions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_completions_total",
				Help: "Total number of completion requests processed, by provider and outcome.",
			},
			[]string{"provider", "outcome"},
		),
		completionLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "llm_completion_duration_seconds",
				Help:    "Latency of completion processing, including the upstream call.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		rateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "llm_rate_limited_total",
				Help: "Total number of completion requests rejected by the rate limiter.",
			},
		),
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(path string, status int) {
	m.httpRequests.WithLabelValues(path, strconv.Itoa(status)).Inc()
}

// ObserveCompletion records one processed completion and its latency.
func (m *Metrics) ObserveCompletion(provider, outcome string, elapsed time.Duration) {
	m.completions.WithLabelValues(provider, outcome).Inc()
	m.completionLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// ObserveRateLimited records one rejected completion request.
func (m *Metrics) ObserveRateLimited() {
	m.rateLimited.Inc()
}

// Handler returns the exposition endpoint for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
