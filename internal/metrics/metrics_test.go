package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/onalabs/ona-backend/internal/metrics"
)

func TestMetricsExposition(t *testing.T) {
	m := metrics.New()

	m.ObserveRequest("/llm", http.StatusOK)
	m.ObserveRequest("/llm", http.StatusTooManyRequests)
	m.ObserveCompletion("openai", metrics.OutcomeOK, 120*time.Millisecond)
	m.ObserveCompletion("stub", metrics.OutcomeStub, time.Millisecond)
	m.ObserveRateLimited()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, `http_requests_total{path="/llm",status="200"} 1`)
	require.Contains(t, body, `http_requests_total{path="/llm",status="429"} 1`)
	require.Contains(t, body, `llm_completions_total{outcome="ok",provider="openai"} 1`)
	require.Contains(t, body, `llm_completions_total{outcome="stub",provider="stub"} 1`)
	require.Contains(t, body, `llm_rate_limited_total 1`)
}

func TestMetricsInstancesAreIndependent(t *testing.T) {
	// Two instances must not collide on registration.
	require.NotPanics(t, func() {
		_ = metrics.New()
		_ = metrics.New()
	})
}
