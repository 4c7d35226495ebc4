package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/onalabs/ona-backend/internal/config"
	"github.com/onalabs/ona-backend/internal/domain"
	"github.com/onalabs/ona-backend/internal/metrics"
	"github.com/onalabs/ona-backend/internal/observability"
	"github.com/onalabs/ona-backend/internal/ratelimit"
)

// Handler handles HTTP requests.
type Handler struct {
	app       *config.AppConfig
	service   *domain.CompletionService
	limiter   *ratelimit.Bucket
	validator *domain.Validator
	metrics   *metrics.Metrics
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	app *config.AppConfig,
	service *domain.CompletionService,
	limiter *ratelimit.Bucket,
	validator *domain.Validator,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		app:       app,
		service:   service,
		limiter:   limiter,
		validator: validator,
		metrics:   m,
	}
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

type infoResponse struct {
	Name           string   `json:"name"`
	Version        string   `json:"version"`
	Environment    string   `json:"environment"`
	LLMProviders   []string `json:"llm_providers"`
	ActiveProvider string   `json:"active_provider"`
}

// HandleCompletion processes completion requests: rate limiting, validation,
// then provider delegation. Upstream provider failures still return HTTP 200
// with the error carried in the response body; a non-200 status means the
// proxy itself rejected or failed the request.
func (h *Handler) HandleCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	if r.Method != http.MethodPost {
		h.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if !h.limiter.TryConsume() {
		logger.Warn("rate limit exceeded")
		h.metrics.ObserveRateLimited()
		h.writeError(w, r, http.StatusTooManyRequests, "Rate limit exceeded. Try again later.")
		return
	}

	var req domain.CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body: prompt must be a string")
		return
	}

	if err := h.validator.ValidatePrompt(req.Prompt); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// The prompt itself is never logged; length and digest are enough to
	// correlate a request across log lines.
	logger.Info("processing completion request",
		observability.Int("prompt_length", len(req.Prompt)),
	)
	logger.Debug("completion request accepted",
		observability.Int("prompt_length", len(req.Prompt)),
		observability.String("prompt_digest", observability.PromptDigest(req.Prompt)),
	)

	start := time.Now()
	response := h.service.Process(ctx, req.Prompt)
	h.metrics.ObserveCompletion(response.Provider, outcome(response), time.Since(start))

	logger.Info("completion processed",
		observability.String("provider", response.Provider),
		observability.Bool("stub", response.Stub),
		observability.Bool("upstream_error", response.Error != nil),
	)

	h.writeJSON(w, r, http.StatusOK, response)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.app.Version,
	})
}

// HandleInfo reports the configured providers in precedence order.
func (h *Handler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	providers := h.service.Providers()

	h.writeJSON(w, r, http.StatusOK, infoResponse{
		Name:           h.app.Name,
		Version:        h.app.Version,
		Environment:    h.app.Environment,
		LLMProviders:   providers,
		ActiveProvider: h.service.ActiveProvider(),
	})
}

// HandleNotFound serves every unmatched route.
func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusNotFound, "Not found")
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Status already written, can't change it, just log.
		observability.FromContext(r.Context()).Error("failed to encode response", observability.Error(err))
	}

	h.metrics.ObserveRequest(r.URL.Path, status)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.writeJSON(w, r, status, map[string]string{"error": message})
}

func outcome(response *domain.CompletionResponse) string {
	switch {
	case response.Stub:
		return metrics.OutcomeStub
	case response.Error != nil:
		return metrics.OutcomeError
	default:
		return metrics.OutcomeOK
	}
}
