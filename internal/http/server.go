package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/onalabs/ona-backend/internal/config"
	"github.com/onalabs/ona-backend/internal/http/middleware"
	"github.com/onalabs/ona-backend/internal/metrics"
	"github.com/onalabs/ona-backend/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      *config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	metrics     *metrics.Metrics
	srv         *http.Server
}

// NewServer creates a new HTTP server (DI constructor).
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
	m *metrics.Metrics,
) *Server {
	return &Server{
		config:      cfg,
		handler:     handler,
		middlewares: middlewares,
		metrics:     m,
		srv:         nil,
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// Register routes. The root pattern catches everything unmatched.
	mux.HandleFunc("/llm", s.handler.HandleCompletion)
	mux.HandleFunc("/health", s.handler.HandleHealth)
	mux.HandleFunc("/info", s.handler.HandleInfo)
	mux.Handle("/metrics", s.metrics.Handler())
	mux.HandleFunc("/", s.handler.HandleNotFound)

	// Apply middleware chain.
	handlerWithMiddleware := s.middlewares(mux)

	// Create server with timeouts.
	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Host, s.config.Port),
		Handler:      handlerWithMiddleware,
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server",
		observability.String("host", s.config.Host),
		observability.Int("port", s.config.Port),
	)

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if s.srv == nil {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
