package main

import (
	"log"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/onalabs/ona-backend/internal/config"
	"github.com/onalabs/ona-backend/internal/domain"
	"github.com/onalabs/ona-backend/internal/http"
	"github.com/onalabs/ona-backend/internal/http/middleware"
	"github.com/onalabs/ona-backend/internal/metrics"
	"github.com/onalabs/ona-backend/internal/observability"
	"github.com/onalabs/ona-backend/internal/provider/anthropic"
	"github.com/onalabs/ona-backend/internal/provider/openai"
	"github.com/onalabs/ona-backend/internal/provider/stub"
	"github.com/onalabs/ona-backend/internal/ratelimit"
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(logger *zap.Logger, server *http.Server) {
		defer func() { _ = logger.Sync() }()

		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(func(logCfg *config.LogConfig) (*zap.Logger, error) {
		return observability.InitLogger(logCfg.Level)
	}); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(metrics.New); err != nil {
		log.Fatalf("Failed to provide metrics: %v", err)
	}

	// Rate limiter (one bucket per process, shared by all requests)
	if err := container.Provide(ratelimit.NewBucket); err != nil {
		log.Fatalf("Failed to provide rate limiter: %v", err)
	}

	// Prompt validation
	if err := container.Provide(func(llmCfg *config.LLMConfig) *domain.Validator {
		return domain.NewValidator(llmCfg.MaxPromptLength)
	}); err != nil {
		log.Fatalf("Failed to provide validator: %v", err)
	}

	// Completion service with providers in precedence order. A missing API
	// key means the provider is skipped, not an error.
	if err := container.Provide(func(
		openaiCfg *openai.Config,
		anthropicCfg *anthropic.Config,
		llmCfg *config.LLMConfig,
	) *domain.CompletionService {
		timeout := time.Duration(llmCfg.TimeoutMs) * time.Millisecond

		completers := make([]domain.Completer, 0, 2)
		if openaiCfg.APIKey != "" {
			completers = append(completers, openai.NewClient(*openaiCfg, timeout))
		}
		if anthropicCfg.APIKey != "" {
			completers = append(completers, anthropic.NewClient(*anthropicCfg, timeout))
		}

		return domain.NewCompletionService(stub.New(), completers...)
	}); err != nil {
		log.Fatalf("Failed to provide completion service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
