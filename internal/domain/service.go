package domain

import (
	"context"

	"github.com/onalabs/ona-backend/internal/observability"
)

// CompletionService selects the provider that serves a given prompt.
//
// Selection precedence is fixed and total: the first configured completer
// always wins, with no load balancing and no fallback-on-error to the next
// provider. When no provider is configured every request gets the stub
// response.
type CompletionService struct {
	completers []Completer
	stub       Completer
}

// NewCompletionService creates the service (DI constructor). Completers are
// given in precedence order; nil entries are skipped so callers can pass
// unconfigured providers directly.
func NewCompletionService(stub Completer, completers ...Completer) *CompletionService {
	s := &CompletionService{stub: stub}
	for _, c := range completers {
		if c != nil {
			s.completers = append(s.completers, c)
		}
	}
	return s
}

// Process produces exactly one response for a validated prompt.
func (s *CompletionService) Process(ctx context.Context, prompt string) *CompletionResponse {
	logger := observability.FromContext(ctx)

	if len(s.completers) == 0 {
		logger.Info("no LLM provider configured, returning stub response")
		return s.stub.Complete(ctx, prompt)
	}

	completer := s.completers[0]
	logger.Info("using provider", observability.String("provider", completer.Name()))

	ctx = observability.WithProvider(ctx, completer.Name())
	return completer.Complete(ctx, prompt)
}

// Providers returns the configured provider names in precedence order, or the
// stub's name when none are configured.
func (s *CompletionService) Providers() []string {
	if len(s.completers) == 0 {
		return []string{s.stub.Name()}
	}

	names := make([]string, 0, len(s.completers))
	for _, c := range s.completers {
		names = append(names, c.Name())
	}
	return names
}

// ActiveProvider returns the provider that serves the next request.
func (s *CompletionService) ActiveProvider() string {
	return s.Providers()[0]
}
