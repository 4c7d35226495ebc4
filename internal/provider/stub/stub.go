// Package stub provides the degraded completion mode used when no provider
// credentials are configured. It implements the domain.Completer interface
// without making any external calls.
package stub

import (
	"context"

	"github.com/onalabs/ona-backend/internal/domain"
	"github.com/onalabs/ona-backend/internal/observability"
)

const (
	modelName = "none"

	// Output is the fixed informational text every stub response carries.
	Output = "Stub response. Set OPENAI_API_KEY or ANTHROPIC_API_KEY for real LLM calls."
)

// Completer implements the domain.Completer interface as a stub.
type Completer struct{}

// New creates a new stub completer.
func New() *Completer {
	return &Completer{}
}

// Name returns the provider identifier.
func (c *Completer) Name() string {
	return domain.ProviderStub
}

// Complete returns the fixed stub response regardless of prompt content.
func (c *Completer) Complete(ctx context.Context, prompt string) *domain.CompletionResponse {
	logger := observability.FromContext(ctx)
	logger.Debug("stub completion",
		observability.Int("prompt_length", len(prompt)),
		observability.String("prompt_digest", observability.PromptDigest(prompt)),
	)

	return &domain.CompletionResponse{
		Provider: c.Name(),
		Model:    modelName,
		Output:   Output,
		Stub:     true,
		Error:    nil,
	}
}
