// Package anthropic provides a completion client for the Anthropic Messages
// API using the official SDK. It implements the domain.Completer interface and
// maps the SDK's content-block response shape into the normalized response
// type.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/onalabs/ona-backend/internal/domain"
	"github.com/onalabs/ona-backend/internal/observability"
)

const (
	// maxOutputTokens caps the completion size for every request.
	maxOutputTokens = 1024
)

// Client implements the domain.Completer interface for Anthropic.
type Client struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
}

// NewClient creates a new Anthropic completion client. Retries are disabled:
// a provider failure is reported once, immediately, and the caller owns the
// retry decision.
func NewClient(cfg Config, timeout time.Duration) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}

	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		client:  anthropic.NewClient(opts...),
		model:   cfg.Model,
		timeout: timeout,
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return domain.ProviderAnthropic
}

// Complete issues one bounded completion call. Every failure mode resolves to
// a well-formed response with Error set; nothing is propagated or retried.
func (c *Client) Complete(ctx context.Context, prompt string) *domain.CompletionResponse {
	logger := observability.FromContext(ctx)
	logger.Debug("Anthropic request",
		observability.Int("prompt_length", len(prompt)),
		observability.String("prompt_digest", observability.PromptDigest(prompt)),
	)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxOutputTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return c.errorResponse(logger, err)
	}

	content := extractText(message)
	if content == "" {
		logger.Warn("Anthropic returned empty response")
		return domain.NewErrorResponse(c.Name(), c.model, "Anthropic returned empty response")
	}

	return domain.NewOutputResponse(c.Name(), c.model, content)
}

// extractText returns the first text content block of the message.
func extractText(message *anthropic.Message) string {
	for _, block := range message.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			return text.Text
		}
	}
	return ""
}

// errorResponse maps an SDK error into the normalized response. The upstream
// status code is surfaced; the response body stays in the logs.
func (c *Client) errorResponse(logger *zap.Logger, err error) *domain.CompletionResponse {
	var apiErr *anthropic.Error

	switch {
	case errors.As(err, &apiErr):
		logger.Error("Anthropic API error",
			observability.Int("status", apiErr.StatusCode),
			observability.Error(err),
		)
		return domain.NewErrorResponse(c.Name(), c.model, fmt.Sprintf("Anthropic API error: %d", apiErr.StatusCode))

	case errors.Is(err, context.DeadlineExceeded):
		logger.Error("Anthropic request timed out")
		return domain.NewErrorResponse(c.Name(), c.model, "Request timed out")

	default:
		logger.Error("Anthropic request failed", observability.Error(err))
		return domain.NewErrorResponse(c.Name(), c.model, fmt.Sprintf("Request failed: %v", err))
	}
}
