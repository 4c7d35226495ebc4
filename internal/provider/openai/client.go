// Package openai provides a completion client for the OpenAI Chat Completions
// API using the official SDK. It implements the domain.Completer interface and
// maps the SDK's response and error shapes into the normalized response type.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"github.com/onalabs/ona-backend/internal/domain"
	"github.com/onalabs/ona-backend/internal/observability"
)

const (
	// maxOutputTokens caps the completion size for every request.
	maxOutputTokens = 1024
)

// Client implements the domain.Completer interface for OpenAI.
type Client struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a new OpenAI completion client. Retries are disabled:
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
		client:  openai.NewClient(opts...),
		model:   cfg.Model,
		timeout: timeout,
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return domain.ProviderOpenAI
}

// Complete issues one bounded completion call. Every failure mode resolves to
// a well-formed response with Error set; nothing is propagated or retried.
func (c *Client) Complete(ctx context.Context, prompt string) *domain.CompletionResponse {
	logger := observability.FromContext(ctx)
	logger.Debug("OpenAI request",
		observability.Int("prompt_length", len(prompt)),
		observability.String("prompt_digest", observability.PromptDigest(prompt)),
	)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(maxOutputTokens),
	})
	if err != nil {
		return c.errorResponse(logger, err)
	}

	content := ""
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}

	if content == "" {
		logger.Warn("OpenAI returned empty response")
		return domain.NewErrorResponse(c.Name(), c.model, "OpenAI returned empty response")
	}

	return domain.NewOutputResponse(c.Name(), c.model, content)
}

// errorResponse maps an SDK error into the normalized response. The upstream
// status code is surfaced; the response body stays in the logs.
func (c *Client) errorResponse(logger *zap.Logger, err error) *domain.CompletionResponse {
	var apiErr *openai.Error

	switch {
	case errors.As(err, &apiErr):
		logger.Error("OpenAI API error",
			observability.Int("status", apiErr.StatusCode),
			observability.Error(err),
		)
		return domain.NewErrorResponse(c.Name(), c.model, fmt.Sprintf("OpenAI API error: %d", apiErr.StatusCode))

	case errors.Is(err, context.DeadlineExceeded):
		logger.Error("OpenAI request timed out")
		return domain.NewErrorResponse(c.Name(), c.model, "Request timed out")

	default:
		logger.Error("OpenAI request failed", observability.Error(err))
		return domain.NewErrorResponse(c.Name(), c.model, fmt.Sprintf("Request failed: %v", err))
	}
}
