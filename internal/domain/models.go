package domain

// Provider names carried in CompletionResponse.Provider.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderStub      = "stub"
)

// CompletionRequest represents an inbound completion request.
type CompletionRequest struct {
	Prompt string `json:"prompt"`
}

// CompletionResponse is the single normalized shape every provider's output is
// mapped into. Exactly one of (non-empty Output, nil Error) or (non-nil Error)
// holds when Stub is false; a stub response carries the fixed stub text and a
// nil Error.
type CompletionResponse struct {
	Provider string  `json:"provider"`
	Model    string  `json:"model"`
	Output   string  `json:"output"`
	Stub     bool    `json:"stub"`
	Error    *string `json:"error"`
}

// NewOutputResponse builds a successful provider response.
func NewOutputResponse(provider, model, output string) *CompletionResponse {
	return &CompletionResponse{
		Provider: provider,
		Model:    model,
		Output:   output,
		Stub:     false,
		Error:    nil,
	}
}

// NewErrorResponse builds a failed provider response. The message is what the
// caller sees; upstream detail stays in the logs.
func NewErrorResponse(provider, model, message string) *CompletionResponse {
	return &CompletionResponse{
		Provider: provider,
		Model:    model,
		Output:   "",
		Stub:     false,
		Error:    &message,
	}
}
