package anthropic

// Config contains Anthropic provider configuration. An empty APIKey means the
// provider is unavailable, which is not an error; the orchestrator falls back
// to the stub.
type Config struct {
	APIKey  string `env:"ANTHROPIC_API_KEY"`
	BaseURL string `env:"ANTHROPIC_BASE_URL"`
	Model   string `env:"ANTHROPIC_MODEL" envDefault:"claude-3-5-sonnet-latest"`
}
