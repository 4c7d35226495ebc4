package openai

// Config contains OpenAI provider configuration. An empty APIKey means the
// provider is unavailable, which is not an error; the orchestrator moves on to
// the next provider.
type Config struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	BaseURL string `env:"OPENAI_BASE_URL"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}
