package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onalabs/ona-backend/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, "Backend", cfg.App.Name)
		require.Equal(t, "1.0.0", cfg.App.Version)
		require.Equal(t, "development", cfg.App.Environment)
		require.Equal(t, "0.0.0.0", cfg.Server.Host)
		require.Equal(t, 3001, cfg.Server.Port)
		require.Equal(t, "info", cfg.Log.Level)
		require.Equal(t, 30000, cfg.LLM.TimeoutMs)
		require.Equal(t, 4000, cfg.LLM.MaxPromptLength)
		require.Equal(t, 60, cfg.RateLimit.PerMinute)
		require.Empty(t, cfg.OpenAI.APIKey)
		require.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
		require.Empty(t, cfg.Anthropic.APIKey)
		require.Equal(t, "claude-3-5-sonnet-latest", cfg.Anthropic.Model)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("APP_NAME", "test-backend")
		t.Setenv("PORT", "9000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")
		t.Setenv("OPENAI_MODEL", "gpt-4o")
		t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test-key")
		t.Setenv("LLM_TIMEOUT_MS", "5000")
		t.Setenv("MAX_PROMPT_LENGTH", "100")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "10")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, "test-backend", cfg.App.Name)
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
		require.Equal(t, "gpt-4o", cfg.OpenAI.Model)
		require.Equal(t, "sk-ant-test-key", cfg.Anthropic.APIKey)
		require.Equal(t, 5000, cfg.LLM.TimeoutMs)
		require.Equal(t, 100, cfg.LLM.MaxPromptLength)
		require.Equal(t, 10, cfg.RateLimit.PerMinute)
	})

	t.Run("should fall back to defaults for malformed numeric variables", func(t *testing.T) {
		t.Setenv("PORT", "not-a-number")
		t.Setenv("LLM_TIMEOUT_MS", "30s")
		t.Setenv("MAX_PROMPT_LENGTH", "")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "ten")

		cfg := config.Load()

		require.NotNil(t, cfg)
		require.Equal(t, 3001, cfg.Server.Port)
		require.Equal(t, 30000, cfg.LLM.TimeoutMs)
		require.Equal(t, 4000, cfg.LLM.MaxPromptLength)
		require.Equal(t, 60, cfg.RateLimit.PerMinute)
	})

	t.Run("should keep well-formed numerics alongside malformed ones", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "oops")

		cfg := config.Load()

		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 60, cfg.RateLimit.PerMinute)
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	os.Clearenv()

	cfg := config.Load()
	dep := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.App, dep.App)
	require.Same(t, &cfg.Server, dep.Server)
	require.Same(t, &cfg.LLM, dep.LLM)
	require.Same(t, &cfg.RateLimit, dep.RateLimit)
	require.Same(t, &cfg.OpenAI, dep.OpenAI)
	require.Same(t, &cfg.Anthropic, dep.Anthropic)
}
