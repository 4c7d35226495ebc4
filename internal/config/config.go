package config

import (
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/onalabs/ona-backend/internal/provider/anthropic"
	"github.com/onalabs/ona-backend/internal/provider/openai"
)

// Config represents the backend configuration.
type Config struct {
	App       AppConfig
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	LLM       LLMConfig
	RateLimit RateLimitConfig
	OpenAI    openai.Config
	Anthropic anthropic.Config
}

// AppConfig identifies the service in /health and /info responses.
type AppConfig struct {
	Name        string `env:"APP_NAME"    envDefault:"Backend"`
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
	Environment string `env:"APP_ENV"     envDefault:"development"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host         string `env:"HOST"                 envDefault:"0.0.0.0"`
	Port         int    `env:"PORT"                 envDefault:"3001"`
	ReadTimeout  int    `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int    `env:"SERVER_WRITE_TIMEOUT" envDefault:"120"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// LLMConfig contains settings shared by all provider clients.
type LLMConfig struct {
	TimeoutMs       int `env:"LLM_TIMEOUT_MS"    envDefault:"30000"`
	MaxPromptLength int `env:"MAX_PROMPT_LENGTH" envDefault:"4000"`
}

// RateLimitConfig contains completion endpoint admission settings.
// The budget is per process; multiple replicas each get their own bucket.
type RateLimitConfig struct {
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	App       *AppConfig
	Server    *ServerConfig
	CORS      *CORSConfig
	Log       *LogConfig
	LLM       *LLMConfig
	RateLimit *RateLimitConfig
	OpenAI    *openai.Config
	Anthropic *anthropic.Config
}

// numericVars lists every integer-valued environment variable. A value that
// does not parse as an integer is dropped before env.Parse so the documented
// default applies instead of failing startup.
var numericVars = []string{
	"PORT",
	"SERVER_READ_TIMEOUT",
	"SERVER_WRITE_TIMEOUT",
	"CORS_MAX_AGE",
	"LLM_TIMEOUT_MS",
	"MAX_PROMPT_LENGTH",
	"RATE_LIMIT_PER_MINUTE",
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	dropMalformedNumerics()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		App:       &cfg.App,
		Server:    &cfg.Server,
		CORS:      &cfg.CORS,
		Log:       &cfg.Log,
		LLM:       &cfg.LLM,
		RateLimit: &cfg.RateLimit,
		OpenAI:    &cfg.OpenAI,
		Anthropic: &cfg.Anthropic,
	}
}

func dropMalformedNumerics() {
	for _, key := range numericVars {
		val, ok := os.LookupEnv(key)
		if !ok || val == "" {
			continue
		}
		if _, err := strconv.Atoi(val); err != nil {
			os.Unsetenv(key)
		}
	}
}
