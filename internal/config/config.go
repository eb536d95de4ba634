package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/cp25sy5-modjot/market-proxy-service/internal/adapters/llm"
	"github.com/cp25sy5-modjot/market-proxy-service/internal/adapters/serpapi"
	"github.com/cp25sy5-modjot/market-proxy-service/internal/adapters/stooq"
)

// Config is read once at startup and passed down; nothing else reads the
// environment. Credentials are not validated here: a missing key shows up as
// an upstream failure on the route that needs it.
type Config struct {
	Port      int
	StaticDir string

	SerpAPIKey     string
	SerpAPIBaseURL string
	StooqBaseURL   string

	SummarizerProvider string
	SummaryModel       string
	SummarizerAPIKey   string
	SummarizerBaseURL  string

	UpstreamTimeout time.Duration
	GRPCHealthAddr  string

	LogLevel  string
	LogFormat string
	GinMode   string
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can supply their own.
func FromEnv(getenv func(string) string) (*Config, error) {
	env := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}

	port, err := strconv.Atoi(env("PORT", "3000"))
	if err != nil || port < 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", getenv("PORT"))
	}

	timeout, err := time.ParseDuration(env("UPSTREAM_TIMEOUT", "0"))
	if err != nil || timeout < 0 {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q", getenv("UPSTREAM_TIMEOUT"))
	}

	provider := strings.ToLower(strings.TrimSpace(env("SUMMARIZER_PROVIDER", llm.ProviderGroq)))

	cfg := &Config{
		Port:      port,
		StaticDir: env("STATIC_DIR", "public"),

		SerpAPIKey:     env("SERPAPI_API_KEY", getenv("APIKEY")),
		SerpAPIBaseURL: env("SERPAPI_BASE_URL", serpapi.DefaultBaseURL),
		StooqBaseURL:   env("STOOQ_BASE_URL", stooq.DefaultBaseURL),

		SummarizerProvider: provider,
		SummaryModel:       getenv("SUMMARY_MODEL"),

		UpstreamTimeout: timeout,
		GRPCHealthAddr:  getenv("GRPC_HEALTH_ADDR"),

		LogLevel:  env("LOG_LEVEL", "info"),
		LogFormat: env("LOG_FORMAT", "json"),
		GinMode:   env("GIN_MODE", "release"),
	}

	switch provider {
	case llm.ProviderOpenAI:
		cfg.SummarizerAPIKey = getenv("OPENAI_API_KEY")
		cfg.SummarizerBaseURL = getenv("OPENAI_BASE_URL")
	case llm.ProviderAnthropic:
		cfg.SummarizerAPIKey = getenv("ANTHROPIC_API_KEY")
		cfg.SummarizerBaseURL = getenv("ANTHROPIC_BASE_URL")
	default:
		cfg.SummarizerAPIKey = getenv("GROQ_API_KEY")
		cfg.SummarizerBaseURL = env("GROQ_BASE_URL", llm.DefaultGroqBaseURL)
	}

	return cfg, nil
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
