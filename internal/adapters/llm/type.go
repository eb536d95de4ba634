package llm

import "time"

const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
)

var defaultModels = map[string]string{
	ProviderGroq:      "llama-3.1-8b-instant",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-5-haiku-latest",
}

type Options struct {
	APIKey  string
	BaseURL string // empty = provider default
	Model   string // empty = provider default
	Timeout time.Duration
}

// DefaultModel returns the model used for provider when none is configured.
func DefaultModel(provider string) string {
	return defaultModels[provider]
}
