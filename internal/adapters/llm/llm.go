package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cp25sy5-modjot/market-proxy-service/internal/ports"
)

// New returns the summarizer for provider ("groq", "openai" or "anthropic").
func New(provider string, opts Options) (ports.Summarizer, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		provider = ProviderGroq
	}
	if opts.Model == "" {
		opts.Model = DefaultModel(provider)
	}

	switch provider {
	case ProviderGroq:
		return NewGroqClient(opts), nil
	case ProviderOpenAI:
		return NewOpenAIClient(opts), nil
	case ProviderAnthropic:
		return NewAnthropicClient(opts), nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", provider)
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
