package llm

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// GroqClient talks to Groq's OpenAI-compatible chat completions endpoint.
type GroqClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewGroqClient(opts Options) *GroqClient {
	cfg := openai.DefaultConfig(opts.APIKey)
	cfg.BaseURL = DefaultGroqBaseURL
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	model := opts.Model
	if model == "" {
		model = DefaultModel(ProviderGroq)
	}
	return &GroqClient{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: opts.Timeout,
	}
}

func (c *GroqClient) Name() string { return ProviderGroq }

func (c *GroqClient) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	seed := 0
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
		// temperature is omitempty in go-openai; a literal 0 would be dropped
		Temperature: math.SmallestNonzeroFloat32,
		TopP:        1,
		Seed:        &seed,
	})
	if err != nil {
		return "", fmt.Errorf("groq API error: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("model", resp.Model).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("groq completion")

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
