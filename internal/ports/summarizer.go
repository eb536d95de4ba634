package ports

import "context"

type Summarizer interface {
	// Complete sends a system instruction plus one user turn and returns the
	// generated text, "" when the provider returned no content.
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
	Name() string
}
