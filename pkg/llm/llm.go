package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by providers that have no API key.
var ErrNotConfigured = errors.New("llm provider is not configured")

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
