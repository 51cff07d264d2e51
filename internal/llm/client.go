package llm

import (
	"context"
)

// Client generates a text completion for a prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
