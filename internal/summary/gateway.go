package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/lunarlife/spacebio/internal/llm"
	"github.com/lunarlife/spacebio/internal/model"
)

// promptInstruction asks the backend for the labeled sections the
// reply parser looks for.
const promptInstruction = "Please summarize the following publication in three sections: Introduction, Results, Conclusion."

// ClientFactory resolves a backend name ("openai", "claude", "gemini",
// "ollama", "local") to a generation client. An unknown name or a
// missing credential is returned as an error, never a panic.
type ClientFactory func(ctx context.Context, backend string) (llm.Client, error)

// Gateway sends assembled prompts to one of the interchangeable
// generation backends and parses the reply into a SummaryResult. Every
// failure (unknown backend, missing credential, unreachable endpoint,
// subprocess timeout) converts to an error-populated result; Summarize
// never returns a Go error and never retries.
type Gateway struct {
	factory ClientFactory
}

// NewGateway builds a gateway over the given client factory.
func NewGateway(factory ClientFactory) *Gateway {
	return &Gateway{factory: factory}
}

// Summarize runs one generation call for the given title and assembled
// content against the named backend.
func (g *Gateway) Summarize(ctx context.Context, title, content, backend string) model.SummaryResult {
	client, err := g.factory(ctx, backend)
	if err != nil {
		return failure(backend, err)
	}

	prompt := buildPrompt(title, content)
	reply, err := client.Generate(ctx, prompt)
	if err != nil {
		return failure(backend, err)
	}

	result := parseReply(reply)
	result.Backend = backend
	result.GeneratedAt = time.Now().UTC()
	return result
}

func buildPrompt(title, content string) string {
	return fmt.Sprintf("%s\nTitle: %s\nContent: %s", promptInstruction, title, content)
}

func failure(backend string, err error) model.SummaryResult {
	return model.SummaryResult{
		Backend:     backend,
		GeneratedAt: time.Now().UTC(),
		Error:       err.Error(),
	}
}
