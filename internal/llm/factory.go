package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lunarlife/spacebio/internal/config"
)

// NewClient resolves a backend name to a generation client. The name
// overrides the configured default provider, so one config serves every
// backend the caller may select per request. A missing credential is a
// configuration error returned to the caller, not a crash.
func NewClient(ctx context.Context, cfg *config.Config, backend string) (Client, error) {
	provider := strings.ToLower(strings.TrimSpace(backend))
	if provider == "" {
		provider = strings.ToLower(cfg.LLM.Provider)
	}

	switch provider {
	case "openai":
		apiKey := cfg.LLM.APIKey
		if apiKey == "" {
			return nil, fmt.Errorf("openai backend: no API key configured (set OPENAI_API_KEY)")
		}
		return NewOpenAIClient(apiKey, cfg.LLM.Model, cfg.LLM.BaseURL, cfg.LLM.SystemPrompt, cfg.LLM.Temperature), nil

	case "claude":
		apiKey := cfg.LLM.APIKey
		if apiKey == "" {
			return nil, fmt.Errorf("claude backend: no API key configured (set ANTHROPIC_API_KEY)")
		}
		return NewClaudeClient(apiKey, cfg.LLM.Model, cfg.LLM.BaseURL, cfg.LLM.SystemPrompt), nil

	case "gemini":
		apiKey := cfg.LLM.APIKey
		if apiKey == "" {
			return nil, fmt.Errorf("gemini backend: no API key configured (set GEMINI_API_KEY)")
		}
		return NewGeminiClient(ctx, apiKey, cfg.LLM.Model, cfg.LLM.SystemPrompt, cfg.LLM.Temperature)

	case "ollama":
		// Ollama speaks the OpenAI-compatible API; the key is ignored
		// but the client config requires one.
		baseURL := cfg.LLM.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}
		apiKey := cfg.LLM.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		return NewOpenAIClient(apiKey, cfg.LLM.Model, baseURL, cfg.LLM.SystemPrompt, cfg.LLM.Temperature), nil

	case "local":
		timeout := time.Duration(cfg.Local.TimeoutSecs) * time.Second
		return NewLocalClient(cfg.Local.Command, cfg.Local.Model, timeout), nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", provider)
	}
}
