package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// CorpusConfig locates the publications CSV.
type CorpusConfig struct {
	Path        string `toml:"path"`
	MaxKeywords int    `toml:"max_keywords"`
}

// LLMConfig configures the hosted generation backends.
type LLMConfig struct {
	Provider     string  `toml:"provider"`
	Model        string  `toml:"model"`
	APIKey       string  `toml:"api_key"`
	BaseURL      string  `toml:"base_url"`
	SystemPrompt string  `toml:"system_prompt"`
	Temperature  float32 `toml:"temperature"`
}

// LocalConfig configures the locally-run model subprocess backend.
type LocalConfig struct {
	Command     string `toml:"command"`
	Model       string `toml:"model"`
	TimeoutSecs int    `toml:"timeout_secs"`
}

// SearchConfig tunes the ranking engine.
type SearchConfig struct {
	Strategy        string  `toml:"strategy"`
	TitleWeight     int     `toml:"title_weight"`
	MissionBoost    float64 `toml:"mission_boost"`
	ExperimentBoost float64 `toml:"experiment_boost"`
	OrganismBoost   float64 `toml:"organism_boost"`
	MaxResults      int     `toml:"max_results"`
}

// SummaryConfig tunes context assembly.
type SummaryConfig struct {
	MaxContextChars int `toml:"max_context_chars"`
}

// GraphConfig connects the optional knowledge-graph store.
type GraphConfig struct {
	URI         string `toml:"uri"`
	User        string `toml:"user"`
	Password    string `toml:"password"`
	MaxKeywords int    `toml:"max_keywords"`
}

type Config struct {
	Corpus  CorpusConfig  `toml:"corpus"`
	LLM     LLMConfig     `toml:"llm"`
	Local   LocalConfig   `toml:"local"`
	Search  SearchConfig  `toml:"search"`
	Summary SummaryConfig `toml:"summary"`
	Graph   GraphConfig   `toml:"graph"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is
// present.
func Default() *Config {
	return &Config{
		Corpus: CorpusConfig{Path: "data/publications_with_abstracts.csv"},
		LLM: LLMConfig{
			Provider:     "openai",
			Model:        "gpt-4",
			SystemPrompt: "You are a space biology research expert.",
			Temperature:  0.5,
		},
		Local: LocalConfig{Command: "ollama", Model: "llama2", TimeoutSecs: 40},
	}
}
