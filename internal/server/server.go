package server

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/lunarlife/spacebio/internal/chat"
	"github.com/lunarlife/spacebio/internal/config"
	"github.com/lunarlife/spacebio/internal/corpus"
	"github.com/lunarlife/spacebio/internal/graph"
	"github.com/lunarlife/spacebio/internal/llm"
	"github.com/lunarlife/spacebio/internal/model"
	"github.com/lunarlife/spacebio/internal/search"
	"github.com/lunarlife/spacebio/internal/summary"
)

// Server wires the publication pipeline behind the HTTP API. The
// corpus is loaded once and shared read-only across sessions; the
// mutex only guards the corpus/engine swap on reload.
type Server struct {
	cfg     *config.Config
	cache   *corpus.Cache
	gateway *summary.Gateway
	chats   *chat.Store
	graphs  *graph.Store

	mu     sync.RWMutex
	pubs   []model.Publication
	engine *search.Engine
}

// NewFromEnv loads configuration (CONFIG_PATH or config/config.toml,
// falling back to defaults) and applies environment overrides before
// constructing the server.
func NewFromEnv() (*Server, error) {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}

	applyEnvOverrides(cfg)
	return New(cfg)
}

func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("CORPUS_PATH"); v != "" {
		cfg.Corpus.Path = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if cfg.LLM.APIKey == "" {
		// Provider-specific credentials from the process environment.
		for _, name := range []string{"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY"} {
			if v := os.Getenv(name); v != "" {
				cfg.LLM.APIKey = v
				break
			}
		}
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		cfg.Graph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		cfg.Graph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		cfg.Graph.Password = v
	}
}

// New builds the pipeline from configuration: corpus cache and initial
// load, ranking engine, summarization gateway and chat store. A graph
// store is attached when one is configured; failing to reach it is a
// warning, not a startup failure.
func New(cfg *config.Config) (*Server, error) {
	cache := corpus.NewCache(corpus.Loader{MaxKeywords: cfg.Corpus.MaxKeywords})
	pubs, err := cache.Load(cfg.Corpus.Path)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	log.Printf("Loaded %d publications from %s", len(pubs), cfg.Corpus.Path)

	factory := func(ctx context.Context, backend string) (llm.Client, error) {
		return llm.NewClient(ctx, cfg, backend)
	}

	s := &Server{
		cfg:     cfg,
		cache:   cache,
		gateway: summary.NewGateway(factory),
		chats:   chat.NewStore(),
		pubs:    pubs,
		engine:  search.New(pubs, engineOptions(cfg)),
	}

	if cfg.Graph.URI != "" {
		store, err := graph.NewStore(cfg.Graph.URI, cfg.Graph.User, cfg.Graph.Password)
		if err != nil {
			log.Printf("Warning: graph store unavailable at %s: %v", cfg.Graph.URI, err)
		} else {
			if err := store.BuildIndices(context.Background()); err != nil {
				log.Printf("Warning: building graph indices: %v", err)
			}
			s.graphs = store
		}
	}

	return s, nil
}

func engineOptions(cfg *config.Config) search.Options {
	opts := search.Options{
		Strategy:    search.Strategy(cfg.Search.Strategy),
		TitleWeight: cfg.Search.TitleWeight,
		MaxResults:  cfg.Search.MaxResults,
	}
	if cfg.Search.MissionBoost > 0 || cfg.Search.ExperimentBoost > 0 || cfg.Search.OrganismBoost > 0 {
		opts.Boosts = search.Boosts{
			Mission:    cfg.Search.MissionBoost,
			Experiment: cfg.Search.ExperimentBoost,
			Organism:   cfg.Search.OrganismBoost,
		}
	}
	return opts
}

// reload re-reads the corpus after an explicit cache invalidation and
// swaps in a freshly fitted engine.
func (s *Server) reload() error {
	s.cache.Invalidate(s.cfg.Corpus.Path)
	pubs, err := s.cache.Load(s.cfg.Corpus.Path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pubs = pubs
	s.engine = search.New(pubs, engineOptions(s.cfg))
	return nil
}

func (s *Server) snapshot() ([]model.Publication, *search.Engine) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pubs, s.engine
}

func (s *Server) assembleOptions(question string, includeExtended bool) summary.AssembleOptions {
	return summary.AssembleOptions{
		Question:        question,
		IncludeExtended: includeExtended,
		MaxChars:        s.cfg.Summary.MaxContextChars,
	}
}

func now() time.Time { return time.Now().UTC() }
