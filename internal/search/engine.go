// Package search scores and orders publications against a free-text
// query with optional metadata filters.
package search

import (
	"sort"
	"strings"

	"github.com/lunarlife/spacebio/internal/model"
)

// Strategy selects the ranking implementation.
type Strategy string

const (
	// StrategyTFIDF ranks by cosine similarity over TF-IDF vectors.
	StrategyTFIDF Strategy = "tfidf"
	// StrategySubstring ranks by case-insensitive containment, the
	// original dashboard behavior.
	StrategySubstring Strategy = "substring"
)

// Boosts are the additive tag-match bonuses per category. Their
// relative ordering (mission > experiment >= organism) is part of the
// ranking contract; the magnitudes are tuning constants.
type Boosts struct {
	Mission    float64
	Experiment float64
	Organism   float64
}

// DefaultBoosts returns the tuned defaults.
func DefaultBoosts() Boosts {
	return Boosts{Mission: 0.30, Experiment: 0.20, Organism: 0.15}
}

// Options configure an Engine at construction.
type Options struct {
	Strategy Strategy
	// TitleWeight is how many times title terms count relative to
	// abstract terms; <= 0 means 2 (title weighted 2:1).
	TitleWeight int
	Boosts      Boosts
	// MaxResults truncates the result list; <= 0 means unlimited.
	MaxResults int
}

// Filters restrict candidates by tag membership. Empty or "all" values
// are inactive.
type Filters struct {
	Organism       string `form:"organism" json:"organism"`
	ExperimentType string `form:"experiment_type" json:"experiment_type"`
	Mission        string `form:"mission" json:"mission"`
}

func active(v string) bool {
	return v != "" && !strings.EqualFold(v, "all")
}

// Engine ranks a fixed corpus. The corpus is read-only after
// construction, so one engine is safe to share across sessions.
type Engine struct {
	corpus []model.Publication
	opts   Options
	vec    *vectorizer
	docs   [][]float64
}

// New fits an engine on the corpus. With StrategyTFIDF the document
// vectors are precomputed here so each query costs one vectorization.
func New(corpus []model.Publication, opts Options) *Engine {
	if opts.Strategy == "" {
		opts.Strategy = StrategyTFIDF
	}
	if opts.TitleWeight <= 0 {
		opts.TitleWeight = 2
	}
	if opts.Boosts == (Boosts{}) {
		opts.Boosts = DefaultBoosts()
	}

	e := &Engine{corpus: corpus, opts: opts}
	if opts.Strategy == StrategyTFIDF {
		docs := make([]string, len(corpus))
		for i, pub := range corpus {
			docs[i] = weightedText(pub, opts.TitleWeight)
		}
		e.vec = newVectorizer(docs)
		e.docs = make([][]float64, len(docs))
		for i, doc := range docs {
			e.docs[i] = e.vec.vector(doc)
		}
	}
	return e
}

// weightedText repeats the title so its terms count titleWeight times
// against the abstract's.
func weightedText(pub model.Publication, titleWeight int) string {
	parts := make([]string, 0, titleWeight+1)
	for i := 0; i < titleWeight; i++ {
		parts = append(parts, pub.Title)
	}
	parts = append(parts, pub.Abstract)
	return strings.Join(parts, " ")
}

// Search scores and orders the corpus subset surviving the filters.
// An empty query is a pass-through: every surviving record comes back
// in corpus order with score 0. With a query, records scoring <= 0 are
// dropped and the rest sort by descending score, ties keeping corpus
// order.
func (e *Engine) Search(query string, filters Filters) []model.SearchResult {
	query = strings.TrimSpace(query)

	var candidates []int
	for i, pub := range e.corpus {
		if matchesFilters(pub, filters) {
			candidates = append(candidates, i)
		}
	}

	if query == "" {
		results := make([]model.SearchResult, 0, len(candidates))
		for _, i := range candidates {
			results = append(results, model.SearchResult{Publication: e.corpus[i]})
		}
		return truncate(results, e.opts.MaxResults)
	}

	var queryVec []float64
	if e.opts.Strategy == StrategyTFIDF {
		queryVec = e.vec.vector(query)
	}

	var results []model.SearchResult
	for _, i := range candidates {
		pub := e.corpus[i]
		var score float64
		if e.opts.Strategy == StrategyTFIDF {
			score = cosine(queryVec, e.docs[i])
		} else {
			score = substringScore(pub, query)
		}
		score += e.tagBoost(pub, query)
		if score <= 0 {
			continue
		}
		results = append(results, model.SearchResult{Publication: pub, Score: score})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	return truncate(results, e.opts.MaxResults)
}

// substringScore mirrors the title-over-abstract 2:1 weighting of the
// TF-IDF path: a title hit scores 1.0, an abstract hit 0.5.
func substringScore(pub model.Publication, query string) float64 {
	q := strings.ToLower(query)
	score := 0.0
	if strings.Contains(strings.ToLower(pub.Title), q) {
		score += 1.0
	}
	if strings.Contains(strings.ToLower(pub.Abstract), q) {
		score += 0.5
	}
	return score
}

// tagBoost adds one bonus per category whose tags intersect the query
// text, case-insensitively in either direction.
func (e *Engine) tagBoost(pub model.Publication, query string) float64 {
	boost := 0.0
	if tagsMatchQuery(pub.Missions, query) {
		boost += e.opts.Boosts.Mission
	}
	if tagsMatchQuery(pub.ExperimentTypes, query) {
		boost += e.opts.Boosts.Experiment
	}
	if tagsMatchQuery(pub.Organisms, query) {
		boost += e.opts.Boosts.Organism
	}
	return boost
}

func tagsMatchQuery(tags []string, query string) bool {
	q := strings.ToLower(query)
	for _, tag := range tags {
		t := strings.ToLower(tag)
		if strings.Contains(q, t) || strings.Contains(t, q) {
			return true
		}
	}
	return false
}

func matchesFilters(pub model.Publication, f Filters) bool {
	if active(f.Organism) && !containsFold(pub.Organisms, f.Organism) {
		return false
	}
	if active(f.ExperimentType) && !containsFold(pub.ExperimentTypes, f.ExperimentType) {
		return false
	}
	if active(f.Mission) && !containsFold(pub.Missions, f.Mission) {
		return false
	}
	return true
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

func truncate(results []model.SearchResult, max int) []model.SearchResult {
	if max > 0 && len(results) > max {
		return results[:max]
	}
	return results
}
