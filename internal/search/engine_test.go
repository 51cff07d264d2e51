package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarlife/spacebio/internal/model"
)

func testCorpus() []model.Publication {
	return []model.Publication{
		{
			Title:           "Effects of Microgravity on Bone",
			Abstract:        "Bone loss was measured in mice aboard the station.",
			Organisms:       []string{"mice"},
			ExperimentTypes: []string{"microgravity", "bone"},
			Missions:        []string{"ISS"},
		},
		{
			Title:           "Plant Growth in Space",
			Abstract:        "Arabidopsis seedlings were grown during the flight.",
			Organisms:       []string{"plants"},
			ExperimentTypes: []string{"microgravity"},
		},
	}
}

func TestEmptyQueryPassThrough(t *testing.T) {
	corpus := testCorpus()
	e := New(corpus, Options{})

	results := e.Search("", Filters{})
	require.Len(t, results, len(corpus))
	for i, r := range results {
		assert.Equal(t, corpus[i].Title, r.Publication.Title)
		assert.Equal(t, 0.0, r.Score)
	}
}

func TestQueryMatchesSingleRecord(t *testing.T) {
	e := New(testCorpus(), Options{})

	results := e.Search("bone", Filters{})
	require.Len(t, results, 1)
	assert.Equal(t, "Effects of Microgravity on Bone", results[0].Publication.Title)
	assert.Greater(t, results[0].Score, 0.0)
}

func TestNoMatchRecordsAreDropped(t *testing.T) {
	e := New(testCorpus(), Options{})
	assert.Empty(t, e.Search("volcano", Filters{}))
}

func TestFiltersRestrictCandidates(t *testing.T) {
	e := New(testCorpus(), Options{})

	results := e.Search("", Filters{Organism: "Plants"})
	require.Len(t, results, 1)
	assert.Equal(t, "Plant Growth in Space", results[0].Publication.Title)

	// "all" is inactive.
	assert.Len(t, e.Search("", Filters{Organism: "all"}), 2)
}

func TestFilterAppliesWithQuery(t *testing.T) {
	e := New(testCorpus(), Options{})

	results := e.Search("microgravity", Filters{Organism: "plants"})
	for _, r := range results {
		assert.Equal(t, "Plant Growth in Space", r.Publication.Title)
	}
}

func TestTagBoostOrdering(t *testing.T) {
	corpus := []model.Publication{
		{Title: "A", Abstract: "spaceflight study", Organisms: []string{"mice"}},
		{Title: "B", Abstract: "spaceflight study", Missions: []string{"ISS"}},
	}
	e := New(corpus, Options{})

	// Identical text; the mission tag match must outrank the organism
	// tag match on a query naming both tags.
	results := e.Search("mice on the ISS", Filters{})
	require.Len(t, results, 2)
	assert.Equal(t, "B", results[0].Publication.Title)
	assert.Equal(t, "A", results[1].Publication.Title)
}

func TestEqualScoresKeepCorpusOrder(t *testing.T) {
	corpus := []model.Publication{
		{Title: "First Twin", Abstract: "identical radiation study"},
		{Title: "Second Twin", Abstract: "identical radiation study"},
	}
	e := New(corpus, Options{})

	results := e.Search("radiation", Filters{})
	require.Len(t, results, 2)
	assert.Equal(t, "First Twin", results[0].Publication.Title)
	assert.Equal(t, "Second Twin", results[1].Publication.Title)
}

func TestSubstringStrategy(t *testing.T) {
	e := New(testCorpus(), Options{Strategy: StrategySubstring})

	results := e.Search("arabidopsis", Filters{})
	require.Len(t, results, 1)
	assert.Equal(t, "Plant Growth in Space", results[0].Publication.Title)

	// Title hits outweigh abstract hits 2:1.
	corpus := []model.Publication{
		{Title: "Radiation Dosimetry", Abstract: "unrelated text"},
		{Title: "Unrelated", Abstract: "radiation exposure data"},
	}
	e = New(corpus, Options{Strategy: StrategySubstring})
	results = e.Search("radiation", Filters{})
	require.Len(t, results, 2)
	assert.Equal(t, "Radiation Dosimetry", results[0].Publication.Title)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestMaxResultsTruncates(t *testing.T) {
	e := New(testCorpus(), Options{MaxResults: 1})
	assert.Len(t, e.Search("", Filters{}), 1)
}
