package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarlife/spacebio/internal/model"
)

func TestBuildNodesAndEdges(t *testing.T) {
	pubs := []model.Publication{
		{Title: "Bone Study", Link: "https://example.org/1", Keywords: []string{"bone", "mice"}},
		{Title: "Plant Study", Link: "https://example.org/2", Keywords: []string{"plants", "mice"}},
	}

	g := Build(pubs, 0)

	// 2 publications + 3 distinct keywords.
	require.Len(t, g.Nodes, 5)
	require.Len(t, g.Edges, 4)

	kinds := make(map[string]string)
	for _, n := range g.Nodes {
		kinds[n.ID] = n.Kind
	}
	assert.Equal(t, KindPublication, kinds["Bone Study"])
	assert.Equal(t, KindKeyword, kinds["mice"])

	assert.Contains(t, g.Edges, Edge{From: "Bone Study", To: "bone"})
	assert.Contains(t, g.Edges, Edge{From: "Plant Study", To: "mice"})
}

func TestBuildCapsKeywordsPerPublication(t *testing.T) {
	pubs := []model.Publication{
		{Title: "Busy Study", Keywords: []string{"a", "b", "c", "d"}},
	}

	g := Build(pubs, 2)
	assert.Len(t, g.Edges, 2)
	assert.Equal(t, Edge{From: "Busy Study", To: "a"}, g.Edges[0])
}

func TestBuildKeepsPublicationURL(t *testing.T) {
	g := Build([]model.Publication{{Title: "T", Link: "https://example.org"}}, 0)
	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "https://example.org", g.Nodes[0].URL)
}
