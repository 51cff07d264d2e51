// Package graph builds the publication/keyword knowledge graph and
// optionally persists it to a graph database. Rendering is the UI
// layer's job.
package graph

import (
	"github.com/lunarlife/spacebio/internal/model"
)

// DefaultMaxKeywords caps keyword nodes linked per publication.
const DefaultMaxKeywords = 5

const (
	KindPublication = "publication"
	KindKeyword     = "keyword"
)

// Node is either a publication (ID = title, URL set) or a keyword
// (ID = keyword text).
type Node struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	URL  string `json:"url,omitempty"`
}

// Edge links a publication node to a keyword node.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Build creates one publication node per record and one shared keyword
// node per distinct keyword, with publication -> keyword edges. At most
// maxKeywords keywords per publication are linked (<= 0 means
// DefaultMaxKeywords).
func Build(pubs []model.Publication, maxKeywords int) *Graph {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}

	g := &Graph{}
	keywordSeen := make(map[string]bool)
	for _, pub := range pubs {
		g.Nodes = append(g.Nodes, Node{ID: pub.Title, Kind: KindPublication, URL: pub.Link})

		keywords := pub.Keywords
		if len(keywords) > maxKeywords {
			keywords = keywords[:maxKeywords]
		}
		for _, kw := range keywords {
			if !keywordSeen[kw] {
				keywordSeen[kw] = true
				g.Nodes = append(g.Nodes, Node{ID: kw, Kind: KindKeyword})
			}
			g.Edges = append(g.Edges, Edge{From: pub.Title, To: kw})
		}
	}
	return g
}
