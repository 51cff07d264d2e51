package graph

import (
	"context"
	"fmt"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const (
	mergePublicationQuery = "MERGE (p:Publication {title: $title}) SET p.url = $url"
	mergeKeywordQuery     = "MERGE (k:Keyword {name: $name})"
	mergeMentionQuery     = "MATCH (p:Publication {title: $from}) MATCH (k:Keyword {name: $to}) MERGE (p)-[:MENTIONS]->(k)"
)

// Store persists knowledge graphs to Memgraph over the Bolt protocol.
type Store struct {
	Driver neo4j.DriverWithContext
}

func NewStore(uri, username, password string) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to Memgraph")
	return &Store{Driver: driver}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.Driver.Close(ctx)
}

func (s *Store) executeQuery(ctx context.Context, query string, params map[string]interface{}) error {
	_, err := neo4j.ExecuteQuery(ctx, s.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// BuildIndices creates the lookup indices used by the MERGE queries.
func (s *Store) BuildIndices(ctx context.Context) error {
	queries := []string{
		"CREATE INDEX ON :Publication(title);",
		"CREATE INDEX ON :Keyword(name);",
	}

	for _, q := range queries {
		if err := s.executeQuery(ctx, q, nil); err != nil {
			// The index may already exist.
			log.Printf("Warning: failed to create index '%s': %v", q, err)
		}
	}
	return nil
}

// Export upserts the graph's nodes and edges.
func (s *Store) Export(ctx context.Context, g *Graph) error {
	for _, node := range g.Nodes {
		var err error
		switch node.Kind {
		case KindPublication:
			err = s.executeQuery(ctx, mergePublicationQuery, map[string]interface{}{
				"title": node.ID,
				"url":   node.URL,
			})
		case KindKeyword:
			err = s.executeQuery(ctx, mergeKeywordQuery, map[string]interface{}{
				"name": node.ID,
			})
		default:
			err = fmt.Errorf("unknown node kind %q", node.Kind)
		}
		if err != nil {
			return fmt.Errorf("exporting node %q: %w", node.ID, err)
		}
	}

	for _, edge := range g.Edges {
		params := map[string]interface{}{"from": edge.From, "to": edge.To}
		if err := s.executeQuery(ctx, mergeMentionQuery, params); err != nil {
			return fmt.Errorf("exporting edge %s -> %s: %w", edge.From, edge.To, err)
		}
	}
	return nil
}
