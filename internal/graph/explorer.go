// Package graph explores the staffing graph database: consultants,
// skills, projects, and companies, connected by HAS_SKILL, ASSIGNED_TO,
// OWNED_BY, and REQUIRES_SKILL relationships. Query execution lives in
// the database; this package only runs read transactions and maps the
// records into a renderable node/relationship set.
package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/metrics"
)

// Node is one graph vertex.
type Node struct {
	ID      string
	Labels  []string
	Caption string
	Props   map[string]any
}

// Rel is one directed relationship between two nodes.
type Rel struct {
	Type string
	From string
	To   string
}

// Graph is the deduplicated result of one query.
type Graph struct {
	Nodes []Node
	Rels  []Rel
}

// Explorer runs read-only Cypher against the staffing graph.
type Explorer struct {
	driver neo4j.DriverWithContext
	logger *slog.Logger
}

// NewExplorer connects to the graph database over bolt.
func NewExplorer(uri, username, password string, logger *slog.Logger) (*Explorer, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("graph: creating driver: %w", err)
	}
	return &Explorer{driver: driver, logger: logger}, nil
}

// Close releases the underlying driver.
func (e *Explorer) Close(ctx context.Context) error {
	return e.driver.Close(ctx)
}

// Run executes one read-only Cypher query and collects every node and
// relationship appearing in the result, deduplicated by element id.
func (e *Explorer) Run(ctx context.Context, cypher string) (*Graph, error) {
	metrics.Inc(metrics.GraphQueriesRun)
	session := e.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer func() { _ = session.Close(ctx) }()

	records, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, cypher, nil)
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("graph: running query: %w", err)
	}

	g := &Graph{}
	seenNodes := map[string]struct{}{}
	seenRels := map[string]struct{}{}

	for _, record := range records.([]*neo4j.Record) {
		for _, value := range record.Values {
			switch v := value.(type) {
			case dbtype.Node:
				g.addNode(v, seenNodes)
			case dbtype.Relationship:
				g.addRel(v, seenRels)
			case dbtype.Path:
				for _, n := range v.Nodes {
					g.addNode(n, seenNodes)
				}
				for _, r := range v.Relationships {
					g.addRel(r, seenRels)
				}
			}
		}
	}

	e.logger.Debug("graph query collected", "nodes", len(g.Nodes), "relationships", len(g.Rels))
	return g, nil
}

func (g *Graph) addNode(n dbtype.Node, seen map[string]struct{}) {
	if _, ok := seen[n.ElementId]; ok {
		return
	}
	seen[n.ElementId] = struct{}{}
	g.Nodes = append(g.Nodes, Node{
		ID:      n.ElementId,
		Labels:  n.Labels,
		Caption: nodeCaption(n),
		Props:   n.Props,
	})
}

func (g *Graph) addRel(r dbtype.Relationship, seen map[string]struct{}) {
	if _, ok := seen[r.ElementId]; ok {
		return
	}
	seen[r.ElementId] = struct{}{}
	g.Rels = append(g.Rels, Rel{
		Type: r.Type,
		From: r.StartElementId,
		To:   r.EndElementId,
	})
}

// nodeCaption prefers the name property, falling back to the first label.
func nodeCaption(n dbtype.Node) string {
	if name, ok := n.Props["name"].(string); ok && name != "" {
		return name
	}
	if len(n.Labels) > 0 {
		return n.Labels[0]
	}
	return n.ElementId
}
