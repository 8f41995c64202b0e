package graph

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeDeduplicatesAndCaptions(t *testing.T) {
	g := &Graph{}
	seen := map[string]struct{}{}

	consultant := dbtype.Node{
		ElementId: "n-1",
		Labels:    []string{"Consultant"},
		Props:     map[string]any{"name": "Ola Nordmann"},
	}
	g.addNode(consultant, seen)
	g.addNode(consultant, seen)

	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "Ola Nordmann", g.Nodes[0].Caption)
	assert.Equal(t, []string{"Consultant"}, g.Nodes[0].Labels)
}

func TestNodeCaptionFallsBackToLabel(t *testing.T) {
	n := dbtype.Node{ElementId: "n-2", Labels: []string{"Skill"}, Props: map[string]any{}}
	assert.Equal(t, "Skill", nodeCaption(n))

	bare := dbtype.Node{ElementId: "n-3"}
	assert.Equal(t, "n-3", nodeCaption(bare))
}

func TestAddRelDeduplicates(t *testing.T) {
	g := &Graph{}
	seen := map[string]struct{}{}

	rel := dbtype.Relationship{
		ElementId:      "r-1",
		StartElementId: "n-1",
		EndElementId:   "n-2",
		Type:           "HAS_SKILL",
	}
	g.addRel(rel, seen)
	g.addRel(rel, seen)

	require.Len(t, g.Rels, 1)
	assert.Equal(t, "HAS_SKILL", g.Rels[0].Type)
	assert.Equal(t, "n-1", g.Rels[0].From)
	assert.Equal(t, "n-2", g.Rels[0].To)
}
