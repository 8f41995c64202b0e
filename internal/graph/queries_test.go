package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryByName(t *testing.T) {
	q, ok := QueryByName("skills")
	require.True(t, ok)
	assert.Contains(t, q.Cypher, "HAS_SKILL")

	_, ok = QueryByName("nope")
	assert.False(t, ok)
}

func TestQueriesAreReadOnly(t *testing.T) {
	for _, q := range Queries {
		upper := strings.ToUpper(q.Cypher)
		assert.Contains(t, upper, "MATCH", q.Name)
		for _, verb := range []string{"CREATE", "MERGE", "DELETE", "SET ", "REMOVE"} {
			assert.NotContains(t, upper, verb, q.Name)
		}
	}
}

func TestQueryNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, q := range Queries {
		assert.False(t, seen[q.Name], q.Name)
		seen[q.Name] = true
	}
}
