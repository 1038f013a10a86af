package roomgraph_test

import (
	"testing"

	"github.com/katalvlaran/dunlath/roomgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPath constructs the path graph 0-1-2-...-(n-1).
func buildPath(n int) *roomgraph.Graph {
	g := roomgraph.New()
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 1; i < n; i++ {
		_ = g.AddEdge(i-1, i)
	}

	return g
}

// TestGraph_AddRemove covers basic mutation and the sentinel errors.
func TestGraph_AddRemove(t *testing.T) {
	g := roomgraph.New()
	g.AddNode(3)
	g.AddNode(7)
	g.AddNode(3) // idempotent

	assert.Equal(t, 2, g.NodeCount())
	assert.True(t, g.HasNode(3))
	assert.False(t, g.HasNode(0))

	require.NoError(t, g.AddEdge(3, 7))
	assert.True(t, g.HasEdge(7, 3)) // undirected
	assert.Equal(t, 1, g.EdgeCount())

	assert.ErrorIs(t, g.AddEdge(3, 3), roomgraph.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge(3, 99), roomgraph.ErrNodeNotFound)
	assert.ErrorIs(t, g.RemoveNode(99), roomgraph.ErrNodeNotFound)

	require.NoError(t, g.RemoveEdge(7, 3))
	assert.False(t, g.HasEdge(3, 7))
	assert.Equal(t, 0, g.EdgeCount())
}

// TestGraph_StableIdentityUnderRemoval: removing a node leaves every other
// identifier and its adjacency intact.
func TestGraph_StableIdentityUnderRemoval(t *testing.T) {
	g := buildPath(5)

	require.NoError(t, g.RemoveNode(2))

	assert.False(t, g.HasNode(2))
	for _, id := range []int{0, 1, 3, 4} {
		assert.True(t, g.HasNode(id), "node %d must survive", id)
	}
	// Incident edges of node 2 are gone; the rest remain.
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 3))
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(3, 4))
}

// TestGraph_SortedAccessors: Nodes, Neighbors, and Edges come back sorted,
// which every deterministic traversal in this package relies on.
func TestGraph_SortedAccessors(t *testing.T) {
	g := roomgraph.New()
	for _, id := range []int{9, 1, 5, 3} {
		g.AddNode(id)
	}
	require.NoError(t, g.AddEdge(9, 1))
	require.NoError(t, g.AddEdge(9, 3))
	require.NoError(t, g.AddEdge(5, 1))

	assert.Equal(t, []int{1, 3, 5, 9}, g.Nodes())
	assert.Equal(t, []int{1, 3}, g.Neighbors(9))
	assert.Equal(t, [][2]int{{1, 5}, {1, 9}, {3, 9}}, g.Edges())
	assert.Equal(t, 2, g.Degree(9))
	assert.Equal(t, 0, g.Degree(42))
}

// TestGraph_Clone: the copy shares no storage with the original.
func TestGraph_Clone(t *testing.T) {
	g := buildPath(3)
	c := g.Clone()

	require.NoError(t, g.RemoveNode(1))

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 3, c.NodeCount())
	assert.True(t, c.HasEdge(0, 1))
	assert.True(t, c.HasEdge(1, 2))
}
