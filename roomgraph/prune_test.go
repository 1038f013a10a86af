package roomgraph_test

import (
	"testing"

	"github.com/katalvlaran/dunlath/roomgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
)

// acceptAll never vetoes a removal.
func acceptAll(*roomgraph.Graph) bool { return true }

// acceptKeeping builds an AcceptFunc requiring every listed node to remain.
func acceptKeeping(ids ...int) roomgraph.AcceptFunc {
	keep := mapset.New[int]()
	for _, id := range ids {
		keep.Put(id)
	}

	return func(g *roomgraph.Graph) bool {
		ok := true
		keep.Each(func(id int) {
			if !g.HasNode(id) {
				ok = false
			}
		})

		return ok
	}
}

// TestPruneOuterNodes_ReachesTarget: unconstrained pruning of a path graph
// hits the requested size exactly, eating inward from the leaves.
func TestPruneOuterNodes_ReachesTarget(t *testing.T) {
	g := buildPath(6)

	roomgraph.PruneOuterNodes(g, acceptAll, 3)

	assert.Equal(t, 3, g.NodeCount())
	// The survivors still form a connected path.
	comps := roomgraph.ConnectedComponents(g)
	require.Len(t, comps, 1)
}

// TestPruneOuterNodes_PreservesProtected: nodes the predicate pins are never
// removed, even when they are prime pruning candidates.
func TestPruneOuterNodes_PreservesProtected(t *testing.T) {
	g := buildPath(5)

	roomgraph.PruneOuterNodes(g, acceptKeeping(0, 2), 3)

	assert.Equal(t, 3, g.NodeCount())
	assert.True(t, g.HasNode(0), "protected leaf 0 must survive")
	assert.True(t, g.HasNode(2), "protected node 2 must survive")
}

// TestPruneOuterNodes_RollbackRestoresEdges: a vetoed removal restores the
// node with its exact adjacency.
func TestPruneOuterNodes_RollbackRestoresEdges(t *testing.T) {
	g := buildPath(3)

	// Nothing may ever be removed; the graph must come back verbatim.
	roomgraph.PruneOuterNodes(g, func(*roomgraph.Graph) bool { return false }, 1)

	assert.Equal(t, []int{0, 1, 2}, g.Nodes())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.Equal(t, 2, g.EdgeCount())
}

// TestPruneOuterNodes_StallsWithoutProgress: when no removal is acceptable
// the walk terminates and the caller observes the under-count.
func TestPruneOuterNodes_StallsWithoutProgress(t *testing.T) {
	g := buildPath(4)

	roomgraph.PruneOuterNodes(g, acceptKeeping(0, 1, 2, 3), 2)

	// Target 2 is unreachable with every node pinned.
	assert.Equal(t, 4, g.NodeCount())
}

// TestPruneOuterNodes_AdoptsLargestComponent: removing a cut node commits
// the largest remaining component when the predicate allows it.
func TestPruneOuterNodes_AdoptsLargestComponent(t *testing.T) {
	// Star-with-tail: 0-1, 1-2, 1-3, plus a long chain 3-4-5-6.
	g := roomgraph.New()
	for i := 0; i <= 6; i++ {
		g.AddNode(i)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {1, 3}, {3, 4}, {4, 5}, {5, 6}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	roomgraph.PruneOuterNodes(g, acceptAll, 4)

	assert.Equal(t, 4, g.NodeCount())
	require.Len(t, roomgraph.ConnectedComponents(g), 1)
}

// TestPruneOuterNodes_AlreadySmallEnough: a graph at or below the target is
// untouched.
func TestPruneOuterNodes_AlreadySmallEnough(t *testing.T) {
	g := buildPath(3)

	roomgraph.PruneOuterNodes(g, acceptAll, 5)

	assert.Equal(t, 3, g.NodeCount())
}
