package roomgraph_test

import (
	"fmt"

	"github.com/katalvlaran/dunlath/roomgraph"
)

// ExampleLongestPathInTree demonstrates the double-sweep diameter on a
// small tree.
// Scenario:
//
//	    0─1─2─3─4
//	        │
//	        5
//
//	The diameter runs along the spine; the twig at 5 loses.
//
// Complexity: two DFS sweeps, O(V+E)
func ExampleLongestPathInTree() {
	g := roomgraph.New()
	for i := 0; i <= 5; i++ {
		g.AddNode(i)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {2, 5}} {
		_ = g.AddEdge(e[0], e[1])
	}

	fmt.Println(roomgraph.LongestPathInTree(g))

	// Output:
	// [0 1 2 3 4]
}

// ExamplePruneOuterNodes demonstrates constrained pruning: shrink a path of
// five rooms to three while pinning rooms 0 and 2.
func ExamplePruneOuterNodes() {
	g := roomgraph.New()
	for i := 0; i < 5; i++ {
		g.AddNode(i)
	}
	for i := 1; i < 5; i++ {
		_ = g.AddEdge(i-1, i)
	}

	pinned := []int{0, 2}
	accept := func(h *roomgraph.Graph) bool {
		for _, id := range pinned {
			if !h.HasNode(id) {
				return false
			}
		}

		return true
	}

	roomgraph.PruneOuterNodes(g, accept, 3)
	fmt.Println(g.Nodes())

	// Output:
	// [0 1 2]
}
