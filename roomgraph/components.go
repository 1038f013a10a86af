package roomgraph

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// ConnectedComponents returns the node sets of every connected component,
// discovered by breadth-first sweeps from ascending node IDs. Each
// component slice is sorted ascending; components are ordered by their
// smallest member.
//
// Time: O(V + E) plus sorting. Memory: O(V).
func ConnectedComponents(g *Graph) [][]int {
	seen := mapset.New[int]()
	var comps [][]int

	for _, start := range g.Nodes() {
		if seen.Has(start) {
			continue
		}
		// BFS to collect the component containing start.
		queue := []int{start}
		seen.Put(start)
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range g.Neighbors(u) {
				if !seen.Has(v) {
					seen.Put(v)
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}

// InducedSubgraph returns a new graph containing exactly the nodes of g
// present in keep, plus every edge of g with both endpoints kept.
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep mapset.Set[int]) *Graph {
	sub := New()
	for _, id := range g.Nodes() {
		if keep.Has(id) {
			sub.AddNode(id)
		}
	}
	for _, e := range g.Edges() {
		if keep.Has(e[0]) && keep.Has(e[1]) {
			_ = sub.AddEdge(e[0], e[1])
		}
	}

	return sub
}

// LargestConnectedSubgraph returns the node-induced subgraph of g's largest
// connected component and ok=true, but only when the graph actually has
// more than one component. A graph that is already fully connected (or
// empty) returns (nil, false) as a no-op signal, mirroring how callers
// treat "nothing to reduce".
//
// Ties between equal-sized components resolve to the one containing the
// smallest node ID.
//
// Time: O(V + E). Memory: O(V).
func LargestConnectedSubgraph(g *Graph) (*Graph, bool) {
	comps := ConnectedComponents(g)
	if len(comps) <= 1 {
		return nil, false
	}

	largest := comps[0]
	for _, c := range comps[1:] {
		if len(c) > len(largest) {
			largest = c
		}
	}

	keep := mapset.New[int]()
	for _, id := range largest {
		keep.Put(id)
	}

	return InducedSubgraph(g, keep), true
}
