package roomgraph

import "github.com/zyedidia/generic/mapset"

// pathWalker carries the state of one depth-first sweep.
type pathWalker struct {
	graph    *Graph
	visited  mapset.Set[int]
	parent   map[int]int
	hasChild map[int]bool
}

// walk explores the tree from id, recording parent links and which nodes
// acquired children. Neighbors are visited in ascending order, so the sweep
// is deterministic.
func (w *pathWalker) walk(id int) {
	w.visited.Put(id)
	for _, nb := range w.graph.Neighbors(id) {
		if !w.visited.Has(nb) {
			w.parent[nb] = id
			w.hasChild[id] = true
			w.walk(nb)
		}
	}
}

// LongestPathToNode returns the longest simple path in the tree g that ends
// at target, ordered from the far leaf to target. It runs one depth-first
// sweep rooted at target, then traces each leaf's parent chain back to the
// root and keeps the longest (first wins on ties, in ascending leaf order).
//
// g must be a tree (acyclic); target must be one of its nodes. A tree of a
// single node yields the one-element path.
//
// Time: O(V + E). Memory: O(V).
func LongestPathToNode(g *Graph, target int) []int {
	if g == nil || !g.HasNode(target) {
		return nil
	}

	w := &pathWalker{
		graph:    g,
		visited:  mapset.New[int](),
		parent:   make(map[int]int, g.NodeCount()),
		hasChild: make(map[int]bool, g.NodeCount()),
	}
	w.walk(target)

	if g.NodeCount() == 1 {
		return []int{target}
	}

	var best []int
	for _, leaf := range g.Nodes() {
		if !w.visited.Has(leaf) || w.hasChild[leaf] || leaf == target {
			continue
		}
		// Trace the parent chain from this leaf up to the root.
		path := []int{leaf}
		next := leaf
		for next != target {
			next = w.parent[next]
			path = append(path, next)
		}
		if len(path) > len(best) {
			best = path
		}
	}

	return best
}

// LongestPathInTree returns a longest path (diameter) of the tree g as an
// ordered node sequence. It applies the double-sweep technique: the deepest
// path from an arbitrary root always reaches one endpoint of a diameter, so
// a second sweep from that endpoint yields the diameter itself.
//
// Returns nil for a nil or empty graph.
//
// Time: O(V + E). Memory: O(V).
func LongestPathInTree(g *Graph) []int {
	if g == nil || g.NodeCount() == 0 {
		return nil
	}

	start := g.Nodes()[0]
	first := LongestPathToNode(g, start)

	return LongestPathToNode(g, first[0])
}
