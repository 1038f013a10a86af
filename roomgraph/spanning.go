package roomgraph

// SpanningTree computes a spanning tree of g using Kruskal's construction
// with a disjoint-set (union-find) structure using path compression and
// union by rank. Door edges carry no weights, so every spanning tree is
// minimal; scanning edges in their sorted order makes the chosen tree
// deterministic.
//
// Steps:
//  1. Validate: g non-nil; an empty graph has no spanning tree.
//  2. A single node is its own trivial tree.
//  3. Initialize the union-find over all node IDs.
//  4. Scan edges in sorted order; an edge joining two different components
//     is unioned into the tree. Stop at |V|-1 tree edges.
//  5. Fewer than |V|-1 tree edges means g was disconnected.
//
// Returns ErrNilGraph or ErrDisconnected accordingly.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func SpanningTree(g *Graph) (*Graph, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, ErrDisconnected
	}

	tree := New()
	for _, id := range nodes {
		tree.AddNode(id)
	}

	// 2. Single node: trivial tree, no edges.
	if len(nodes) == 1 {
		return tree, nil
	}

	// 3. Union-find over node IDs.
	parent := make(map[int]int, len(nodes))
	rank := make(map[int]int, len(nodes))
	for _, id := range nodes {
		parent[id] = id
		rank[id] = 0
	}

	// Iterative find with path compression.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank.
	union := func(u, v int) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 4. Take every edge that joins two components, in sorted edge order.
	treeEdges := 0
	for _, e := range g.Edges() {
		if find(e[0]) == find(e[1]) {
			continue
		}
		union(e[0], e[1])
		_ = tree.AddEdge(e[0], e[1])
		treeEdges++
		if treeEdges == len(nodes)-1 {
			break
		}
	}

	// 5. A spanning tree of n nodes has exactly n-1 edges.
	if treeEdges < len(nodes)-1 {
		return nil, ErrDisconnected
	}

	return tree, nil
}
