package roomgraph

import (
	"errors"
	"sort"
)

// Sentinel errors for room graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("roomgraph: node not found")

	// ErrSelfLoop indicates an edge from a node to itself was rejected.
	ErrSelfLoop = errors.New("roomgraph: self-loop not allowed")

	// ErrNilGraph indicates a nil *Graph was passed where one is required.
	ErrNilGraph = errors.New("roomgraph: graph is nil")

	// ErrDisconnected indicates no spanning tree covers every node.
	ErrDisconnected = errors.New("roomgraph: graph is disconnected")
)

// Graph is an undirected graph over stable integer node identifiers.
// Node IDs are chosen by the caller (room candidate indices); removing a
// node never disturbs the identity of the survivors. The zero Graph is not
// usable; construct with New.
//
// Graph is not safe for concurrent mutation: generation is single-threaded
// and each attempt owns its graphs exclusively.
type Graph struct {
	nodes map[int]struct{}
	adj   map[int]map[int]struct{}
}

// New creates an empty Graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		nodes: make(map[int]struct{}),
		adj:   make(map[int]map[int]struct{}),
	}
}

// AddNode inserts node id. Adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.adj[id] = make(map[int]struct{})
}

// HasNode reports whether node id exists.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]

	return ok
}

// RemoveNode deletes node id and every edge incident to it.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(degree).
func (g *Graph) RemoveNode(id int) error {
	if !g.HasNode(id) {
		return ErrNodeNotFound
	}
	for nb := range g.adj[id] {
		delete(g.adj[nb], id)
	}
	delete(g.adj, id)
	delete(g.nodes, id)

	return nil
}

// AddEdge inserts the undirected edge {i, j}. Both endpoints must exist.
// Adding an existing edge is a no-op. Self-loops are rejected with
// ErrSelfLoop; a room cannot share a door with itself.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(i, j int) error {
	if i == j {
		return ErrSelfLoop
	}
	if !g.HasNode(i) || !g.HasNode(j) {
		return ErrNodeNotFound
	}
	g.adj[i][j] = struct{}{}
	g.adj[j][i] = struct{}{}

	return nil
}

// RemoveEdge deletes the undirected edge {i, j} if it exists.
func (g *Graph) RemoveEdge(i, j int) error {
	if !g.HasNode(i) || !g.HasNode(j) {
		return ErrNodeNotFound
	}
	delete(g.adj[i], j)
	delete(g.adj[j], i)

	return nil
}

// HasEdge reports whether the undirected edge {i, j} exists.
func (g *Graph) HasEdge(i, j int) bool {
	_, ok := g.adj[i][j]

	return ok
}

// Neighbors returns the IDs adjacent to id in ascending order.
// Unknown nodes yield an empty slice.
// Complexity: O(degree log degree).
func (g *Graph) Neighbors(id int) []int {
	nbs := make([]int, 0, len(g.adj[id]))
	for nb := range g.adj[id] {
		nbs = append(nbs, nb)
	}
	sort.Ints(nbs)

	return nbs
}

// Degree returns the number of edges incident to id (0 for unknown nodes).
func (g *Graph) Degree(id int) int { return len(g.adj[id]) }

// Nodes returns every node ID in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Edges returns every undirected edge exactly once as [2]int{lo, hi} pairs,
// sorted lexicographically.
// Complexity: O(E log E).
func (g *Graph) Edges() [][2]int {
	edges := make([][2]int, 0)
	for i, nbs := range g.adj {
		for j := range nbs {
			if i < j {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a][0] != edges[b][0] {
			return edges[a][0] < edges[b][0]
		}

		return edges[a][1] < edges[b][1]
	})

	return edges
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbs := range g.adj {
		total += len(nbs)
	}

	return total / 2
}

// Clone returns a deep copy sharing no storage with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := New()
	for id := range g.nodes {
		c.AddNode(id)
	}
	for i, nbs := range g.adj {
		for j := range nbs {
			c.adj[i][j] = struct{}{}
		}
	}

	return c
}

// adopt replaces g's storage with o's, so callers holding *Graph observe
// the swap. Used when pruning commits a largest-component reduction.
func (g *Graph) adopt(o *Graph) {
	g.nodes = o.nodes
	g.adj = o.adj
}
