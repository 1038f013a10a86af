// Package roomgraph implements the undirected room-connectivity graph and
// the reusable graph algorithms of the dungeon generator: connected
// components, degree-ordered pruning with a constraint guard, tree
// diameters via double depth-first search, and spanning trees.
//
// What:
//
//   - Graph: an undirected graph whose nodes are integer identifiers
//     (room indices). Storage is map-keyed, so surviving identifiers stay
//     valid while other nodes are removed; the pruning loop depends on
//     that stability. All accessors return sorted slices, which makes every
//     traversal in this package deterministic.
//   - ConnectedComponents / LargestConnectedSubgraph / InducedSubgraph:
//     component extraction and node-induced subgraphs.
//   - PruneOuterNodes: shrink a graph toward a target node count by
//     removing low-degree nodes, with each tentative removal accepted or
//     rolled back by a caller-supplied predicate.
//   - LongestPathInTree / LongestPathToNode: tree diameter via the
//     double-sweep technique: a deepest path from any root reaches one
//     endpoint of a longest path.
//   - SpanningTree: Kruskal-style union-find over unit-weight edges in
//     sorted order.
//
// Why:
//   - Pruning must re-validate global constraints after every removal
//     (a removal can disconnect the graph or drop a protected room), so
//     mutations are transactional: snapshot the node's edges, remove,
//     evaluate, commit or restore verbatim.
//
// Errors:
//
//	ErrNodeNotFound  — an operation referenced a node that does not exist.
//	ErrSelfLoop      — an edge from a node to itself was rejected.
//	ErrNilGraph      — a nil *Graph was passed where one is required.
//	ErrDisconnected  — no spanning tree covers every node.
//
// Complexity:
//
//   - Graph mutations: O(1) amortized; sorted accessors O(n log n).
//   - ConnectedComponents: O(V + E) plus sorting.
//   - PruneOuterNodes: O(V · (V + E)) worst case (component check per
//     tentative removal).
//   - LongestPathInTree: two DFS sweeps, O(V + E) each.
//   - SpanningTree: O(E log E + α(V)·E).
package roomgraph
