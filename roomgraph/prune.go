package roomgraph

// AcceptFunc judges whether a graph produced by a tentative node removal
// still satisfies the caller's constraints (for example, "every main-path
// room is still present"). Returning false rolls the removal back.
type AcceptFunc func(*Graph) bool

// PruneOuterNodes removes nodes from g until its node count reaches
// desiredSize, preferring nodes with few edges.
//
// Steps:
//  1. Start with a degree threshold of 1.
//  2. Scan nodes in ascending ID order. Each node whose current degree
//     equals the threshold is tentatively removed: its incident edges are
//     snapshotted, the node deleted, and, since a removal can disconnect
//     the graph, the largest connected component of the remainder is what
//     accept judges.
//  3. If accept approves, the removal commits; when the remainder was
//     disconnected, g is reduced to that largest component. If accept
//     rejects, the node and its snapshotted edges are restored verbatim.
//  4. A full pass that removes nothing raises the threshold by one.
//
// The walk ends when the node count reaches desiredSize, or when the
// threshold exceeds any degree the graph could still hold (no further
// progress is possible). Callers detect the latter by comparing the final
// node count against their target; proceeding with extra nodes is their
// call, not an error here.
//
// Complexity: O(V · (V + E)) worst case.
func PruneOuterNodes(g *Graph, accept AcceptFunc, desiredSize int) {
	if g == nil || accept == nil {
		return
	}

	threshold := 1
	for {
		if g.NodeCount() <= desiredSize {
			return
		}

		removed := false
		for _, n := range g.Nodes() {
			if g.NodeCount() <= desiredSize {
				return
			}
			// A committed component reduction may have dropped n already.
			if !g.HasNode(n) {
				continue
			}
			nbs := g.Neighbors(n)
			if len(nbs) != threshold {
				continue
			}

			// Tentative removal: snapshot edges, delete, re-judge.
			_ = g.RemoveNode(n)
			check := g
			sub, proper := LargestConnectedSubgraph(g)
			if proper {
				check = sub
			}
			if accept(check) {
				removed = true
				if proper {
					g.adopt(sub)
				}
			} else {
				// Restore the node and its edges exactly as they were.
				g.AddNode(n)
				for _, nb := range nbs {
					_ = g.AddEdge(n, nb)
				}
			}
		}

		if !removed {
			threshold++
			// No node can have a degree of NodeCount or more, so nothing
			// will ever match again: stop instead of escalating forever.
			if threshold >= g.NodeCount() {
				return
			}
		}
	}
}
