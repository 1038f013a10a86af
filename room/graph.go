package room

import (
	"math/rand/v2"

	"github.com/katalvlaran/dunlath/lattice"
	"github.com/katalvlaran/dunlath/roomgraph"
	"github.com/katalvlaran/dunlath/symmap"
)

// BuildDoorGraph attempts a door between every unordered pair of room
// candidates. Each accepted pair becomes an undirected edge in the returned
// graph (node IDs are candidate indices) and its door extent is stored in
// doors under the pair. The door geometry stays out of the graph itself:
// pruning copies graphs around, and edges should stay light.
//
// The pair order (ascending i, then j) fixes the RNG consumption order, so
// door layout is reproducible for a given stream.
//
// Complexity: O(n²) pairs.
func BuildDoorGraph(
	rooms []lattice.Extent,
	minDoorDim, maxDoorDim int,
	rng *rand.Rand,
	doors *symmap.Map[lattice.Extent],
) *roomgraph.Graph {
	g := roomgraph.New()
	for i := range rooms {
		g.AddNode(i)
	}

	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			if door, ok := TryDoor(minDoorDim, maxDoorDim, rooms[i], rooms[j], rng); ok {
				doors.Put(i, j, door)
				_ = g.AddEdge(i, j)
			}
		}
	}

	return g
}

// CollectRooms maps the surviving graph nodes back to their candidate
// extents, in ascending node order.
func CollectRooms(candidates []lattice.Extent, g *roomgraph.Graph) []lattice.Extent {
	rooms := make([]lattice.Extent, 0, g.NodeCount())
	for _, id := range g.Nodes() {
		rooms = append(rooms, candidates[id])
	}

	return rooms
}

// CollectDoors gathers the door extents of the surviving graph edges, in
// sorted edge order. Every surviving edge was created by BuildDoorGraph, so
// its door must be present; a missing door is a contract violation and the
// edge is skipped.
func CollectDoors(doors *symmap.Map[lattice.Extent], g *roomgraph.Graph) []lattice.Extent {
	out := make([]lattice.Extent, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if door, ok := doors.Get(e[0], e[1]); ok {
			out = append(out, door)
		}
	}

	return out
}
