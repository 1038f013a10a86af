package room_test

import (
	"testing"

	"github.com/katalvlaran/dunlath/lattice"
	"github.com/katalvlaran/dunlath/room"
	"github.com/katalvlaran/dunlath/sampling"
	"github.com/katalvlaran/dunlath/symmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowOfRooms builds n 4×4×4 rooms in a row along X, each sharing a face
// with the next.
func rowOfRooms(n int) []lattice.Extent {
	rooms := make([]lattice.Extent, n)
	for i := range rooms {
		rooms[i] = cube4(4*i, 0, 0)
	}

	return rooms
}

// TestBuildDoorGraph_Row: a row of face-sharing rooms yields a path graph
// with one stored door per edge.
func TestBuildDoorGraph_Row(t *testing.T) {
	rooms := rowOfRooms(4)
	doors := symmap.New[lattice.Extent]()
	rng := sampling.New([4]uint32{10, 20, 30, 40})

	g := room.BuildDoorGraph(rooms, 1, 2, rng, doors)

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	for i := 0; i < 3; i++ {
		assert.True(t, g.HasEdge(i, i+1), "adjacent rooms %d-%d need a door", i, i+1)
	}
	assert.False(t, g.HasEdge(0, 2), "non-adjacent rooms get no door")
	assert.Equal(t, 3, doors.Len())

	// Door geometry is retrievable through either orientation of the pair.
	d01, ok := doors.Get(1, 0)
	require.True(t, ok)
	region, _, ok := room.DoorableExtent(rooms[0], rooms[1])
	require.True(t, ok)
	assert.True(t, d01.IsSubset(region))
}

// TestBuildDoorGraph_Deterministic: the same stream yields the same doors.
func TestBuildDoorGraph_Deterministic(t *testing.T) {
	rooms := rowOfRooms(5)

	doorsA := symmap.New[lattice.Extent]()
	gA := room.BuildDoorGraph(rooms, 1, 2, sampling.New([4]uint32{5, 5, 5, 5}), doorsA)
	doorsB := symmap.New[lattice.Extent]()
	gB := room.BuildDoorGraph(rooms, 1, 2, sampling.New([4]uint32{5, 5, 5, 5}), doorsB)

	assert.Equal(t, gA.Edges(), gB.Edges())
	for _, e := range gA.Edges() {
		a, okA := doorsA.Get(e[0], e[1])
		b, okB := doorsB.Get(e[0], e[1])
		require.True(t, okA)
		require.True(t, okB)
		assert.Equal(t, a, b)
	}
}

// TestCollectRoomsAndDoors: survivors map back to their extents in node
// order; doors follow the surviving edges.
func TestCollectRoomsAndDoors(t *testing.T) {
	rooms := rowOfRooms(4)
	doors := symmap.New[lattice.Extent]()
	g := room.BuildDoorGraph(rooms, 1, 2, sampling.New([4]uint32{3, 3, 3, 3}), doors)

	// Drop room 3; its door goes with it.
	require.NoError(t, g.RemoveNode(3))

	chosenRooms := room.CollectRooms(rooms, g)
	assert.Equal(t, []lattice.Extent{rooms[0], rooms[1], rooms[2]}, chosenRooms)

	chosenDoors := room.CollectDoors(doors, g)
	assert.Len(t, chosenDoors, 2)
}
