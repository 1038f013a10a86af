package dungeon

import (
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/dunlath/lattice"
	"github.com/katalvlaran/dunlath/room"
	"github.com/katalvlaran/dunlath/roomgraph"
	"github.com/katalvlaran/dunlath/sampling"
	"github.com/katalvlaran/dunlath/symmap"
	"github.com/katalvlaran/dunlath/voxel"
	"github.com/zyedidia/generic/mapset"
)

// validRoomSize accepts a candidate whose every dimension lies within the
// configured per-axis bounds.
func (s *MapSpec) validRoomSize(r lattice.Extent) bool {
	for _, axis := range []lattice.Axis{lattice.AxisX, lattice.AxisY, lattice.AxisZ} {
		d := r.Sup.Component(axis)
		if d < s.MinRoomDim || d > s.MaxRoomDim {
			return false
		}
	}

	return true
}

// generateRoomCandidates rejection-samples ten times the requested room
// count of size-valid candidates. Overlaps are fine at this stage.
func (s *MapSpec) generateRoomCandidates(rng *rand.Rand) []lattice.Extent {
	return sampling.Extents(
		10*s.RoomGraph.NumRooms,
		s.validRoomSize,
		s.RoomDist.Location,
		s.RoomDist.Size,
		rng,
	)
}

// pruneRooms shrinks the room graph toward NumRooms while pinning every
// main-path room. Reports whether the target count was reached; callers
// tolerate an over-count when pruning stalls.
func (s *MapSpec) pruneRooms(mainPath []int, g *roomgraph.Graph) bool {
	keep := mapset.New[int]()
	for _, id := range mainPath {
		keep.Put(id)
	}
	accept := func(after *roomgraph.Graph) bool {
		ok := true
		keep.Each(func(id int) {
			if !after.HasNode(id) {
				ok = false
			}
		})

		return ok
	}

	roomgraph.PruneOuterNodes(g, accept, s.RoomGraph.NumRooms)
	slog.Debug("pruned outer rooms", "rooms", g.NodeCount(), "target", s.RoomGraph.NumRooms)

	return g.NodeCount() <= s.RoomGraph.NumRooms
}

// chooseMainPath takes the first desiredLen-1 nodes of the tree's longest
// path as the entrance-to-objective main path. Returns false when the tree
// is too short to host it.
func chooseMainPath(desiredLen int, tree *roomgraph.Graph) ([]int, bool) {
	path := roomgraph.LongestPathInTree(tree)
	if len(path) < desiredLen {
		return nil, false
	}

	return path[:desiredLen-1], true
}

// TryGenerate runs one generation attempt, drawing all randomness from
// rng. On success it writes the layout's voxels into enc and returns the
// metadata with ok true. On failure it returns ok false with enc untouched;
// the attempt's candidates, graph, and doors are discarded.
//
// Steps:
//  1. Sample 10×NumRooms size-valid candidates and separate them.
//  2. Build the door graph over every candidate pair.
//  3. If the graph is disconnected, keep the largest component; fail when
//     it holds fewer than NumRooms rooms.
//  4. Span the graph with a tree and fail when the tree's longest path is
//     shorter than PathLength.
//  5. Pin the main path, prune toward NumRooms, and emit the survivors'
//     voxels. The spawn area comes from the main path's last room.
func (s *MapSpec) TryGenerate(rng *rand.Rand, enc voxel.Encoder) (*Meta, bool) {
	slog.Debug("generating dungeon map")

	candidates := s.generateRoomCandidates(rng)
	slog.Debug("generated room candidates", "count", len(candidates))

	lattice.ResolveOverlaps(candidates)
	slog.Debug("resolved room overlaps")

	doors := symmap.New[lattice.Extent]()
	g := room.BuildDoorGraph(candidates, s.MinDoorDim, s.MaxDoorDim, rng, doors)

	// Drop rooms outside the largest connected component. The room-count
	// check applies only when the graph was actually disconnected.
	if sub, proper := roomgraph.LargestConnectedSubgraph(g); proper {
		if sub.NodeCount() < s.RoomGraph.NumRooms {
			return nil, false
		}
		g = sub
	}
	slog.Debug("connected rooms", "count", g.NodeCount())

	tree, err := roomgraph.SpanningTree(g)
	if err != nil {
		return nil, false
	}

	mainPath, ok := chooseMainPath(s.RoomGraph.PathLength, tree)
	if !ok {
		return nil, false
	}
	slog.Debug("chose main path", "path", mainPath)

	s.pruneRooms(mainPath, g)

	chosenRooms := room.CollectRooms(candidates, g)
	chosenDoors := room.CollectDoors(doors, g)

	room.FillRooms(chosenRooms, enc)
	room.FillDoors(chosenDoors, enc)

	spawn := room.SpawnInRoom(candidates[mainPath[len(mainPath)-1]])
	slog.Debug("computed spawn area", "points", len(spawn.ValidSpawnPoints))

	return &Meta{SpawnArea: spawn}, true
}

// Generate validates the configuration and runs TryGenerate up to
// MaxGenerateTries times against a source seeded from Seed. Exhausting the
// budget means the configuration is jointly infeasible.
func (s *MapSpec) Generate(enc voxel.Encoder) (*Meta, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	rng := sampling.New(s.Seed)
	for try := 0; try < MaxGenerateTries; try++ {
		if meta, ok := s.TryGenerate(rng, enc); ok {
			return meta, nil
		}
	}

	return nil, ErrExhaustedTries
}
