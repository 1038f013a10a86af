package dungeon

import (
	"errors"

	"github.com/katalvlaran/dunlath/room"
	"github.com/katalvlaran/dunlath/sampling"
)

// MaxGenerateTries bounds the generate-and-test loop in Generate.
const MaxGenerateTries = 200

var (
	// ErrInvalidRoomCount means NumRooms is below 1.
	ErrInvalidRoomCount = errors.New("dungeon: room count must be at least 1")
	// ErrInvalidPathLength means PathLength is below 2; a main path needs
	// at least an entrance and an objective.
	ErrInvalidPathLength = errors.New("dungeon: path length must be at least 2")
	// ErrInvalidRoomDims means the room size bounds are empty or inverted.
	ErrInvalidRoomDims = errors.New("dungeon: room dimension bounds must satisfy 0 < min <= max")
	// ErrInvalidDoorDims means the door size bounds are empty or inverted.
	ErrInvalidDoorDims = errors.New("dungeon: door dimension bounds must satisfy 0 < min <= max")
	// ErrInvalidLocation means a location range has Max below Min.
	ErrInvalidLocation = errors.New("dungeon: location range must satisfy min <= max")
	// ErrExhaustedTries means MaxGenerateTries attempts all failed; the
	// requested room count, path length, and size bounds are jointly
	// infeasible.
	ErrExhaustedTries = errors.New("dungeon: exhausted generation tries")
)

// RoomGraphSpec sets the structural targets of the room graph.
type RoomGraphSpec struct {
	// NumRooms is the desired surviving room count after pruning.
	NumRooms int `json:"num_rooms"`
	// PathLength is the desired entrance-to-objective main-path length.
	PathLength int `json:"entrance_to_objective_path_length"`
}

// RoomDistributionSpec sets the distributions room candidates are drawn
// from: a uniform location over a bounding region and per-axis normal
// sizes.
type RoomDistributionSpec struct {
	Location sampling.LatticeUniformSpec `json:"location"`
	Size     sampling.LatticeNormalSpec  `json:"size"`
}

// MapSpec is the complete generation configuration. A MapSpec plus its
// Seed fully determines the generated layout.
type MapSpec struct {
	Seed      [4]uint32            `json:"seed"`
	RoomGraph RoomGraphSpec        `json:"room_graph"`
	RoomDist  RoomDistributionSpec `json:"room_dist"`

	// Per-axis bounds, inclusive, applied uniformly to all three axes.
	MinRoomDim int `json:"min_room_dim"`
	MaxRoomDim int `json:"max_room_dim"`
	MinDoorDim int `json:"min_door_dim"`
	MaxDoorDim int `json:"max_door_dim"`
}

// Meta is the metadata of a successfully generated layout; the voxels
// themselves go to the encoder.
type Meta struct {
	SpawnArea room.SpawnArea `json:"spawn_area"`
}

// Validate rejects configurations that can never generate, before any
// sampling runs. It cannot catch every infeasible combination; a
// feasible-looking configuration may still exhaust its tries.
func (s *MapSpec) Validate() error {
	if s.RoomGraph.NumRooms < 1 {
		return ErrInvalidRoomCount
	}
	if s.RoomGraph.PathLength < 2 {
		return ErrInvalidPathLength
	}
	if s.MinRoomDim < 1 || s.MaxRoomDim < s.MinRoomDim {
		return ErrInvalidRoomDims
	}
	if s.MinDoorDim < 1 || s.MaxDoorDim < s.MinDoorDim {
		return ErrInvalidDoorDims
	}
	for _, r := range []sampling.Range{s.RoomDist.Location.X, s.RoomDist.Location.Y, s.RoomDist.Location.Z} {
		if r.Max < r.Min {
			return ErrInvalidLocation
		}
	}

	return nil
}
