package room

import "github.com/katalvlaran/dunlath/lattice"

// SpawnArea is an ordered set of lattice points a player may spawn on.
type SpawnArea struct {
	ValidSpawnPoints []lattice.Point `json:"valid_spawn_points"`
}

// SpawnInRoom computes a room's spawn area: the interior shrunk one unit
// from all six faces, flattened to a single-voxel-thick horizontal slab
// directly above the floor (vertical supremum forced to 1).
//
// BUG: the slab ignores doors opening onto the floor, so a spawn point may
// sit inside a doorway. Preserved behavior; consumers compensate.
func SpawnInRoom(r lattice.Extent) SpawnArea {
	inner := r.RadialGrow(-1)
	slab := lattice.NewExtent(inner.Min, inner.Sup.WithComponent(lattice.AxisY, 1))

	return SpawnArea{ValidSpawnPoints: slab.Points()}
}
