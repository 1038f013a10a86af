package room

import (
	"github.com/katalvlaran/dunlath/lattice"
	"github.com/katalvlaran/dunlath/voxel"
)

// WallThickness is the inward depth of a room's solid shell, in lattice
// units.
const WallThickness = 5

// FillRooms writes each room's wall shell: every lattice point of the room
// extent that is not in the room shrunk inward by WallThickness on all
// faces becomes a floor voxel. Rooms smaller than twice the thickness are
// solid throughout.
//
// Complexity: O(total room volume).
func FillRooms(rooms []lattice.Extent, enc voxel.Encoder) {
	for _, r := range rooms {
		interior := r.RadialGrow(-WallThickness)
		for _, p := range r.Points() {
			if !interior.ContainsPoint(p) {
				// TODO: classify the wall plane so ceilings and side walls
				// can carry their own voxel types instead of TypeFloor.
				enc.EncodeVoxel(p, voxel.Floor())
			}
		}
	}
}

// FillDoors carves each door: every point of a door extent is written as an
// empty voxel, punching through the wall shell laid down by FillRooms.
//
// Complexity: O(total door volume).
func FillDoors(doors []lattice.Extent, enc voxel.Encoder) {
	for _, d := range doors {
		for _, p := range d.Points() {
			enc.EncodeVoxel(p, voxel.Empty())
		}
	}
}
