package room

import (
	"math/rand/v2"

	"github.com/katalvlaran/dunlath/lattice"
	"github.com/katalvlaran/dunlath/sampling"
)

// DoorThickness is the door extent's size along the wall normal: one unit
// into each room, so carving punches through the shared wall.
const DoorThickness = 2

// DoorableExtent returns the region where a doorway could be cut between
// two rooms, together with the face direction pointing from r2 toward r1.
//
// Steps:
//  1. A door is possible only when the per-axis penetration is zero along
//     exactly one axis: the rooms share a face with no gap. Two zero axes
//     would be an intersecting edge, three an intersecting corner.
//  2. Both rooms are shrunk one unit along the two in-plane axes (a door
//     must not eat the wall's own corners) and grown one unit toward each
//     other along the normal, so their intersection is exactly the shared
//     face region, two units thick.
//
// Returns ok=false when no door is geometrically possible.
// Complexity: O(1).
func DoorableExtent(r1, r2 lattice.Extent) (lattice.Extent, lattice.Direction, bool) {
	pen := lattice.Penetrations(r1, r2)

	zeroAxis := lattice.AxisX
	zeroes := 0
	for _, axis := range [3]lattice.Axis{lattice.AxisX, lattice.AxisY, lattice.AxisZ} {
		if pen.Component(axis) == 0 {
			zeroAxis = axis
			zeroes++
		}
	}
	if zeroes != 1 {
		return lattice.Extent{}, 0, false
	}

	// dir points from r2 toward r1 along the shared-face axis.
	dir := lattice.Direction(zeroAxis * 2) // positive direction on zeroAxis
	if r1.Min.Component(zeroAxis) < r2.Min.Component(zeroAxis) {
		dir = dir.Negate()
	}

	// Shrink the in-plane faces by one so the door keeps off the corners.
	var grow lattice.FaceAmounts
	for _, d := range lattice.AllDirections {
		if d.Axis() != zeroAxis {
			grow[d] = -1
		}
	}
	r1Grow, r2Grow := grow, grow
	r1Grow[dir.Negate()] = 1 // r1 reaches toward r2
	r2Grow[dir] = 1          // r2 reaches toward r1

	return r1.GrowFaces(r1Grow).Intersection(r2.GrowFaces(r2Grow)), dir, true
}

// TryDoor samples a random door between two rooms, honoring the door size
// bounds [minDim, maxDim] on both in-plane axes.
//
// Steps:
//  1. Locate the door-able region; reject when none exists, when it is
//     empty, or when it cannot fit even a minimal door.
//  2. Sample an independent uniform subrange along each in-plane axis and
//     clamp its span into [minDim, maxDim].
//  3. Assemble the door extent: sampled spans in the plane, DoorThickness
//     along the normal, anchored at the region's normal coordinate.
//  4. Clamping can push the candidate outside the region; such a door is
//     rejected. Rejection is an expected outcome of sampling, not an error.
//
// Complexity: O(1).
func TryDoor(minDim, maxDim int, r1, r2 lattice.Extent, rng *rand.Rand) (lattice.Extent, bool) {
	region, dir, ok := DoorableExtent(r1, r2)
	if !ok || region.IsEmpty() {
		return lattice.Extent{}, false
	}

	axis := dir.Axis()
	u, v := axis.PlaneSpan()

	uSup := region.Sup.Dot(u)
	vSup := region.Sup.Dot(v)
	if uSup < minDim || vSup < minDim {
		return lattice.Extent{}, false
	}

	uMin := region.Min.Dot(u)
	vMin := region.Min.Dot(v)

	uLo, uHi := sampling.Subrange(rng, uMin, uMin+uSup-1)
	vLo, vHi := sampling.Subrange(rng, vMin, vMin+vSup-1)
	uSpan := clampSpan(1+uHi-uLo, minDim, maxDim)
	vSpan := clampSpan(1+vHi-vLo, minDim, maxDim)

	n := axis.Unit()
	doorMin := n.Mul(region.Min.Dot(n)).Add(u.Mul(uLo)).Add(v.Mul(vLo))
	doorSup := n.Mul(DoorThickness).Add(u.Mul(uSpan)).Add(v.Mul(vSpan))
	door := lattice.NewExtent(doorMin, doorSup)

	if !door.IsSubset(region) {
		return lattice.Extent{}, false
	}

	return door, true
}

// clampSpan clamps a sampled span into [minDim, maxDim], shrinking before
// growing so a span over the maximum never escapes the bounds.
func clampSpan(span, minDim, maxDim int) int {
	if span > maxDim {
		span = maxDim
	}
	if span < minDim {
		span = minDim
	}

	return span
}
