package lattice

import "fmt"

// PushApart separates two intersecting extents by displacing one of them
// along the axis where separation is cheapest. The extent whose minimum
// corner leads along that axis is moved just far enough in the positive
// direction that the pair becomes disjoint (touching faces). Pushing only
// in positive directions guarantees the overall resolution terminates:
// two extents can never chase each other back and forth.
//
// If a and b do not intersect they are returned unchanged.
//
// Postcondition: the returned extents have an empty intersection.
// Complexity: O(1).
func PushApart(a, b Extent) (Extent, Extent) {
	if a.Intersection(b).IsEmpty() {
		return a, b
	}

	// Pick the axis with the smallest positive push. When b leads a on an
	// axis, b moves by a.Max-b.Min; otherwise a moves by b.Max-a.Min. For
	// partial overlaps this equals the penetration depth; when one box
	// contains the other it is the full clearance, which still separates
	// the pair in a single step.
	bestAxis := AxisX
	bestPush := 0
	bestMoveB := false
	for _, axis := range [3]Axis{AxisX, AxisY, AxisZ} {
		var push int
		moveB := b.Min.Component(axis) >= a.Min.Component(axis)
		if moveB {
			push = a.Max().Component(axis) - b.Min.Component(axis)
		} else {
			push = b.Max().Component(axis) - a.Min.Component(axis)
		}
		if bestPush == 0 || push < bestPush {
			bestAxis, bestPush, bestMoveB = axis, push, moveB
		}
	}

	shift := bestAxis.Unit().Mul(bestPush)
	if bestMoveB {
		return a, b.Translate(shift)
	}

	return a.Translate(shift), b
}

// ResolveOverlaps mutates extents in place until no pair intersects. Each
// full pass scans all unordered pairs and pushes every intersecting pair
// apart; passes repeat until one completes with zero adjustments. Sizes are
// never changed, only positions.
//
// A pair still intersecting after its push is a programming-contract
// violation and panics.
//
// Complexity: O(n²) per pass. Known scaling limit for n beyond the low
// hundreds.
func ResolveOverlaps(extents []Extent) {
	n := len(extents)
	for {
		allSeparated := true
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if extents[i].Intersection(extents[j]).IsEmpty() {
					continue
				}

				allSeparated = false
				a, b := PushApart(extents[i], extents[j])
				if !a.Intersection(b).IsEmpty() {
					panic(fmt.Sprintf("lattice: extents %v and %v still intersect after push", a, b))
				}
				extents[i], extents[j] = a, b
			}
		}

		if allSeparated {
			return
		}
	}
}
