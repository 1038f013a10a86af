package sampling

import (
	"math/rand/v2"

	"github.com/katalvlaran/dunlath/lattice"
)

// Subrange returns a uniformly random subrange of the inclusive interval
// [min, max]: two independent uniform draws, returned in ascending order.
// Max must be ≥ min.
func Subrange(rng *rand.Rand, min, max int) (lo, hi int) {
	r := Range{Min: min, Max: max}
	c1 := r.Sample(rng)
	c2 := r.Sample(rng)
	if c1 > c2 {
		return c2, c1
	}

	return c1, c2
}

// Extents rejection-samples lattice boxes until count of them satisfy
// valid: each draw takes a location from loc and a size from size, builds
// the extent, and keeps it iff the predicate accepts.
//
// There is no attempt bound; an unsatisfiable predicate loops forever, and
// feasibility is the caller's responsibility.
func Extents(
	count int,
	valid func(lattice.Extent) bool,
	loc, size PointSampler,
	rng *rand.Rand,
) []lattice.Extent {
	extents := make([]lattice.Extent, 0, count)
	for len(extents) < count {
		e := lattice.NewExtent(loc.SamplePoint(rng), size.SamplePoint(rng))
		if valid(e) {
			extents = append(extents, e)
		}
	}

	return extents
}
