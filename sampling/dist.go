package sampling

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/dunlath/lattice"
)

// PointSampler is the opaque sampler capability: draw one lattice point
// from the given random source. Distribution specs implement it.
type PointSampler interface {
	SamplePoint(rng *rand.Rand) lattice.Point
}

// NormalSpec parameterizes a scalar normal distribution.
type NormalSpec struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Sample draws one value from the distribution.
func (s NormalSpec) Sample(rng *rand.Rand) float64 {
	return rng.NormFloat64()*s.StdDev + s.Mean
}

// LatticeNormalSpec parameterizes three independent per-axis normal
// distributions producing lattice points; samples are rounded to the grid.
type LatticeNormalSpec struct {
	X NormalSpec `json:"x"`
	Y NormalSpec `json:"y"`
	Z NormalSpec `json:"z"`
}

// SamplePoint draws one lattice point, consuming X, Y, then Z in order so
// the stream stays reproducible.
func (s LatticeNormalSpec) SamplePoint(rng *rand.Rand) lattice.Point {
	x := int(math.Round(s.X.Sample(rng)))
	y := int(math.Round(s.Y.Sample(rng)))
	z := int(math.Round(s.Z.Sample(rng)))

	return lattice.Pt(x, y, z)
}

// Range is an inclusive integer interval [Min, Max].
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Sample draws one value uniformly from the inclusive interval.
// Max must be ≥ Min.
func (r Range) Sample(rng *rand.Rand) int {
	return r.Min + rng.IntN(r.Max-r.Min+1)
}

// LatticeUniformSpec parameterizes three independent per-axis uniform
// integer distributions producing lattice points.
type LatticeUniformSpec struct {
	X Range `json:"x"`
	Y Range `json:"y"`
	Z Range `json:"z"`
}

// SamplePoint draws one lattice point, consuming X, Y, then Z in order.
func (s LatticeUniformSpec) SamplePoint(rng *rand.Rand) lattice.Point {
	return lattice.Pt(s.X.Sample(rng), s.Y.Sample(rng), s.Z.Sample(rng))
}
