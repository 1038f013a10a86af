// Package sampling provides the random machinery of the generator: a
// seeded pseudorandom source, lattice-point distributions, uniform
// subranges, and the rejection sampler that produces room candidates.
//
// What:
//
//   - New: a *rand.Rand seeded from four 32-bit words, the configuration's
//     seed format. Every sampling decision of a generation run draws from
//     this one sequential stream, so the whole run is reproducible.
//   - NormalSpec / LatticeNormalSpec: per-axis independent normal
//     distributions over lattice points (values rounded to the grid).
//   - Range / LatticeUniformSpec: per-axis inclusive uniform integer
//     distributions.
//   - PointSampler: the opaque-sampler capability consumed by the
//     rejection sampler; both spec types implement it.
//   - Subrange: an unordered uniform pair within [min, max], returned
//     ordered; the building block of door-size sampling.
//   - Extents: rejection sampling of lattice boxes against a validity
//     predicate.
//
// Why:
//   - Generation must be a pure function of (spec, seed). The random
//     source is threaded explicitly through every call; nothing reads
//     ambient or global randomness.
//
// Caveat:
//
//	Extents has no attempt bound: an unsatisfiable predicate/distribution
//	combination loops forever. Choosing feasible bounds is the caller's
//	responsibility.
//
// Complexity: each draw is O(1); Extents is O(draws) with an acceptance
// rate set by the predicate.
package sampling
