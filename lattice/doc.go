// Package lattice provides integer-lattice geometry for dungeon layout:
// 3D points, the six axis-aligned face directions, axis-aligned boxes
// (extents), and the push-apart overlap resolver.
//
// What:
//
//   - Point: immutable integer 3-vector with total arithmetic
//     (Add, Sub, Mul, Dot, Min, Max, per-axis access).
//   - Axis / Direction: the three lattice axes and their six signed face
//     normals, with plane-span helpers for carving door openings.
//   - Extent: an axis-aligned box stored as minimum corner plus per-axis
//     local supremum (size). Supports intersection, emptiness and subset
//     tests, signed per-axis penetration, face-directed growth, and
//     iteration over contained lattice points.
//   - PushApart / ResolveOverlaps: pairwise separation of overlapping
//     extents, always displacing in the positive direction along the
//     cheapest axis so the process cannot cycle.
//
// Why:
//   - Room placement, door detection, and voxel fills all reduce to exact
//     integer box arithmetic; floating point would smuggle in rounding.
//   - Penetration depths classify contact: >0 overlap, 0 shared face,
//     <0 gap. A door is legal only when exactly one axis reads 0.
//
// Invariants:
//
//   - A well-formed Extent has non-negative supremum on every axis; an
//     extent with any zero (or negative) supremum is empty and contains
//     no points. All constructors and grow operations clamp at zero.
//   - Extents are value types: operations return new extents, never
//     mutate in place, and are cheap to copy.
//
// Complexity:
//
//   - All point/extent operations: O(1).
//   - Extent.Points: O(volume).
//   - ResolveOverlaps: O(n²) per pass, passes until no pair overlaps.
//     Quadratic scanning is a known scaling limit, acceptable for box
//     counts in the low hundreds.
package lattice
