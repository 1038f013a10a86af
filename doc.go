// Package dunlath is a procedural voxel-dungeon layout generator: it places
// rooms on a 3D integer lattice, separates them, carves doors, and guarantees
// a main path from entrance to objective.
//
// 🚀 What is dunlath?
//
//	A deterministic, seed-driven generator that brings together:
//		• Lattice primitives: integer points, axis-aligned extents, face normals
//		• Overlap resolution: push-apart separation of colliding room boxes
//		• Room graphs: stable-ID undirected graphs with components, pruning,
//		  tree diameters and spanning trees
//		• Rejection sampling: distribution-driven room candidates
//		• Door geometry: wall-adjacency detection and door carving
//		• Orchestration: a bounded retry loop that either yields a valid
//		  dungeon or reports the configuration infeasible
//
// ✨ Why choose dunlath?
//
//   - Reproducible – one seeded random stream drives every decision
//   - Capability-based – voxels leave through a single-method Encoder; no
//     world representation is assumed
//   - Pure Go – no cgo, no rendering, no hidden deps
//   - Composable – each stage is a standalone package you can reuse
//
// Under the hood, everything is organized under seven subpackages:
//
//	lattice/   — Point, Direction, Extent math & the overlap resolver
//	symmap/    — unordered-pair-keyed maps for per-edge door geometry
//	roomgraph/ — stable-ID graphs: components, pruning, diameter, spanning tree
//	sampling/  — seeded RNG, lattice distributions, rejection sampling
//	voxel/     — voxel values and the Encoder write capability
//	room/      — door adjacency, door sampling, voxel fill, spawn regions
//	dungeon/   — the generation spec and the retryable orchestrator
//
// Quick ASCII example (one generated floor, top view):
//
//	    ┌────┐ ┌──────┐
//	    │ in ▒ ▒      │
//	    └────┘ └──▒───┘
//	            ┌─▒──┐
//	            │ out│
//	            └────┘
//
//	rooms share walls, ▒ marks carved doors, and in→out is the main path.
//
// Dive into the per-package doc.go files for tutorials, invariants, and
// complexity notes.
//
//	go get github.com/katalvlaran/dunlath
package dunlath
