// Package dungeon is the top-level orchestrator: it composes sampling,
// overlap resolution, door-graph construction, graph pruning and path
// selection into a bounded generate-and-test loop producing one dungeon
// layout.
//
// What:
//
//   - MapSpec: the full generation configuration: seed, room-count and
//     main-path targets, location/size distributions, and room/door size
//     bounds. Validate rejects infeasible configurations up front.
//   - TryGenerate: one attempt. Samples 10× the requested room count of
//     candidates, separates them, builds the door graph, and checks that a
//     connected subgraph with enough rooms exists and that the spanning
//     tree's longest path is long enough. On success it prunes extra rooms,
//     writes the voxels, and returns Meta; on any check failure it returns
//     false with the encoder untouched.
//   - Generate: retries TryGenerate up to MaxGenerateTries with fresh
//     samples from the same stream; exhausting the budget means the
//     configuration is jointly infeasible and is reported as an error.
//
// Determinism: every random decision is drawn from the single *rand.Rand
// the caller passes in, consumed in a fixed order, so a fixed seed and
// configuration reproduce the whole run, including which attempt succeeds.
//
// Errors:
//
//   - ErrInvalidRoomCount: NumRooms < 1.
//   - ErrInvalidPathLength: PathLength < 2.
//   - ErrInvalidRoomDims / ErrInvalidDoorDims: size bounds empty or inverted.
//   - ErrInvalidLocation: a location range with Max < Min.
//   - ErrExhaustedTries: MaxGenerateTries attempts failed.
//
// Per-attempt check failures (too few connected rooms, main path too short)
// are expected outcomes, not errors; they surface as the bool result of
// TryGenerate and drive the retry loop.
package dungeon
