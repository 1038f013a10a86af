// Package room implements the geometry between rooms: wall-adjacency
// detection, the door-able face region, random door sampling, voxel fill
// for room shells and door openings, and the spawn region of a room.
//
// What:
//
//   - DoorableExtent: two rooms admit a door iff their per-axis
//     penetration is zero along exactly one axis: a shared face with no
//     gap. Zero on two axes is an edge contact, on three a corner; neither
//     admits a planar door.
//   - TryDoor: samples a random door inside the door-able region, clamped
//     into the configured size bounds, two units thick along the wall
//     normal. Clamping can push the candidate outside the region, in which
//     case there is simply no door; an expected outcome, not an error.
//   - BuildDoorGraph: tries a door for every unordered room pair, records
//     accepted pairs as graph edges, and stores the door geometry in a
//     symmetric map keyed by room indices.
//   - FillRooms / FillDoors: emit the voxels: a 5-unit wall shell of
//     floor voxels per room, then every door point carved back to empty.
//   - SpawnInRoom: the single-voxel-thick slab just above a room's floor,
//     inset one unit from the walls.
//
// Known limitation, preserved by contract: the spawn slab does not account
// for doors opening onto the floor, so a spawn point may coincide with a
// doorway.
//
// Complexity: adjacency and door sampling are O(1) per pair; BuildDoorGraph
// is O(n²) pairs; fills are O(volume).
package room
