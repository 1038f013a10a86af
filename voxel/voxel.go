// Package voxel defines the voxel value emitted by the generator and the
// single-method Encoder capability through which voxels leave it. The
// generator only ever writes voxels, never reads the world back, so
// the capability is deliberately one-way and storage-agnostic.
package voxel

import (
	"math"

	"github.com/katalvlaran/dunlath/lattice"
)

// Voxel type tags. The tag space is open for consumers to extend.
const (
	// TypeEmpty marks carved-out space (doors, air).
	TypeEmpty uint8 = 0
	// TypeFloor marks solid walkable structure (room shells).
	TypeFloor uint8 = 1
)

// Voxel is one lattice cell's value: a signed distance plus a type tag.
type Voxel struct {
	// Distance is the signed distance field value; negative is inside solid.
	Distance float32 `json:"distance"`
	// Type tags the voxel's material class.
	Type uint8 `json:"type"`
}

// Empty returns the canonical carved-space voxel.
func Empty() Voxel { return Voxel{Distance: math.MaxFloat32, Type: TypeEmpty} }

// Floor returns the canonical solid floor voxel.
func Floor() Voxel { return Voxel{Distance: -1, Type: TypeFloor} }

// Encoder is the voxel-write capability: accept one voxel value for one
// lattice point. Calls arrive once per affected point in unspecified order,
// with no batching and no undo. Implement this to let the generator write
// into your world representation.
type Encoder interface {
	EncodeVoxel(p lattice.Point, v Voxel)
}

// Buffer is a map-backed Encoder for tests, examples, and consumers that
// want to inspect or replay the writes of a generation run.
type Buffer map[lattice.Point]Voxel

// NewBuffer returns an empty Buffer.
func NewBuffer() Buffer { return make(Buffer) }

// EncodeVoxel records the write, replacing any prior value at p.
func (b Buffer) EncodeVoxel(p lattice.Point, v Voxel) { b[p] = v }
