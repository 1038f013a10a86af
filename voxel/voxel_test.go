package voxel_test

import (
	"testing"

	"github.com/katalvlaran/dunlath/lattice"
	"github.com/katalvlaran/dunlath/voxel"
	"github.com/stretchr/testify/assert"
)

// TestCanonicalVoxels checks the fixed distance/type pairs.
func TestCanonicalVoxels(t *testing.T) {
	assert.Equal(t, voxel.TypeEmpty, voxel.Empty().Type)
	assert.Equal(t, voxel.TypeFloor, voxel.Floor().Type)
	assert.Less(t, voxel.Floor().Distance, float32(0), "floor is inside solid")
	assert.Greater(t, voxel.Empty().Distance, float32(0), "empty is far outside")
}

// TestBuffer_RecordsWrites: the buffer keeps the latest value per point.
func TestBuffer_RecordsWrites(t *testing.T) {
	b := voxel.NewBuffer()
	p := lattice.Pt(1, 2, 3)

	b.EncodeVoxel(p, voxel.Floor())
	b.EncodeVoxel(lattice.Pt(0, 0, 0), voxel.Floor())
	b.EncodeVoxel(p, voxel.Empty()) // overwrite

	assert.Len(t, b, 2)
	assert.Equal(t, voxel.Empty(), b[p])
	assert.Equal(t, voxel.Floor(), b[lattice.Pt(0, 0, 0)])
}
