package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexFormula(t *testing.T) {
	// Storage origin is the halo corner (-1,-1,-1).
	assert.Equal(t, 0, Index(4, 3, -1, -1, -1))

	// Strides: +1 in x, +(sx+2) in y, +(sx+2)*(sy+2) in z.
	assert.Equal(t, 1, Index(4, 3, 0, -1, -1))
	assert.Equal(t, 6, Index(4, 3, -1, 0, -1))
	assert.Equal(t, 30, Index(4, 3, -1, -1, 0))
}

func TestIndexCoversHaloWithoutCollisions(t *testing.T) {
	const sx, sy, sz = 3, 4, 5
	seen := make(map[int]bool)
	for z := -1; z <= sz; z++ {
		for y := -1; y <= sy; y++ {
			for x := -1; x <= sx; x++ {
				i := Index(sx, sy, x, y, z)
				require.GreaterOrEqual(t, i, 0)
				require.Less(t, i, (sx+2)*(sy+2)*(sz+2))
				require.False(t, seen[i], "collision at (%d,%d,%d)", x, y, z)
				seen[i] = true
			}
		}
	}
	assert.Len(t, seen, (sx+2)*(sy+2)*(sz+2))
}

func TestGridAtSet(t *testing.T) {
	g := New(2, 2, 2)
	require.Len(t, g.Words, 4*4*4)

	g.Set(0, 0, 0, Pack(0, 0, 0, 5))
	g.Set(1, 1, 1, Pack(0.5, 0, 0, 9))
	g.Set(-1, -1, -1, Pack(0, 0, 0, 1)) // halo write
	g.Set(2, 2, 2, Pack(0, 0, 0, 2))    // halo write

	assert.Equal(t, uint8(5), Material(g.At(0, 0, 0)))
	assert.Equal(t, uint8(9), Material(g.At(1, 1, 1)))
	assert.Equal(t, uint8(1), Material(g.At(-1, -1, -1)))
	assert.Equal(t, uint8(2), Material(g.At(2, 2, 2)))
	assert.Equal(t, 2, g.CountOccupied(), "halo cells are not logical voxels")
}

func TestGridClone(t *testing.T) {
	g := New(2, 1, 1)
	g.Set(0, 0, 0, Pack(0, 0, 0, 3))

	c := g.Clone()
	c.Set(1, 0, 0, Pack(0, 0, 0, 4))

	assert.Equal(t, uint8(3), Material(g.At(0, 0, 0)))
	assert.False(t, Occupied(g.At(1, 0, 0)), "clone writes must not alias the original")
	assert.True(t, Occupied(c.At(1, 0, 0)))
}
