package voxel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []struct {
		dx, dy, dz float32
		material   uint8
	}{
		{0, 0, 0, 0},
		{0, 0, 0, 1},
		{0.5, -0.5, 0.25, 7},
		{1, -1, 1, 255},
		{-1.984375, 1.984375, 0, 42}, // exactly ±127/64
	}
	for _, c := range cases {
		w := Pack(c.dx, c.dy, c.dz, c.material)
		dx, dy, dz, m := Unpack(w)
		assert.Equal(t, c.material, m)
		assert.InDelta(t, c.dx, dx, 0.5/DeltaScale)
		assert.InDelta(t, c.dy, dy, 0.5/DeltaScale)
		assert.InDelta(t, c.dz, dz, 0.5/DeltaScale)
	}
}

func TestPackClampsOutOfRange(t *testing.T) {
	w := Pack(100, -100, 0, 3)
	dx, dy, dz, m := Unpack(w)
	assert.Equal(t, float32(127.0/DeltaScale), dx)
	assert.Equal(t, float32(-127.0/DeltaScale), dy)
	assert.Equal(t, float32(0), dz)
	assert.Equal(t, uint8(3), m)
}

func TestPackClampsExtremeValues(t *testing.T) {
	// Values far past the int32 range must still clamp to the fixed-point
	// limits; the conversion order must never let them wrap sign.
	huge := float32(1e9)
	cases := []struct {
		d    float32
		want float32
	}{
		{huge, 127.0 / DeltaScale},
		{-huge, -127.0 / DeltaScale},
		{float32(math.Inf(1)), 127.0 / DeltaScale},
		{float32(math.Inf(-1)), -127.0 / DeltaScale},
	}
	for _, c := range cases {
		dx, _, _, _ := Unpack(Pack(c.d, 0, 0, 1))
		assert.Equal(t, c.want, dx, "input %g", c.d)
	}

	dx, _, _, _ := Unpack(Pack(float32(math.NaN()), 0, 0, 1))
	assert.Equal(t, float32(0), dx, "NaN quantizes to zero displacement")
}

func TestEncodeDecodeIdempotent(t *testing.T) {
	// Re-encoding an already-quantized word must reproduce it exactly,
	// for every delta byte value and a spread of materials.
	for _, m := range []uint8{0, 1, 128, 255} {
		for v := -127; v <= 127; v++ {
			w := PackDelta(int8(v), int8(-v/2), int8(v/3)) | uint32(m)<<24
			dx, dy, dz, mat := Unpack(w)
			require.Equal(t, w, Pack(dx, dy, dz, mat), "delta %d material %d", v, m)
		}
	}
}

func TestOccupied(t *testing.T) {
	assert.False(t, Occupied(0))
	assert.False(t, Occupied(PackDelta(127, -127, 1))) // corner noise, no material
	assert.True(t, Occupied(Pack(0, 0, 0, 1)))
	assert.True(t, Occupied(Pack(0, 0, 0, 255)))
}

func TestChannelHelpers(t *testing.T) {
	w := Pack(0.5, -0.25, 0.75, 9)

	w2 := WithMaterial(w, 20)
	assert.Equal(t, uint8(20), Material(w2))
	assert.Equal(t, w&0x00ffffff, w2&0x00ffffff, "corner bits must survive material writes")

	w3 := WithCorner(w, 0)
	assert.Equal(t, uint8(9), Material(w3))
	assert.Zero(t, w3&0x00ffffff)
}
