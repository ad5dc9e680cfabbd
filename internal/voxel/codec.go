package voxel

// Packed voxel word layout:
//
//	bits  0..7   corner delta X (int8 fixed-point)
//	bits  8..15  corner delta Y
//	bits 16..23  corner delta Z
//	bits 24..31  material id (0 = empty)
//
// Each delta component stores round(d * DeltaScale) clamped to [-127, 127],
// so the representable displacement range is roughly ±2 cells.

const (
	// DeltaScale is the fixed-point scale: one cell of displacement is 64 units.
	DeltaScale = 64

	deltaMax = 127
	deltaMin = -127
)

// Pack quantizes a corner displacement and combines it with a material id.
// Out-of-range displacement clamps; there is no failure mode.
func Pack(dx, dy, dz float32, material uint8) uint32 {
	return uint32(uint8(quantize(dx))) |
		uint32(uint8(quantize(dy)))<<8 |
		uint32(uint8(quantize(dz)))<<16 |
		uint32(material)<<24
}

// Unpack is the inverse of Pack, up to quantization.
func Unpack(word uint32) (dx, dy, dz float32, material uint8) {
	dx = float32(int8(word)) / DeltaScale
	dy = float32(int8(word>>8)) / DeltaScale
	dz = float32(int8(word>>16)) / DeltaScale
	material = uint8(word >> 24)
	return
}

// Occupied reports whether the word carries a nonzero material.
func Occupied(word uint32) bool {
	return word>>24 != 0
}

// Material extracts the material byte.
func Material(word uint32) uint8 {
	return uint8(word >> 24)
}

// WithMaterial replaces the material byte, keeping the corner bits.
func WithMaterial(word uint32, material uint8) uint32 {
	return word&0x00ffffff | uint32(material)<<24
}

// WithCorner replaces the low 24 corner bits, keeping the material byte.
func WithCorner(word uint32, corner uint32) uint32 {
	return word&0xff000000 | corner&0x00ffffff
}

// PackDelta builds just the 24 corner bits from raw quantized components.
func PackDelta(dx, dy, dz int8) uint32 {
	return uint32(uint8(dx)) | uint32(uint8(dy))<<8 | uint32(uint8(dz))<<16
}

// QuantizeDelta clamps and rounds one displacement component to the stored
// fixed-point value.
func QuantizeDelta(d float32) int8 {
	return quantize(d)
}

func quantize(d float32) int8 {
	// Clamp before the integer conversion: converting an out-of-range float
	// is implementation-defined, so huge inputs must never reach it.
	v := d * DeltaScale
	if v != v { // NaN
		return 0
	}
	if v >= deltaMax {
		return deltaMax
	}
	if v <= deltaMin {
		return deltaMin
	}
	if v >= 0 {
		v += 0.5
	} else {
		v -= 0.5
	}
	return int8(int32(v))
}
