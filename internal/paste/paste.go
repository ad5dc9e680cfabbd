// Package paste stamps parametric shapes (cube, sphere) into a voxel grid.
//
// Both stamps drive the same per-sample state machine: map a flat sample
// index into the shape's scan region, translate to destination space, drop
// out-of-bounds samples, then blend the material and corner-displacement
// channels independently under the caller's flags and write the word back.
// Samples are independent and idempotent; there is no failure mode.
package paste

import "github.com/tbfleming/voxels/internal/voxel"

// Flags select which channels a paste writes. Unset channels keep their
// prior destination value, so material stamps never erase surface smoothing
// and vice versa.
type Flags uint32

const (
	// PasteMaterial copies the material implied by shape occupancy: the
	// material argument where the shape is solid, empty elsewhere in the
	// scan region.
	PasteMaterial Flags = 1 << iota

	// PasteMaterialArg forces the material argument everywhere in the scan
	// region, regardless of occupancy.
	PasteMaterialArg

	// PasteVertexes copies the shape's corner-displacement bits.
	PasteVertexes
)

// stamp is the shape-specific half of the paste state machine.
type stamp interface {
	// inside reports whether the cell at a source-space position is solid.
	inside(x, y, z int) bool

	// cornerBits returns the 24 packed corner-displacement bits for the
	// lattice corner at a source-space position.
	cornerBits(x, y, z int) uint32
}

// state is the transient per-sample scratch. It lives only for the duration
// of one sample and is passed by value between steps.
type state struct {
	srcX, srcY, srcZ int
	dstX, dstY, dstZ int
	word             uint32
}

// apply runs the scan/blend state machine over the whole scan region.
// The region is (size+1) per axis: the trailing layer carries no cells but
// its lattice corners still need displacement updates.
func apply(dst *voxel.Grid, sizeX, sizeY, sizeZ int, offset [3]int, flags Flags, material uint8, s stamp) {
	scanX, scanY, scanZ := sizeX+1, sizeY+1, sizeZ+1
	samples := scanX * scanY * scanZ

	for i := 0; i < samples; i++ {
		st, ok := begin(dst, i, scanX, scanY, offset)
		if !ok {
			continue
		}
		st = updateMaterial(dst, st, flags, material, s)
		st = updateVertex(st, flags, s)
		dst.Set(st.dstX, st.dstY, st.dstZ, st.word)
	}
}

// begin maps a flat sample index to source and destination coordinates and
// reads the current destination word. Destination coordinates may land one
// past each upper bound (the trailing corner layer); anything outside
// [0, size] inclusive per axis aborts the sample.
func begin(dst *voxel.Grid, i, scanX, scanY int, offset [3]int) (state, bool) {
	var st state
	st.srcX = i % scanX
	st.srcY = i / scanX % scanY
	st.srcZ = i / (scanX * scanY)

	st.dstX = st.srcX + offset[0]
	st.dstY = st.srcY + offset[1]
	st.dstZ = st.srcZ + offset[2]
	if st.dstX < 0 || st.dstX > dst.SX ||
		st.dstY < 0 || st.dstY > dst.SY ||
		st.dstZ < 0 || st.dstZ > dst.SZ {
		return st, false
	}

	st.word = dst.At(st.dstX, st.dstY, st.dstZ)
	return st, true
}

// updateMaterial blends the material byte. Only cells strictly inside the
// destination volume carry a material; the trailing vertex-only layer is
// left alone.
func updateMaterial(dst *voxel.Grid, st state, flags Flags, material uint8, s stamp) state {
	if st.dstX >= dst.SX || st.dstY >= dst.SY || st.dstZ >= dst.SZ {
		return st
	}
	switch {
	case flags&PasteMaterialArg != 0:
		st.word = voxel.WithMaterial(st.word, material)
	case flags&PasteMaterial != 0:
		m := uint8(0)
		if s.inside(st.srcX, st.srcY, st.srcZ) {
			m = material
		}
		st.word = voxel.WithMaterial(st.word, m)
	}
	return st
}

// updateVertex blends the corner-displacement bits. This applies through the
// trailing layer, since corners at the upper bound shape geometry too.
func updateVertex(st state, flags Flags, s stamp) state {
	if flags&PasteVertexes != 0 {
		st.word = voxel.WithCorner(st.word, s.cornerBits(st.srcX, st.srcY, st.srcZ))
	}
	return st
}
