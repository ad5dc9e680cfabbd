// Package mesher turns a packed voxel grid into a non-indexed triangle mesh.
//
// Output is fixed-capacity: every voxel reserves 6 face slots (±X, ±Y, ±Z)
// and every face reserves 6 vertex slots (two triangles), whether or not the
// face is emitted. A face-filled bitmap records which slots hold real
// geometry. Because each unit of work owns a disjoint set of output words,
// generation runs in parallel without locks or atomics.
package mesher

import (
	"runtime"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/tbfleming/voxels/internal/voxel"
)

const (
	// FacesPerVoxel is the number of candidate faces per voxel.
	FacesPerVoxel = 6

	// VertsPerFace is the number of vertex slots per face (2 triangles).
	VertsPerFace = 6

	// BitsPerWord is the number of face bits packed into one bitmap word.
	// 30 bits = exactly 5 voxels per word, so a batch of 5 voxels owns its
	// bitmap word outright and workers never share a word.
	BitsPerWord = 30

	// VoxelsPerBatch is the kernel batch size. Must stay BitsPerWord/6 so the
	// batch-per-word ownership holds.
	VoxelsPerBatch = BitsPerWord / FacesPerVoxel
)

// Buffers holds the fixed-capacity mesh output for one grid.
//
// Positions and Normals are parallel slices with FacesPerVoxel*VertsPerFace
// slots per voxel, in voxel-index-major, face-minor order. FaceFilled has one
// bit per face slot, BitsPerWord bits per word. Slots whose bit is clear hold
// garbage and must be ignored.
type Buffers struct {
	NumVoxels  int
	Positions  []mgl32.Vec3
	Normals    []mgl32.Vec3
	FaceFilled []uint32
}

// NewBuffers allocates output buffers for a grid of the given logical size.
// The bitmap comes back zeroed, as Generate requires.
func NewBuffers(sx, sy, sz int) *Buffers {
	n := sx * sy * sz
	slots := n * FacesPerVoxel * VertsPerFace
	words := (n*FacesPerVoxel + BitsPerWord - 1) / BitsPerWord
	return &Buffers{
		NumVoxels:  n,
		Positions:  make([]mgl32.Vec3, slots),
		Normals:    make([]mgl32.Vec3, slots),
		FaceFilled: make([]uint32, words),
	}
}

// faceDirs are the six face directions in slot order.
var faceDirs = [FacesPerVoxel][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// faceCorners lists, per face, the four cube-corner indices of its quad in
// winding order. Corner index k encodes the corner offset as
// (k&1, k>>1&1, k>>2&1). Winding is chosen so the cross product of the edge
// vectors from the first vertex points along the face direction.
var faceCorners = [FacesPerVoxel][4]int{
	{1, 3, 7, 5}, // +X
	{0, 4, 6, 2}, // -X
	{2, 6, 7, 3}, // +Y
	{0, 1, 5, 4}, // -Y
	{4, 5, 7, 6}, // +Z
	{0, 2, 3, 1}, // -Z
}

// Generate runs the meshing kernel over the whole grid using the given number
// of workers (<= 0 means GOMAXPROCS). buf.FaceFilled must be zeroed.
//
// Work is split into batches of VoxelsPerBatch voxels; each batch writes one
// bitmap word and a disjoint range of vertex slots, so no synchronization is
// needed between workers.
func Generate(g *voxel.Grid, buf *Buffers, workers int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	numBatches := len(buf.FaceFilled)
	if numBatches == 0 {
		return
	}
	if workers == 1 || numBatches == 1 {
		for b := 0; b < numBatches; b++ {
			meshBatch(g, buf, b)
		}
		return
	}

	// Contiguous batch ranges per task keep the per-task overhead low while
	// preserving exclusive word ownership.
	pool := pond.NewPool(workers)
	defer pool.StopAndWait()
	group := pool.NewGroup()

	per := (numBatches + workers - 1) / workers
	for start := 0; start < numBatches; start += per {
		end := start + per
		if end > numBatches {
			end = numBatches
		}
		lo, hi := start, end
		group.Submit(func() {
			for b := lo; b < hi; b++ {
				meshBatch(g, buf, b)
			}
		})
	}
	group.Wait()
}

// meshBatch meshes the VoxelsPerBatch voxels owning bitmap word b.
func meshBatch(g *voxel.Grid, buf *Buffers, b int) {
	var word uint32
	base := b * VoxelsPerBatch
	for k := 0; k < VoxelsPerBatch; k++ {
		word |= meshVoxel(g, buf, base+k) << uint(k*FacesPerVoxel)
	}
	buf.FaceFilled[b] = word
}

// meshVoxel emits the faces of voxel index i and returns its 6-bit fill mask.
// Indices at or beyond the voxel count are no-ops.
func meshVoxel(g *voxel.Grid, buf *Buffers, i int) uint32 {
	if i >= buf.NumVoxels {
		return 0
	}
	x := i % g.SX
	y := i / g.SX % g.SY
	z := i / (g.SX * g.SY)

	if !voxel.Occupied(g.At(x, y, z)) {
		return 0
	}

	// The eight displaced lattice corners of this voxel's unit cube. Corner
	// (x+cx, y+cy, z+cz) takes its displacement from the voxel whose minimum
	// corner is that lattice point — a halo read at the +boundary.
	var corners [8]mgl32.Vec3
	for k := 0; k < 8; k++ {
		cx, cy, cz := k&1, k>>1&1, k>>2&1
		dx, dy, dz, _ := voxel.Unpack(g.At(x+cx, y+cy, z+cz))
		corners[k] = mgl32.Vec3{
			float32(x+cx) + dx,
			float32(y+cy) + dy,
			float32(z+cz) + dz,
		}
	}

	var mask uint32
	for d := 0; d < FacesPerVoxel; d++ {
		dir := faceDirs[d]
		if voxel.Occupied(g.At(x+dir[0], y+dir[1], z+dir[2])) {
			continue // interior face, culled
		}
		mask |= 1 << uint(d)

		q := faceCorners[d]
		v0 := corners[q[0]]
		v1 := corners[q[1]]
		v2 := corners[q[2]]
		v3 := corners[q[3]]

		slot := (i*FacesPerVoxel + d) * VertsPerFace
		emitTriangle(buf, slot, v0, v1, v2)
		emitTriangle(buf, slot+3, v0, v2, v3)
	}
	return mask
}

// emitTriangle writes one triangle and its replicated flat normal.
func emitTriangle(buf *Buffers, slot int, a, b, c mgl32.Vec3) {
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 1e-12 {
		n = n.Mul(1 / l)
	}
	buf.Positions[slot] = a
	buf.Positions[slot+1] = b
	buf.Positions[slot+2] = c
	buf.Normals[slot] = n
	buf.Normals[slot+1] = n
	buf.Normals[slot+2] = n
}
