package mesher

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbfleming/voxels/internal/shape"
	"github.com/tbfleming/voxels/internal/voxel"
)

func solid(material uint8) uint32 {
	return voxel.Pack(0, 0, 0, material)
}

// faceMask returns the 6-bit emitted-face mask of voxel index i.
func faceMask(buf *Buffers, i int) uint32 {
	var mask uint32
	for d := 0; d < FacesPerVoxel; d++ {
		if buf.FaceAt(i*FacesPerVoxel + d) {
			mask |= 1 << uint(d)
		}
	}
	return mask
}

func TestIsolatedVoxelEmitsSixFaces(t *testing.T) {
	g := voxel.New(3, 3, 3)
	g.Set(1, 1, 1, solid(1))

	buf := NewBuffers(3, 3, 3)
	Generate(g, buf, 1)

	assert.Equal(t, 6, buf.FaceCount())
	assert.Equal(t, uint32(0b111111), faceMask(buf, 1+1*3+1*9))
}

func TestSharedFaceIsCulled(t *testing.T) {
	// Center voxel plus its +X neighbor: the shared boundary contributes no
	// face on either side, so the center emits 5 and the pair emits 10.
	g := voxel.New(3, 3, 3)
	g.Set(1, 1, 1, solid(1))
	g.Set(2, 1, 1, solid(1))

	buf := NewBuffers(3, 3, 3)
	Generate(g, buf, 1)

	center := faceMask(buf, 1+1*3+1*9)
	assert.Equal(t, uint32(0b111110), center, "only the +X face of the center is culled")
	assert.Equal(t, 10, buf.FaceCount())
}

func TestWatertightness(t *testing.T) {
	// For an arbitrary occupancy pattern, every occupied/empty boundary must
	// be emitted exactly once, attributed to the occupied side.
	const s = 4
	g := voxel.New(s, s, s)
	occupied := func(x, y, z int) bool {
		if x < 0 || y < 0 || z < 0 || x >= s || y >= s || z >= s {
			return false
		}
		return (x*7+y*13+z*29)%3 != 0
	}
	for z := 0; z < s; z++ {
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				if occupied(x, y, z) {
					g.Set(x, y, z, solid(1))
				}
			}
		}
	}

	buf := NewBuffers(s, s, s)
	Generate(g, buf, 1)

	dirs := [][3]int{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	expected := 0
	for z := 0; z < s; z++ {
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				if !occupied(x, y, z) {
					continue
				}
				i := x + y*s + z*s*s
				for d, dir := range dirs {
					want := !occupied(x+dir[0], y+dir[1], z+dir[2])
					require.Equal(t, want, buf.FaceAt(i*FacesPerVoxel+d),
						"voxel (%d,%d,%d) dir %d", x, y, z, d)
					if want {
						expected++
					}
				}
			}
		}
	}
	assert.Equal(t, expected, buf.FaceCount())
}

func TestEmptyVoxelsEmitNothing(t *testing.T) {
	g := voxel.New(2, 2, 2)
	// Corner noise on an empty voxel must be ignored.
	g.Set(0, 0, 0, voxel.PackDelta(127, -127, 64))

	buf := NewBuffers(2, 2, 2)
	Generate(g, buf, 1)

	assert.Zero(t, buf.FaceCount())
}

func TestNormalsMatchFaceDirections(t *testing.T) {
	g := voxel.New(1, 1, 1)
	g.Set(0, 0, 0, solid(1))

	buf := NewBuffers(1, 1, 1)
	Generate(g, buf, 1)
	require.Equal(t, 6, buf.FaceCount())

	want := []mgl32.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	for d := 0; d < FacesPerVoxel; d++ {
		slot := d * VertsPerFace
		for v := 0; v < VertsPerFace; v++ {
			n := buf.Normals[slot+v]
			assert.InDelta(t, float64(want[d].X()), float64(n.X()), 1e-6)
			assert.InDelta(t, float64(want[d].Y()), float64(n.Y()), 1e-6)
			assert.InDelta(t, float64(want[d].Z()), float64(n.Z()), 1e-6)
		}
	}
}

func TestCornerDisplacementMovesVertices(t *testing.T) {
	// The voxel's own min corner carries a displacement; every emitted
	// vertex at lattice (0,0,0) must move by exactly the decoded delta.
	g := voxel.New(1, 1, 1)
	g.Set(0, 0, 0, voxel.Pack(0.5, -0.25, 0.25, 1))

	buf := NewBuffers(1, 1, 1)
	Generate(g, buf, 1)

	found := 0
	for i, p := range buf.Positions {
		if !buf.FaceAt(i / VertsPerFace) {
			continue
		}
		// Vertices near the origin corner
		if p.Sub(mgl32.Vec3{0.5, -0.25, 0.25}).Len() < 1e-6 {
			found++
		}
	}
	assert.Greater(t, found, 0, "displaced origin corner must appear in the mesh")

	// No vertex may sit at the undisplaced origin.
	for i, p := range buf.Positions {
		if buf.FaceAt(i/VertsPerFace) && p.Len() < 1e-6 {
			t.Fatalf("vertex %d still at undisplaced origin", i)
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	g := shape.Sphere(12, 3)

	seq := NewBuffers(12, 12, 12)
	Generate(g, seq, 1)

	par := NewBuffers(12, 12, 12)
	Generate(g, par, 8)

	require.Equal(t, seq.FaceFilled, par.FaceFilled)
	assert.Equal(t, seq.Positions, par.Positions)
	assert.Equal(t, seq.Normals, par.Normals)
}

func TestCompactMatchesBitmap(t *testing.T) {
	g := shape.Sphere(8, 2)

	buf := NewBuffers(8, 8, 8)
	Generate(g, buf, 1)

	positions, normals := buf.Compact()
	assert.Len(t, positions, buf.FaceCount()*VertsPerFace)
	assert.Len(t, normals, len(positions))

	// First live face must be copied in slot order.
	total := buf.NumVoxels * FacesPerVoxel
	for i := 0; i < total; i++ {
		if buf.FaceAt(i) {
			slot := i * VertsPerFace
			assert.Equal(t, buf.Positions[slot:slot+VertsPerFace], positions[:VertsPerFace])
			break
		}
	}
}
