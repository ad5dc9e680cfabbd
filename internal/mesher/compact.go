package mesher

import (
	"math/bits"

	"github.com/go-gl/mathgl/mgl32"
)

// FaceCount returns the number of emitted faces recorded in the bitmap.
func (b *Buffers) FaceCount() int {
	n := 0
	for _, w := range b.FaceFilled {
		n += bits.OnesCount32(w)
	}
	return n
}

// FaceAt reports whether face slot i holds real geometry.
func (b *Buffers) FaceAt(i int) bool {
	return b.FaceFilled[i/BitsPerWord]&(1<<uint(i%BitsPerWord)) != 0
}

// Compact copies the live faces out of the fixed-capacity buffers into tight
// position and normal slices, in slot order. The result is a renderable
// non-indexed triangle list.
func (b *Buffers) Compact() (positions, normals []mgl32.Vec3) {
	n := b.FaceCount()
	positions = make([]mgl32.Vec3, 0, n*VertsPerFace)
	normals = make([]mgl32.Vec3, 0, n*VertsPerFace)

	total := b.NumVoxels * FacesPerVoxel
	for i := 0; i < total; i++ {
		if !b.FaceAt(i) {
			continue
		}
		slot := i * VertsPerFace
		positions = append(positions, b.Positions[slot:slot+VertsPerFace]...)
		normals = append(normals, b.Normals[slot:slot+VertsPerFace]...)
	}
	return positions, normals
}
