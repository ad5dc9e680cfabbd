package paste

import (
	"math"

	"github.com/tbfleming/voxels/internal/voxel"
)

// sphereStamp is an analytic sphere of the given diameter, centered in its
// own scan cube. Boundary lattice corners get displacement that projects them
// radially onto the sphere surface, turning the blocky stamp into a smooth
// quantized sphere.
type sphereStamp struct {
	radius float64
}

func (s sphereStamp) inside(x, y, z int) bool {
	dx := float64(x) + 0.5 - s.radius
	dy := float64(y) + 0.5 - s.radius
	dz := float64(z) + 0.5 - s.radius
	return dx*dx+dy*dy+dz*dz < s.radius*s.radius
}

func (s sphereStamp) cornerBits(x, y, z int) uint32 {
	// A corner is smoothed only when the 8 cells sharing it straddle the
	// sphere surface. Fully-inside and fully-outside corners stay put.
	count := 0
	for k := 0; k < 8; k++ {
		if s.inside(x-1+k&1, y-1+k>>1&1, z-1+k>>2&1) {
			count++
		}
	}
	if count == 0 || count == 8 {
		return 0
	}

	dx := float64(x) - s.radius
	dy := float64(y) - s.radius
	dz := float64(z) - s.radius
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if dist < 1e-9 {
		return 0
	}
	factor := s.radius / dist

	return voxel.PackDelta(
		projectDelta(dx, factor),
		projectDelta(dy, factor),
		projectDelta(dz, factor),
	)
}

// projectDelta converts one axis component of a radial projection into the
// stored fixed-point displacement: (offset*factor + center) - original, where
// offset is already relative to the center.
func projectDelta(offset, factor float64) int8 {
	v := math.Round((offset*factor - offset) * voxel.DeltaScale)
	if v > 127 {
		v = 127
	}
	if v < -127 {
		v = -127
	}
	return int8(v)
}

// Sphere stamps an analytic sphere of the given diameter into dst at offset.
// The scan region is the sphere's bounding cube plus the trailing corner
// layer.
func Sphere(dst *voxel.Grid, diameter int, offset [3]int, flags Flags, material uint8) {
	apply(dst, diameter, diameter, diameter, offset, flags, material,
		sphereStamp{radius: float64(diameter) / 2})
}
