// Package shape builds pre-filled voxel grids for tools and tests. These are
// generators, not stamps: they allocate a fresh grid (halo included) rather
// than blending into an existing one.
package shape

import (
	"math"

	"github.com/tbfleming/voxels/internal/voxel"
)

// Sphere fills a size³ grid with an analytic sphere of the given material.
// Lattice corners sitting on the sphere surface get fixed-point smoothing
// deltas computed by radial projection within each Z slice, so the equator
// silhouette is round while the profile stays stepped. Halo cells are
// populated too, so the grid meshes correctly at its boundary.
func Sphere(size int, material uint8) *voxel.Grid {
	g := voxel.New(size, size, size)
	half := float64(size) / 2

	inside := func(x, y, z int) bool {
		dx := float64(x) - half
		dy := float64(y) - half
		dz := float64(z) - half
		return dx*dx+dy*dy+dz*dz < half*half
	}

	for z := -1; z <= size; z++ {
		// Radius of the sphere's cross-section at this slice.
		rad2 := half*half - (float64(z)-half)*(float64(z)-half)
		radius2D := 0.0
		if rad2 > 0 {
			radius2D = math.Sqrt(rad2)
		}

		for y := -1; y <= size; y++ {
			for x := -1; x <= size; x++ {
				var word uint32
				if inside(x, y, z) {
					word = uint32(material) << 24
				}

				// Corner smoothing: only corners whose 8 surrounding cells
				// straddle the surface.
				count := 0
				for k := 0; k < 8; k++ {
					if inside(x-1+k&1, y-1+k>>1&1, z-1+k>>2&1) {
						count++
					}
				}
				if count != 0 && count != 8 {
					dx := float64(x) - half
					dy := float64(y) - half
					dist := math.Sqrt(dx*dx + dy*dy)
					if dist > 1e-9 {
						factor := radius2D / dist
						word |= uint32(voxel.PackDelta(
							sliceDelta(dx, factor),
							sliceDelta(dy, factor),
							0,
						))
					}
				}

				if word != 0 {
					g.Set(x, y, z, word)
				}
			}
		}
	}
	return g
}

// sliceDelta is the in-slice radial projection of one axis component,
// quantized to the stored fixed point.
func sliceDelta(offset, factor float64) int8 {
	v := math.Round((offset*factor - offset) * voxel.DeltaScale)
	if v > 127 {
		v = 127
	}
	if v < -127 {
		v = -127
	}
	return int8(v)
}

// Box fills a grid of the given logical size with solid material and sharp
// corners.
func Box(sx, sy, sz int, material uint8) *voxel.Grid {
	g := voxel.New(sx, sy, sz)
	for z := 0; z < sz; z++ {
		for y := 0; y < sy; y++ {
			for x := 0; x < sx; x++ {
				g.Set(x, y, z, voxel.Pack(0, 0, 0, material))
			}
		}
	}
	return g
}
