// Package preview renders a compacted voxel mesh to a flat-shaded image for
// quick visual inspection. Orthographic projection, z-buffer, no textures.
package preview

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Options controls the preview render.
type Options struct {
	Size        int     // output image edge in pixels
	Supersample int     // render at Size*Supersample, then downsample
	Yaw         float64 // camera yaw in degrees
	Pitch       float64 // camera pitch in degrees
	BaseColor   [3]uint8
}

// DefaultOptions returns a three-quarter view at 256px.
func DefaultOptions() Options {
	return Options{
		Size:        256,
		Supersample: 2,
		Yaw:         -30,
		Pitch:       25,
		BaseColor:   [3]uint8{168, 168, 178},
	}
}

// Render projects and rasterizes a non-indexed triangle list (positions and
// parallel flat normals, 3 vertices per triangle) into an NRGBA image of
// Size*Supersample pixels. Transparent background.
func Render(positions, normals []mgl32.Vec3, opts Options) *image.NRGBA {
	renderSize := opts.Size * opts.Supersample
	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	if len(positions) < 3 {
		return img
	}

	rot := mgl64.HomogRotate3DX(mgl64.DegToRad(opts.Pitch)).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(opts.Yaw)))

	// Transform vertices and fit the bounding box to the framebuffer.
	view := make([]mgl64.Vec3, len(positions))
	min := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i, p := range positions {
		v := mgl64.TransformCoordinate(mgl64.Vec3{float64(p.X()), float64(p.Y()), float64(p.Z())}, rot)
		view[i] = v
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}

	center := min.Add(max).Mul(0.5)
	span := max.X() - min.X()
	if s := max.Y() - min.Y(); s > span {
		span = s
	}
	if span < 0.001 {
		span = 0.001
	}
	margin := 16 * opts.Supersample
	scale := float64(renderSize-2*margin) / span
	half := float64(renderSize) / 2

	fb := newFrameBuffer(renderSize)
	lc := DefaultLightConfig()

	for t := 0; t+2 < len(view); t += 3 {
		a := project(view[t], center, scale, half)
		b := project(view[t+1], center, scale, half)
		c := project(view[t+2], center, scale, half)

		// Flat normal comes with the mesh; rotate it into view space for
		// shading.
		n := normals[t]
		vn := mgl64.TransformNormal(mgl64.Vec3{float64(n.X()), float64(n.Y()), float64(n.Z())}, rot)
		shade := lc.computeShade(vn)

		rasterizeTriangle(fb,
			a.X(), a.Y(), a.Z(),
			b.X(), b.Y(), b.Z(),
			c.X(), c.Y(), c.Z(),
			opts.BaseColor[0], opts.BaseColor[1], opts.BaseColor[2],
			shade, lc.Exposure, lc.InvGamma)
	}

	copy(img.Pix, fb.color)
	return img
}

// project maps a view-space vertex to pixel space. Y flips for image
// coordinates; view-space Z is kept as depth (larger = closer).
func project(v, center mgl64.Vec3, scale, half float64) mgl64.Vec3 {
	return mgl64.Vec3{
		(v.X()-center.X())*scale + half,
		half - (v.Y()-center.Y())*scale,
		(v.Z() - center.Z()) * scale,
	}
}
