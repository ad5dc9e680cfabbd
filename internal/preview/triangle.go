package preview

import "math"

// rasterizeTriangle draws one flat-shaded triangle into the framebuffer.
// Coordinates are already projected to pixel space; z increases toward the
// camera. shade is the precomputed lighting scalar for the face.
//
// Hot path: zero allocations in the pixel loop.
func rasterizeTriangle(
	fb *frameBuffer,
	x0, y0, z0, x1, y1, z1, x2, y2, z2 float64,
	r, g, b uint8,
	shade, exposure, invGamma float64,
) {
	size := fb.size

	// Bounding box clipped to the framebuffer
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX >= size {
		maxX = size - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= size {
		maxY = size - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Shaded color, computed once per face: sRGB decode, light, tone map,
	// re-encode.
	lr := srgbToLinear[r] * shade * exposure
	lg := srgbToLinear[g] * shade * exposure
	lb := srgbToLinear[b] * shade * exposure
	cr := clamp255(math.Pow(acesTonemap(lr), invGamma) * 255)
	cg := clamp255(math.Pow(acesTonemap(lg), invGamma) * 255)
	cb := clamp255(math.Pow(acesTonemap(lb), invGamma) * 255)

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * size
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.depth[zIdx] {
				continue
			}
			fb.depth[zIdx] = z

			pxIdx := zIdx * 4
			fb.color[pxIdx] = cr
			fb.color[pxIdx+1] = cg
			fb.color[pxIdx+2] = cb
			fb.color[pxIdx+3] = 255
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
