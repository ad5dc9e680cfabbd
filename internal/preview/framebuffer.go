package preview

import "math"

// frameBuffer is the render target: interleaved RGBA color plus a per-pixel
// depth buffer, flat slices for cache locality.
type frameBuffer struct {
	size  int
	color []uint8   // RGBA, len = size*size*4
	depth []float64 // init to -inf, larger = closer
}

func newFrameBuffer(size int) *frameBuffer {
	n := size * size
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = math.Inf(-1)
	}
	return &frameBuffer{
		size:  size,
		color: make([]uint8, n*4),
		depth: depth,
	}
}
