package voxel

// Grid is a dense voxel volume of logical size (SX, SY, SZ), stored with a
// one-cell halo on every axis so neighbor reads at the logical boundary stay
// in bounds. Storage size is (SX+2)*(SY+2)*(SZ+2) packed words. The caller
// owns Words and is responsible for populating the halo (zero = empty).
type Grid struct {
	SX, SY, SZ int
	Words      []uint32
}

// New allocates a zeroed grid (all empty, halo included).
func New(sx, sy, sz int) *Grid {
	return &Grid{
		SX:    sx,
		SY:    sy,
		SZ:    sz,
		Words: make([]uint32, (sx+2)*(sy+2)*(sz+2)),
	}
}

// Index maps a logical coordinate to a storage offset for a grid of the given
// logical size. Coordinates range over [-1, size] inclusive per axis (the
// halo). Coordinates outside that range are a contract violation; this is the
// hot path and does not check.
func Index(sx, sy, x, y, z int) int {
	return (x + 1) + (y+1)*(sx+2) + (z+1)*(sx+2)*(sy+2)
}

// At reads the packed word at a logical coordinate, halo included.
func (g *Grid) At(x, y, z int) uint32 {
	return g.Words[Index(g.SX, g.SY, x, y, z)]
}

// Set writes the packed word at a logical coordinate, halo included.
func (g *Grid) Set(x, y, z int, word uint32) {
	g.Words[Index(g.SX, g.SY, x, y, z)] = word
}

// NumVoxels returns the logical voxel count, excluding the halo.
func (g *Grid) NumVoxels() int {
	return g.SX * g.SY * g.SZ
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	words := make([]uint32, len(g.Words))
	copy(words, g.Words)
	return &Grid{SX: g.SX, SY: g.SY, SZ: g.SZ, Words: words}
}

// CountOccupied returns the number of occupied voxels in the logical volume.
func (g *Grid) CountOccupied() int {
	n := 0
	for z := 0; z < g.SZ; z++ {
		for y := 0; y < g.SY; y++ {
			for x := 0; x < g.SX; x++ {
				if Occupied(g.At(x, y, z)) {
					n++
				}
			}
		}
	}
	return n
}
