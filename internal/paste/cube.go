package paste

import "github.com/tbfleming/voxels/internal/voxel"

// cubeStamp is an axis-aligned box. Its corners are always sharp: the vertex
// channel writes zero displacement. Rounding is the sphere stamp's job; cubes
// staying sharp is intentional.
type cubeStamp struct {
	sx, sy, sz int
}

func (c cubeStamp) inside(x, y, z int) bool {
	return x < c.sx && y < c.sy && z < c.sz
}

func (c cubeStamp) cornerBits(x, y, z int) uint32 {
	return 0
}

// Cube stamps an axis-aligned box of the given size into dst at offset.
// Offset components may be negative; samples falling outside the destination
// volume are dropped.
func Cube(dst *voxel.Grid, size [3]int, offset [3]int, flags Flags, material uint8) {
	apply(dst, size[0], size[1], size[2], offset, flags, material,
		cubeStamp{sx: size[0], sy: size[1], sz: size[2]})
}
