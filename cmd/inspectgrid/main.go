// inspectgrid builds one scene and prints grid and mesh statistics without
// writing any output files. Useful for sanity-checking scene files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tbfleming/voxels/internal/mesher"
	"github.com/tbfleming/voxels/internal/scene"
	"github.com/tbfleming/voxels/internal/voxel"
)

func main() {
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: inspectgrid [flags] scene.json")
		os.Exit(2)
	}

	s, err := scene.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	grid := s.Build()

	fmt.Printf("Grid: %dx%dx%d (%d voxels, %d words with halo)\n",
		grid.SX, grid.SY, grid.SZ, grid.NumVoxels(), len(grid.Words))
	fmt.Printf("Occupied: %d\n", grid.CountOccupied())

	// Per-material histogram
	counts := map[uint8]int{}
	for z := 0; z < grid.SZ; z++ {
		for y := 0; y < grid.SY; y++ {
			for x := 0; x < grid.SX; x++ {
				if m := voxel.Material(grid.At(x, y, z)); m != 0 {
					counts[m]++
				}
			}
		}
	}
	for m := 1; m < 256; m++ {
		if n := counts[uint8(m)]; n > 0 {
			fmt.Printf("  material %3d: %d\n", m, n)
		}
	}

	buf := mesher.NewBuffers(grid.SX, grid.SY, grid.SZ)
	mesher.Generate(grid, buf, *workers)

	faces := buf.FaceCount()
	fmt.Printf("Faces: %d emitted of %d slots (%d bitmap words)\n",
		faces, grid.NumVoxels()*mesher.FacesPerVoxel, len(buf.FaceFilled))
	fmt.Printf("Triangles: %d, vertices: %d\n", faces*2, faces*mesher.VertsPerFace)
}
