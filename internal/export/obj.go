// Package export writes compacted meshes to Wavefront OBJ.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// WriteOBJ writes a non-indexed triangle list (3 consecutive vertices per
// face, parallel flat normals) as v/vn/f records with 1-based indices.
func WriteOBJ(w io.Writer, positions, normals []mgl32.Vec3) error {
	bw := bufio.NewWriter(w)

	for _, p := range positions {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", p.X(), p.Y(), p.Z()); err != nil {
			return err
		}
	}
	for _, n := range normals {
		if _, err := fmt.Fprintf(bw, "vn %g %g %g\n", n.X(), n.Y(), n.Z()); err != nil {
			return err
		}
	}
	for i := 0; i+2 < len(positions); i += 3 {
		a, b, c := i+1, i+2, i+3
		if _, err := fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveOBJ writes the mesh to a file.
func SaveOBJ(path string, positions, normals []mgl32.Vec3) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteOBJ(f, positions, normals); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
