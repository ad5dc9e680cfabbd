// Package scene loads JSON scene descriptions: a destination grid size plus
// an ordered list of paste operations to stamp into it.
package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tbfleming/voxels/internal/paste"
	"github.com/tbfleming/voxels/internal/voxel"
)

// Op is one paste operation in a scene.
type Op struct {
	Shape    string   `json:"shape"`    // "cube" or "sphere"
	Size     [3]int   `json:"size"`     // cube only
	Diameter int      `json:"diameter"` // sphere only
	Offset   [3]int   `json:"offset"`
	Material uint8    `json:"material"`
	Paste    []string `json:"paste"` // "material", "material-arg", "vertexes"
}

// Scene describes a voxel volume to build.
type Scene struct {
	Grid [3]int `json:"grid"`
	Ops  []Op   `json:"ops"`
}

// Load reads and validates a scene file.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene description.
func Parse(data []byte) (Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("parse: %w", err)
	}

	for _, n := range s.Grid {
		if n <= 0 {
			return Scene{}, fmt.Errorf("grid size must be positive, got %v", s.Grid)
		}
	}

	for i, op := range s.Ops {
		switch op.Shape {
		case "cube":
			for _, n := range op.Size {
				if n <= 0 {
					return Scene{}, fmt.Errorf("op %d: cube size must be positive, got %v", i, op.Size)
				}
			}
		case "sphere":
			if op.Diameter <= 0 {
				return Scene{}, fmt.Errorf("op %d: sphere diameter must be positive, got %d", i, op.Diameter)
			}
		default:
			return Scene{}, fmt.Errorf("op %d: unknown shape %q", i, op.Shape)
		}
		if _, err := op.flags(); err != nil {
			return Scene{}, fmt.Errorf("op %d: %w", i, err)
		}
	}
	return s, nil
}

// flags converts the JSON paste channel names to a paste.Flags mask.
func (op Op) flags() (paste.Flags, error) {
	var f paste.Flags
	for _, name := range op.Paste {
		switch name {
		case "material":
			f |= paste.PasteMaterial
		case "material-arg":
			f |= paste.PasteMaterialArg
		case "vertexes":
			f |= paste.PasteVertexes
		default:
			return 0, fmt.Errorf("unknown paste channel %q", name)
		}
	}
	return f, nil
}

// Build allocates the destination grid and applies every op in order.
func (s Scene) Build() *voxel.Grid {
	g := voxel.New(s.Grid[0], s.Grid[1], s.Grid[2])
	for _, op := range s.Ops {
		f, _ := op.flags() // validated by Parse
		switch op.Shape {
		case "cube":
			paste.Cube(g, op.Size, op.Offset, f, op.Material)
		case "sphere":
			paste.Sphere(g, op.Diameter, op.Offset, f, op.Material)
		}
	}
	return g
}
