// Package batch processes many scene files into meshes, previews and OBJ
// exports using a worker pool.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tbfleming/voxels/internal/export"
	"github.com/tbfleming/voxels/internal/mesher"
	"github.com/tbfleming/voxels/internal/preview"
	"github.com/tbfleming/voxels/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	RenderSize  int
	Supersample int
	Format      string // "webp" or "tga"
	WriteOBJ    bool
	Workers     int
}

// Result holds the outcome of processing one scene.
type Result struct {
	Path    string
	Faces   int
	Success bool
	Error   string
}

// Run processes all scene files using a worker pool. Workers <= 0 means
// NumCPU.
func Run(cfg Config, paths []string) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	sceneChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range sceneChan {
				results[idx] = processScene(cfg, paths[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range paths {
		sceneChan <- i
	}
	close(sceneChan)

	wg.Wait()
	close(done)

	return results
}

func processScene(cfg Config, path string) Result {
	s, err := scene.Load(path)
	if err != nil {
		return Result{Path: path, Error: err.Error()}
	}

	grid := s.Build()

	// Mesh sequentially inside the worker: scenes are already processed in
	// parallel, and nested pools just thrash.
	buf := mesher.NewBuffers(grid.SX, grid.SY, grid.SZ)
	mesher.Generate(grid, buf, 1)
	positions, normals := buf.Compact()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return Result{Path: path, Error: err.Error()}
	}

	opts := preview.DefaultOptions()
	opts.Size = cfg.RenderSize
	opts.Supersample = cfg.Supersample
	img := preview.Render(positions, normals, opts)
	if cfg.Supersample > 1 {
		img = preview.Downsample(img, cfg.RenderSize)
	}

	outPath := filepath.Join(cfg.OutputDir, name+"."+cfg.Format)
	if err := preview.Save(outPath, img); err != nil {
		return Result{Path: path, Error: err.Error()}
	}

	if cfg.WriteOBJ {
		objPath := filepath.Join(cfg.OutputDir, name+".obj")
		if err := export.SaveOBJ(objPath, positions, normals); err != nil {
			return Result{Path: path, Error: err.Error()}
		}
	}

	return Result{
		Path:    path,
		Faces:   len(positions) / mesher.VertsPerFace,
		Success: true,
	}
}
