package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tbfleming/voxels/internal/batch"
	"github.com/tbfleming/voxels/internal/config"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	size := flag.Int("size", 0, "Preview image size in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	format := flag.String("format", "", "Preview format: webp or tga (default: webp)")
	writeOBJ := flag.Bool("obj", false, "Also write an OBJ mesh per scene")

	flag.Parse()

	scenes := flag.Args()
	if len(scenes) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: voxrender [flags] scene.json [scene.json ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Size:      *size,
		Workers:   *workers,
		Format:    *format,
	})
	if *writeOBJ {
		cfg.WriteOBJ = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Voxel scene renderer → %s\n", cfg.Format)
	fmt.Printf("Scenes: %d, Workers: %d\n", len(scenes), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Format:      cfg.Format,
		WriteOBJ:    cfg.WriteOBJ,
		Workers:     cfg.Workers,
	}, scenes)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(scenes))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Path, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, cfg.Format, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
