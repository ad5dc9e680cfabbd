package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable output and render settings.
type Config struct {
	OutputDir   string `json:"output_dir"`
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
	Format      string `json:"format"` // preview format: "webp" or "tga"
	WriteOBJ    bool   `json:"write_obj"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Size      int
	Workers   int
	Format    string
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Format == "" {
		c.Format = "webp"
	}
}

// Validate rejects settings Resolve cannot default away.
func (c *Config) Validate() error {
	if c.Format != "webp" && c.Format != "tga" {
		return fmt.Errorf("config: unknown format %q (want webp or tga)", c.Format)
	}
	return nil
}
