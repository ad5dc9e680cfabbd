package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// ManifestEntry represents one scene in the output manifest.
type ManifestEntry struct {
	Scene string `json:"scene"`
	Image string `json:"image"`
	Faces int    `json:"faces"`
	Error string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json to the output directory.
func WriteManifest(path, format string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		name := strings.TrimSuffix(filepath.Base(r.Path), filepath.Ext(r.Path))
		e := ManifestEntry{Scene: r.Path, Faces: r.Faces, Error: r.Error}
		if r.Success {
			e.Image = name + "." + format
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
