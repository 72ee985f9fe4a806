package meme

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteResults writes each result's PNG into dir under its download name,
// creating dir if needed. It returns the written paths in result order.
func WriteResults(dir string, results []Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(results))
	for _, r := range results {
		if r.Image == nil {
			return paths, fmt.Errorf("result %s has no image", r.ID)
		}
		path := filepath.Join(dir, r.FileName)
		if err := os.WriteFile(path, r.Image.Data, 0o644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
