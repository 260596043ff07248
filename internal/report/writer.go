package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zombar/distantreader/internal/models"
)

// Write serializes the report as indented UTF-8 JSON at path, creating
// parent directories as needed. HTML escaping is disabled so the output
// stays readable plain text.
func Write(path string, r *models.Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return nil
}
