package extension

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vizkit-dev/vizkit/internal/manifest"
)

// Installed describes one extension found under an extensions root.
type Installed struct {
	ID       string
	Manifest *manifest.Manifest
	Dir      string
}

// Scan lists the extensions installed under root by reading each immediate
// subdirectory's manifest. A missing root yields an empty list, not an
// error. Subdirectories whose manifest cannot be read or validated are
// skipped with a warning so one corrupted sibling never blocks operations
// on the others.
func Scan(root string) ([]Installed, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading extensions root %s: %w", root, err)
	}

	var result []Installed
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		m, err := manifest.Load(dir)
		if err != nil {
			log.Warn("skipping extension with unreadable manifest", "dir", dir, "err", err)
			continue
		}

		result = append(result, Installed{ID: m.ID, Manifest: m, Dir: dir})
	}
	return result, nil
}
