package extension

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"

	"github.com/vizkit-dev/vizkit/internal/manifest"
)

// Install copies the collected file set into "<targetRoot>/<id>-<version>"
// and returns the destination directory.
//
// Any existing installation sharing the manifest's id is removed first,
// whatever its version, so upgrades and downgrades never leave two copies of
// the same logical plugin installed. Removal is scoped to targetRoot only.
// The copy stops on the first failure; a half-installed extension is worse
// than none, and re-running install is idempotent.
func Install(pkgRoot string, m *manifest.Manifest, files []string, targetRoot string) (string, error) {
	dirName, err := manifest.DirectoryName(m)
	if err != nil {
		return "", err
	}

	existing, err := Scan(targetRoot)
	if err != nil {
		return "", err
	}
	for _, inst := range existing {
		if inst.ID != m.ID {
			continue
		}
		logReplacement(inst.Manifest.Version, m.Version, m.ID)
		if err := os.RemoveAll(inst.Dir); err != nil {
			return "", fmt.Errorf("removing stale installation %s: %w", inst.Dir, err)
		}
	}

	dest := filepath.Join(targetRoot, dirName)
	if err := os.MkdirAll(dest, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dest, err)
	}

	for _, rel := range files {
		src := filepath.Join(pkgRoot, filepath.FromSlash(rel))
		dst := filepath.Join(dest, filepath.FromSlash(rel))

		info, err := os.Stat(src)
		if err != nil {
			return "", fmt.Errorf("copying %s: %w", rel, err)
		}

		if info.IsDir() {
			err = copyDir(src, dst)
		} else {
			if mkErr := os.MkdirAll(filepath.Dir(dst), 0755); mkErr != nil {
				return "", fmt.Errorf("copying %s: %w", rel, mkErr)
			}
			err = copyFile(src, dst)
		}
		if err != nil {
			return "", fmt.Errorf("copying %s: %w", rel, err)
		}
	}

	return dest, nil
}

// Uninstall removes every installation of id under targetRoot and returns
// the number of directories removed.
func Uninstall(targetRoot, id string) (int, error) {
	existing, err := Scan(targetRoot)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, inst := range existing {
		if inst.ID != id {
			continue
		}
		if err := os.RemoveAll(inst.Dir); err != nil {
			return removed, fmt.Errorf("removing %s: %w", inst.Dir, err)
		}
		removed++
	}
	return removed, nil
}

// logReplacement notes what an install is displacing, flagging downgrades.
func logReplacement(oldVersion, newVersion, id string) {
	oldV, errOld := semver.NewVersion(oldVersion)
	newV, errNew := semver.NewVersion(newVersion)
	if errOld == nil && errNew == nil && newV.LessThan(oldV) {
		log.Warn("downgrading extension", "id", id, "from", oldVersion, "to", newVersion)
		return
	}
	log.Debug("replacing extension", "id", id, "from", oldVersion, "to", newVersion)
}

// copyDir recursively copies src to dst, preserving relative structure.
// Symlinks and other special files are skipped.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, data, srcInfo.Mode())
}
