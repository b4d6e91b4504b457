// Package archive serializes a collected file set into a deflate-compressed
// zip archive. Entry names always use forward slashes and every entry carries
// the same fixed modification timestamp, so packaging byte-identical inputs
// produces a byte-identical archive.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/vizkit-dev/vizkit/internal/branding"
	"github.com/vizkit-dev/vizkit/internal/manifest"
)

// FixedModTime is stamped on every archive entry in place of the file's real
// mtime. Changing it breaks reproducibility against previously built archives.
var FixedModTime = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// DefaultOutputPath returns "<root>/<id>-<version><ext>", cleaned.
func DefaultOutputPath(root string, m *manifest.Manifest) (string, error) {
	dirName, err := manifest.DirectoryName(m)
	if err != nil {
		return "", err
	}
	return filepath.Clean(filepath.Join(root, dirName+branding.ArchiveExt())), nil
}

// Write streams the collected file set into a zip archive at outPath.
// Directory entries are expanded recursively. On any failure the partial
// output file is removed and must be treated as garbage by the caller.
func Write(root string, files []string, outPath string) error {
	entries, err := expand(root, files)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating archive %s: %w", outPath, err)
	}

	zw := zip.NewWriter(out)
	for _, rel := range entries {
		if err := writeEntry(zw, root, rel); err != nil {
			zw.Close()
			out.Close()
			os.Remove(outPath)
			return fmt.Errorf("writing archive %s: %w", outPath, err)
		}
	}

	if err := zw.Close(); err != nil {
		out.Close()
		os.Remove(outPath)
		return fmt.Errorf("finalizing archive %s: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("flushing archive %s: %w", outPath, err)
	}
	return nil
}

// expand resolves the file set to the full list of regular files, recursing
// into directories, deduplicated and sorted for a stable entry order.
func expand(root string, files []string) ([]string, error) {
	seen := make(map[string]struct{})

	for _, rel := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("collecting %s: %w", rel, err)
		}

		if !info.IsDir() {
			seen[filepath.ToSlash(rel)] = struct{}{}
			continue
		}

		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if !d.Type().IsRegular() {
				return nil
			}
			sub, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			seen[filepath.ToSlash(sub)] = struct{}{}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("collecting %s: %w", rel, err)
		}
	}

	result := make([]string, 0, len(seen))
	for rel := range seen {
		result = append(result, rel)
	}
	sort.Strings(result)
	return result, nil
}

// writeEntry streams one file into the archive under its forward-slash name.
func writeEntry(zw *zip.Writer, root, rel string) error {
	abs := filepath.Join(root, filepath.FromSlash(rel))

	src, err := os.Open(abs)
	if err != nil {
		return fmt.Errorf("opening %s: %w", rel, err)
	}
	defer src.Close()

	header := &zip.FileHeader{
		Name:     rel,
		Method:   zip.Deflate,
		Modified: FixedModTime,
	}
	header.SetMode(0o644)

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("creating entry %s: %w", rel, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("compressing %s: %w", rel, err)
	}
	return nil
}
