// Package collect enumerates the exact file set that goes into a plugin
// archive or install: the manifest, readme, changelog, the entry artifact,
// and either the declared files list or the default build output directory.
// All probes are read-only; the result is computed fresh on every call.
package collect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vizkit-dev/vizkit/internal/manifest"
)

// DefaultOutputDir is included as a whole when the manifest declares no files list.
const DefaultOutputDir = "dist"

const (
	readmeFile    = "README.md"
	changelogFile = "CHANGELOG.md"
)

// MissingFileError reports a required base file that does not exist as a regular file.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("required file %s is missing or not a regular file", e.Path)
}

// MissingPathError reports a declared files entry that does not exist.
type MissingPathError struct {
	Path string
}

func (e *MissingPathError) Error() string {
	return fmt.Sprintf("declared file %s does not exist", e.Path)
}

// MissingDirError reports an absent default build output directory.
type MissingDirError struct {
	Path string
}

func (e *MissingDirError) Error() string {
	return fmt.Sprintf("build output directory %s is missing; run the bundler first or declare a files list", e.Path)
}

// PathEscapeError reports a declared files entry that resolves outside the package root.
type PathEscapeError struct {
	Path string
}

func (e *PathEscapeError) Error() string {
	return fmt.Sprintf("declared file %s escapes the package root", e.Path)
}

// Files returns the set of root-relative paths (forward-slash form, sorted,
// deduplicated) that must be archived or installed for the given manifest.
// The first missing or escaping entry in iteration order is the one reported.
func Files(root string, m *manifest.Manifest) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving package root: %w", err)
	}

	set := make(map[string]struct{})

	base := []string{manifest.FileName, readmeFile, changelogFile, m.Main}
	for _, rel := range base {
		info, err := os.Stat(filepath.Join(absRoot, filepath.FromSlash(rel)))
		if err != nil || !info.Mode().IsRegular() {
			return nil, &MissingFileError{Path: rel}
		}
		set[filepath.ToSlash(filepath.Clean(filepath.FromSlash(rel)))] = struct{}{}
	}

	if len(m.Files) > 0 {
		for _, declared := range m.Files {
			abs := filepath.Join(absRoot, filepath.FromSlash(declared))
			rel, err := filepath.Rel(absRoot, abs)
			if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				return nil, &PathEscapeError{Path: declared}
			}
			if _, err := os.Stat(abs); err != nil {
				return nil, &MissingPathError{Path: declared}
			}
			set[filepath.ToSlash(rel)] = struct{}{}
		}
	} else {
		info, err := os.Stat(filepath.Join(absRoot, DefaultOutputDir))
		if err != nil || !info.IsDir() {
			return nil, &MissingDirError{Path: DefaultOutputDir}
		}
		set[DefaultOutputDir] = struct{}{}
	}

	result := make([]string, 0, len(set))
	for rel := range set {
		result = append(result, rel)
	}
	sort.Strings(result)
	return result, nil
}
