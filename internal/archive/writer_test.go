package archive

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/vizkit-dev/vizkit/internal/manifest"
)

func writePackageRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"package.json":          `{"name": "@acme/widget", "version": "1.0.0", "main": "dist/extension.js"}`,
		"README.md":             "# widget\n",
		"CHANGELOG.md":          "## 1.0.0\n",
		"dist/extension.js":     "export {}\n",
		"dist/assets/style.css": "body {}\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

var testSet = []string{"CHANGELOG.md", "README.md", "dist", "package.json"}

func entryNames(t *testing.T, path string) []string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}

func TestWriteExpandsDirectories(t *testing.T) {
	root := writePackageRoot(t)
	out := filepath.Join(t.TempDir(), "widget.vext")

	if err := Write(root, testSet, out); err != nil {
		t.Fatalf("Write: %v", err)
	}

	names := entryNames(t, out)
	want := map[string]bool{
		"CHANGELOG.md":          true,
		"README.md":             true,
		"dist/extension.js":     true,
		"dist/assets/style.css": true,
		"package.json":          true,
	}
	if len(names) != len(want) {
		t.Fatalf("entries = %v, want %d entries", names, len(want))
	}
	for _, name := range names {
		if !want[name] {
			t.Errorf("unexpected entry %q", name)
		}
	}
}

func TestWriteForwardSlashEntryNames(t *testing.T) {
	root := writePackageRoot(t)
	out := filepath.Join(t.TempDir(), "widget.vext")

	if err := Write(root, testSet, out); err != nil {
		t.Fatalf("Write: %v", err)
	}

	for _, name := range entryNames(t, out) {
		if bytes.ContainsRune([]byte(name), '\\') {
			t.Errorf("entry %q contains a backslash; archive keys must use forward slashes", name)
		}
	}
}

func TestWriteFixedTimestamp(t *testing.T) {
	root := writePackageRoot(t)
	out := filepath.Join(t.TempDir(), "widget.vext")

	if err := Write(root, testSet, out); err != nil {
		t.Fatalf("Write: %v", err)
	}

	r, err := zip.OpenReader(out)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	for _, f := range r.File {
		if !f.Modified.UTC().Equal(FixedModTime) {
			t.Errorf("entry %q modified = %v, want %v", f.Name, f.Modified.UTC(), FixedModTime)
		}
	}
}

func TestWriteDeterministic(t *testing.T) {
	root := writePackageRoot(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.vext")
	second := filepath.Join(dir, "second.vext")

	if err := Write(root, testSet, first); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := Write(root, testSet, second); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("packaging the same inputs twice must produce byte-identical archives")
	}
}

func TestWriteMissingInput(t *testing.T) {
	root := writePackageRoot(t)
	out := filepath.Join(t.TempDir(), "widget.vext")

	err := Write(root, []string{"nope.txt"}, out)
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if _, statErr := os.Stat(out); statErr == nil {
		t.Error("partial archive should not be left behind")
	}
}

func TestDefaultOutputPath(t *testing.T) {
	m := &manifest.Manifest{Name: "@acme/widget", Version: "2.0.0"}

	got, err := DefaultOutputPath(filepath.Join("some", "root"), m)
	if err != nil {
		t.Fatalf("DefaultOutputPath: %v", err)
	}
	want := filepath.Join("some", "root", "acme.widget-2.0.0.vext")
	if got != want {
		t.Errorf("DefaultOutputPath = %q, want %q", got, want)
	}
}
