package extension

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vizkit-dev/vizkit/internal/manifest"
)

// writePackageRoot creates a package root for the given version of
// @acme/widget with base files and a dist/ directory.
func writePackageRoot(t *testing.T, version string) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		manifest.FileName:       `{"name": "@acme/widget", "version": "` + version + `", "main": "dist/extension.js"}`,
		"README.md":             "# widget\n",
		"CHANGELOG.md":          "## " + version + "\n",
		"dist/extension.js":     "export {} // " + version + "\n",
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

func widgetManifest(version string) *manifest.Manifest {
	return &manifest.Manifest{
		Name:                 "@acme/widget",
		Version:              version,
		Main:                 "dist/extension.js",
		NamespaceOrPublisher: "acme",
		ID:                   "acme.widget",
	}
}

var widgetFiles = []string{"CHANGELOG.md", "README.md", "dist", "package.json"}

func TestInstallCopiesFileSet(t *testing.T) {
	pkgRoot := writePackageRoot(t, "1.0.0")
	targetRoot := t.TempDir()

	dest, err := Install(pkgRoot, widgetManifest("1.0.0"), widgetFiles, targetRoot)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}

	if filepath.Base(dest) != "acme.widget-1.0.0" {
		t.Errorf("dest = %q, want directory named acme.widget-1.0.0", dest)
	}

	for _, rel := range []string{
		"package.json",
		"README.md",
		"CHANGELOG.md",
		"dist/extension.js",
		"dist/assets/style.css",
	} {
		if _, err := os.Stat(filepath.Join(dest, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s not installed: %v", rel, err)
		}
	}
}

func TestInstallUpgradeLeavesSingleCopy(t *testing.T) {
	targetRoot := t.TempDir()

	oldRoot := writePackageRoot(t, "1.0.0")
	if _, err := Install(oldRoot, widgetManifest("1.0.0"), widgetFiles, targetRoot); err != nil {
		t.Fatalf("install 1.0.0: %v", err)
	}

	newRoot := writePackageRoot(t, "1.1.0")
	if _, err := Install(newRoot, widgetManifest("1.1.0"), widgetFiles, targetRoot); err != nil {
		t.Fatalf("install 1.1.0: %v", err)
	}

	entries, err := os.ReadDir(targetRoot)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d installed directories, want 1", len(entries))
	}
	if entries[0].Name() != "acme.widget-1.1.0" {
		t.Errorf("installed dir = %q, want acme.widget-1.1.0", entries[0].Name())
	}
}

func TestInstallDowngradeLeavesSingleCopy(t *testing.T) {
	targetRoot := t.TempDir()

	newRoot := writePackageRoot(t, "1.1.0")
	if _, err := Install(newRoot, widgetManifest("1.1.0"), widgetFiles, targetRoot); err != nil {
		t.Fatalf("install 1.1.0: %v", err)
	}

	oldRoot := writePackageRoot(t, "1.0.0")
	if _, err := Install(oldRoot, widgetManifest("1.0.0"), widgetFiles, targetRoot); err != nil {
		t.Fatalf("install 1.0.0: %v", err)
	}

	entries, err := os.ReadDir(targetRoot)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d installed directories, want 1", len(entries))
	}
	if entries[0].Name() != "acme.widget-1.0.0" {
		t.Errorf("installed dir = %q, want acme.widget-1.0.0", entries[0].Name())
	}
}

func TestInstallLeavesOtherIDsAlone(t *testing.T) {
	targetRoot := t.TempDir()
	writeExtension(t, targetRoot, "other.plugin-3.0.0",
		`{"name": "plugin", "publisher": "other", "version": "3.0.0", "main": "dist/extension.js"}`)

	pkgRoot := writePackageRoot(t, "1.0.0")
	if _, err := Install(pkgRoot, widgetManifest("1.0.0"), widgetFiles, targetRoot); err != nil {
		t.Fatalf("Install: %v", err)
	}

	if _, err := os.Stat(filepath.Join(targetRoot, "other.plugin-3.0.0")); err != nil {
		t.Error("unrelated extension must survive an install")
	}
}

func TestInstallStopsOnMissingSource(t *testing.T) {
	pkgRoot := writePackageRoot(t, "1.0.0")
	targetRoot := t.TempDir()

	files := append([]string{}, widgetFiles...)
	files = append(files, "missing.txt")

	_, err := Install(pkgRoot, widgetManifest("1.0.0"), files, targetRoot)
	if err == nil {
		t.Fatal("expected copy failure")
	}
	if !strings.Contains(err.Error(), "missing.txt") {
		t.Errorf("error should name the failing file, got: %v", err)
	}
}

func TestUninstallRemovesAllCopies(t *testing.T) {
	targetRoot := t.TempDir()
	writeExtension(t, targetRoot, "acme.widget-1.0.0",
		`{"name": "@acme/widget", "version": "1.0.0", "main": "dist/extension.js"}`)
	writeExtension(t, targetRoot, "acme.widget-0.9.0",
		`{"name": "@acme/widget", "version": "0.9.0", "main": "dist/extension.js"}`)
	writeExtension(t, targetRoot, "other.plugin-3.0.0",
		`{"name": "plugin", "publisher": "other", "version": "3.0.0", "main": "dist/extension.js"}`)

	removed, err := Uninstall(targetRoot, "acme.widget")
	if err != nil {
		t.Fatalf("Uninstall: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}

	entries, err := os.ReadDir(targetRoot)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "other.plugin-3.0.0" {
		t.Errorf("unexpected remaining entries: %v", entries)
	}
}

func TestUninstallUnknownID(t *testing.T) {
	removed, err := Uninstall(t.TempDir(), "nobody.nothing")
	if err != nil {
		t.Fatalf("Uninstall: %v", err)
	}
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
}

func TestInstallRemovesStaleCopyEvenWhenScanWarns(t *testing.T) {
	targetRoot := t.TempDir()
	// A corrupted sibling must not block removal of the stale copy.
	writeExtension(t, targetRoot, "broken-0.0.1", `{broken`)
	writeExtension(t, targetRoot, "acme.widget-1.0.0",
		`{"name": "@acme/widget", "version": "1.0.0", "main": "dist/extension.js"}`)

	pkgRoot := writePackageRoot(t, "1.1.0")
	if _, err := Install(pkgRoot, widgetManifest("1.1.0"), widgetFiles, targetRoot); err != nil {
		t.Fatalf("Install: %v", err)
	}

	if _, err := os.Stat(filepath.Join(targetRoot, "acme.widget-1.0.0")); err == nil {
		t.Error("stale 1.0.0 copy should have been removed")
	}
	if _, err := os.Stat(filepath.Join(targetRoot, "acme.widget-1.1.0")); err != nil {
		t.Error("1.1.0 should be installed")
	}
}
