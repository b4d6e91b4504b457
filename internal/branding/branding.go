// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml, then rebuild. Go's //go:embed bakes the
// values into the binary so a renamed distribution needs no code changes.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	HostDir     string `yaml:"host_dir"`
	HostAppID   string `yaml:"host_app_id"`
	ArchiveExt  string `yaml:"archive_ext"`
	HookScript  string `yaml:"hook_script"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "vizkit",
			DisplayName: "VizKit",
			Description: "Packaging and installation tool for Vizor plugins",
			HomeDir:     ".vizkit",
			EnvPrefix:   "VIZKIT",
			GoModule:    "github.com/vizkit-dev/vizkit",
			HostDir:     ".vizor",
			HostAppID:   "io.vizor.Vizor",
			ArchiveExt:  ".vext",
			HookScript:  "vizor:prepublish",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "vizkit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "VizKit").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the CLI's dot-directory name under $HOME (e.g., ".vizkit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "VIZKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by release scripts, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// HostDir returns the host application's dot-directory under $HOME (e.g., ".vizor").
func HostDir() string { load(); return defaults.HostDir }

// HostAppID returns the host application's sandbox id (e.g., "io.vizor.Vizor").
func HostAppID() string { load(); return defaults.HostAppID }

// ArchiveExt returns the plugin archive file extension, dot included.
func ArchiveExt() string { load(); return defaults.ArchiveExt }

// HookScript returns the manifest scripts key run before packaging.
func HookScript() string { load(); return defaults.HookScript }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("EXTENSIONS") → "VIZKIT_EXTENSIONS".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
