package extension

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vizkit-dev/vizkit/internal/branding"
	"github.com/vizkit-dev/vizkit/internal/config"
)

const extensionsDir = "extensions"

// PreferredRoot returns the single extensions directory installs target.
//
// Resolution order:
//  1. the extensions_root config key
//  2. the VIZKIT_EXTENSIONS environment variable
//  3. the sandboxed host data root (~/.var/app/<app-id>/data/vizor/extensions)
//     when the host's sandbox directory exists
//  4. the default user-level root (~/.vizor/extensions)
//
// Installs always target exactly one root; when both a sandboxed and a
// default root exist, the sandboxed one wins because the sandboxed host
// cannot read the other.
func PreferredRoot() (string, error) {
	if v := config.Get(config.KeyExtensionsRoot); v != "" {
		return v, nil
	}
	if v := os.Getenv(branding.EnvVar("EXTENSIONS")); v != "" {
		return v, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	sandbox := filepath.Join(home, ".var", "app", branding.HostAppID())
	if info, err := os.Stat(sandbox); err == nil && info.IsDir() {
		dataName := strings.TrimPrefix(branding.HostDir(), ".")
		return filepath.Join(sandbox, "data", dataName, extensionsDir), nil
	}

	return filepath.Join(home, branding.HostDir(), extensionsDir), nil
}
