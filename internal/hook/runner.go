// Package hook runs the optional prepublish script declared in a plugin
// manifest. This is the one place the tool executes external, untrusted
// code; a failure here means the package is not in a known-good state and
// must not be packaged or installed.
package hook

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/vizkit-dev/vizkit/internal/branding"
	"github.com/vizkit-dev/vizkit/internal/manifest"
)

// Runner runs a named manifest script in a package directory. It exists as
// an interface so command flows can be tested without spawning npm.
type Runner interface {
	RunScript(dir, name string) error
}

// HookError reports a hook script that started but exited non-zero.
type HookError struct {
	Script   string
	ExitCode int
}

func (e *HookError) Error() string {
	return fmt.Sprintf("script %q exited with status %d", e.Script, e.ExitCode)
}

// NPMRunner invokes manifest scripts through `npm run`, inheriting the
// caller's standard streams so build output is visible immediately.
type NPMRunner struct{}

func (NPMRunner) RunScript(dir, name string) error {
	npm, err := exec.LookPath("npm")
	if err != nil {
		return fmt.Errorf("locating npm: %w", err)
	}

	cmd := exec.Command(npm, "run", name)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &HookError{Script: name, ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("spawning npm run %s: %w", name, err)
	}
	return nil
}

// RunPrepublish runs the prepublish hook if the manifest declares one and is
// a no-op otherwise.
func RunPrepublish(r Runner, root string, m *manifest.Manifest) error {
	name := branding.HookScript()
	if _, ok := m.Scripts[name]; !ok {
		return nil
	}
	return r.RunScript(root, name)
}
