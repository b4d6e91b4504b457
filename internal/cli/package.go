package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vizkit-dev/vizkit/internal/archive"
	"github.com/vizkit-dev/vizkit/internal/branding"
	"github.com/vizkit-dev/vizkit/internal/collect"
	"github.com/vizkit-dev/vizkit/internal/config"
	"github.com/vizkit-dev/vizkit/internal/hook"
	"github.com/vizkit-dev/vizkit/internal/manifest"
)

var packageOut string

var packageCmd = &cobra.Command{
	Use:   "package [path]",
	Short: "Package a plugin into a distributable archive",
	Long: `Package validates the plugin's package.json, runs its prepublish hook if
one is declared, and writes the collected files into a ` + branding.ArchiveExt() + ` archive.
The build artifacts must already exist; run your bundler first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPackage,
}

func init() {
	packageCmd.Flags().StringVarP(&packageOut, "out", "o", "", "Archive output path (default <root>/<id>-<version>"+branding.ArchiveExt()+")")
	rootCmd.AddCommand(packageCmd)
}

func runPackage(cmd *cobra.Command, args []string) error {
	root, err := packageRoot(args)
	if err != nil {
		return err
	}

	m, err := manifest.Load(root)
	if err != nil {
		return err
	}

	if err := hook.RunPrepublish(hookRunner, root, m); err != nil {
		return fmt.Errorf("prepublish hook: %w", err)
	}

	files, err := collect.Files(root, m)
	if err != nil {
		return err
	}

	outPath, err := resolveOutPath(root, m)
	if err != nil {
		return err
	}

	if err := archive.Write(root, files, outPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Packaged %s@%s (%d entries)\n", m.ID, m.Version, len(files))
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", outPath)
	return nil
}

// resolveOutPath applies the --out flag, then the package.out_dir config key,
// then the default archive path at the package root.
func resolveOutPath(root string, m *manifest.Manifest) (string, error) {
	if packageOut != "" {
		return filepath.Clean(packageOut), nil
	}

	if dir := config.Get(config.KeyPackageOutDir); dir != "" {
		dirName, err := manifest.DirectoryName(m)
		if err != nil {
			return "", err
		}
		return filepath.Clean(filepath.Join(dir, dirName+branding.ArchiveExt())), nil
	}

	return archive.DefaultOutputPath(root, m)
}

// packageRoot resolves the optional positional path argument to an absolute
// package root, defaulting to the current directory.
func packageRoot(args []string) (string, error) {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving package root %s: %w", root, err)
	}
	return abs, nil
}
