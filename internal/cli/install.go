package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vizkit-dev/vizkit/internal/collect"
	"github.com/vizkit-dev/vizkit/internal/extension"
	"github.com/vizkit-dev/vizkit/internal/hook"
	"github.com/vizkit-dev/vizkit/internal/manifest"
)

var installCmd = &cobra.Command{
	Use:   "install [path]",
	Short: "Install a plugin into the host's extensions directory",
	Long: `Install validates the plugin, runs its prepublish hook if one is declared,
removes any previously installed version with the same id, and copies the
plugin files into the host's extensions directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
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

	targetRoot, err := extension.PreferredRoot()
	if err != nil {
		return err
	}

	dest, err := extension.Install(root, m, files, targetRoot)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed %s@%s\n", m.ID, m.Version)
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", dest)
	return nil
}
