package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vizkit-dev/vizkit/internal/extension"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <id>",
	Short: "Remove an installed plugin",
	Long:  `Remove every installed copy of the given extension id (publisher.name) from the host's extensions directory.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	id := args[0]

	targetRoot, err := extension.PreferredRoot()
	if err != nil {
		return err
	}

	removed, err := extension.Uninstall(targetRoot, id)
	if err != nil {
		return err
	}
	if removed == 0 {
		return fmt.Errorf("extension %s is not installed in %s", id, targetRoot)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%d directories)\n", id, removed)
	return nil
}
