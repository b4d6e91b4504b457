package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vizkit-dev/vizkit/internal/extension"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List installed plugins",
	Long:  `List the plugins installed in the host's extensions directory.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents an installed plugin for display.
type listEntry struct {
	ID        string `json:"id"`
	Version   string `json:"version"`
	Directory string `json:"directory"`
}

func runList(cmd *cobra.Command, args []string) error {
	targetRoot, err := extension.PreferredRoot()
	if err != nil {
		return err
	}

	installed, err := extension.Scan(targetRoot)
	if err != nil {
		return err
	}

	if len(installed) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No plugins installed yet.")
		return nil
	}

	entries := make([]listEntry, 0, len(installed))
	for _, inst := range installed {
		entries = append(entries, listEntry{
			ID:        inst.ID,
			Version:   inst.Manifest.Version,
			Directory: inst.Dir,
		})
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tVERSION\tDIRECTORY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Version, e.Directory)
	}
	return w.Flush()
}
