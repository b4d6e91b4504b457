package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vizkit-dev/vizkit/internal/manifest"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show a plugin's validated metadata",
	Long:  `Show the validated manifest metadata (id, version, publisher, entry artifact) for the plugin at the given path.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	root, err := packageRoot(args)
	if err != nil {
		return err
	}

	m, err := manifest.Load(root)
	if err != nil {
		return err
	}

	if showJSON {
		info := map[string]any{
			"id":        m.ID,
			"name":      m.Name,
			"version":   m.Version,
			"publisher": m.NamespaceOrPublisher,
			"main":      m.Main,
			"homepage":  m.Homepage,
			"license":   m.License,
			"keywords":  m.Keywords,
		}
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", m.ID)
	fmt.Fprintf(w, "Name:\t%s\n", m.Name)
	fmt.Fprintf(w, "Version:\t%s\n", m.Version)
	fmt.Fprintf(w, "Publisher:\t%s\n", m.NamespaceOrPublisher)
	fmt.Fprintf(w, "Main:\t%s\n", m.Main)
	if m.Homepage != "" {
		fmt.Fprintf(w, "Homepage:\t%s\n", m.Homepage)
	}
	if m.License != "" {
		fmt.Fprintf(w, "License:\t%s\n", m.License)
	}
	if len(m.Keywords) > 0 {
		fmt.Fprintf(w, "Keywords:\t%s\n", strings.Join(m.Keywords, ", "))
	}
	return w.Flush()
}
