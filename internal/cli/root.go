package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vizkit-dev/vizkit/internal/branding"
	"github.com/vizkit-dev/vizkit/internal/config"
	"github.com/vizkit-dev/vizkit/internal/hook"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	rootVerbose bool
)

// hookRunner is swapped for a test double in command tests.
var hookRunner hook.Runner = hook.NPMRunner{}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` packages compiled Vizor plugin bundles into distributable
archives and installs them into the host application's extensions directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if rootVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
