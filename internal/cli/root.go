package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds flags shared by every subcommand.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	JSONLog    bool
}

// NewRootCommand creates the companion root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "companion",
		Short: "CareCompanion health-tracking client",
		Long: `CareCompanion client: log timeline entries, run multi-day challenges
with daily check-ins and badges, request symptom analysis, and view insights.

All analysis and persistence happen on the CareCompanion backend; this tool is
the interactive client.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "",
		"config file (default is $XDG_CONFIG_HOME/companion/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.JSONLog, "log-json", false,
		"emit JSON log lines instead of text")

	cmd.AddCommand(
		NewRegisterCommand(opts),
		NewLoginCommand(opts),
		NewWhoamiCommand(opts),
		NewChallengesCommand(opts),
		NewTimelineCommand(opts),
		NewBodymapCommand(opts),
		NewInsightsCommand(opts),
		NewStatusCommand(opts),
	)

	return cmd
}
