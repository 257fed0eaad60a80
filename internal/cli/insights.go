package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewInsightsCommand creates the insights command.
func NewInsightsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show server-computed patterns and trends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			if _, err := a.requireSession(time.Now()); err != nil {
				return err
			}

			patterns, err := a.client.InsightPatterns(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), RenderInsights(patterns))
			return nil
		},
	}
}
