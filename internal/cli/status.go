package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/carecompanion/companion-cli/internal/challenge"
	"github.com/carecompanion/companion-cli/internal/insights"
)

// NewStatusCommand creates the status command: a one-shot dashboard combining
// challenges and insights. The two fetches are independent, so they run
// concurrently.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your challenges and insights in one view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			session, err := a.requireSession(time.Now())
			if err != nil {
				return err
			}

			var (
				list     []challenge.Challenge
				patterns insights.Patterns
			)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				list, err = a.store.LoadActive(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				patterns, err = a.client.InsightPatterns(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "CareCompanion · %s\n\n", session.Username)
			fmt.Fprint(out, RenderChallenges(list, time.Now()))
			fmt.Fprint(out, "\n")
			fmt.Fprint(out, RenderInsights(patterns))
			return nil
		},
	}
}
