package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/carecompanion/companion-cli/internal/api"
	"github.com/carecompanion/companion-cli/internal/challenge"
)

// NewChallengesCommand creates the challenges command group.
func NewChallengesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "Run multi-day challenges with daily check-ins",
	}

	cmd.AddCommand(
		newChallengesListCommand(rootOpts),
		newChallengesTemplatesCommand(rootOpts),
		newChallengesStartCommand(rootOpts),
		newChallengesCheckinCommand(rootOpts),
	)

	return cmd
}

func newChallengesListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your challenges with progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			if _, err := a.requireSession(time.Now()); err != nil {
				return err
			}

			list, err := a.store.LoadActive(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), RenderChallenges(list, time.Now()))
			return nil
		},
	}
}

func newChallengesTemplatesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Show the challenge templates you can start",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), RenderTemplates(challenge.Templates()))
			return nil
		},
	}
}

func newChallengesStartCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "start <template-type>",
		Short: "Start a new challenge from a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			if _, err := a.requireSession(time.Now()); err != nil {
				return err
			}

			creator := challenge.NewCreationWorkflow(a.store)
			created, err := creator.Start(cmd.Context(), args[0])
			if err != nil && !errors.Is(err, challenge.ErrStaleList) {
				return err
			}

			tmpl, _ := challenge.LookupTemplate(created.ChallengeType)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Started %q (%d days). Check in daily with:\n  companion challenges checkin %s\n",
				tmpl.Icon, created.Title, created.DurationDays, created.ID)
			if err != nil {
				warnStaleList(cmd, a, err)
			}
			return nil
		},
	}
}

func newChallengesCheckinCommand(rootOpts *RootOptions) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "checkin <challenge-id>",
		Short: "Record today's progress for a challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			if _, err := a.requireSession(time.Now()); err != nil {
				return err
			}

			if _, err := a.store.LoadActive(cmd.Context()); err != nil {
				return err
			}

			workflow := challenge.NewCheckInWorkflow(a.store)
			if err := workflow.Select(args[0]); err != nil {
				return err
			}

			outcome, err := workflow.Submit(cmd.Context(), notes)
			if err != nil && !errors.Is(err, challenge.ErrStaleList) {
				if api.IsKind(err, api.KindNotFound) {
					// The challenge is gone server-side; refresh so the local
					// list heals itself.
					if _, reloadErr := a.store.LoadActive(cmd.Context()); reloadErr != nil {
						a.logger.Warn("reload after not-found failed", "error", reloadErr)
					}
				}
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), RenderCheckInOutcome(outcome))
			if err != nil {
				// The check-in was recorded; only the follow-up refresh failed.
				warnStaleList(cmd, a, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "optional note for today's check-in")

	return cmd
}

func warnStaleList(cmd *cobra.Command, a *app, err error) {
	fmt.Fprintln(cmd.ErrOrStderr(), "Warning: the challenge list could not be refreshed; run `companion challenges list` to see current progress.")
	a.logger.Warn("challenge list may be stale", "error", err)
}
