package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/carecompanion/companion-cli/internal/timeline"
)

// NewTimelineCommand creates the timeline command group.
func NewTimelineCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Log and browse your health timeline",
	}

	cmd.AddCommand(
		newTimelineAddCommand(rootOpts),
		newTimelineListCommand(rootOpts),
	)

	return cmd
}

func newTimelineAddCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		entryType   string
		description string
		severity    int
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Log a timeline entry",
		Long: fmt.Sprintf(`Log a timeline entry.

Entry types: %s.
Severity (1-5) applies to symptom entries only.`, strings.Join(entryTypeNames(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			if _, err := a.requireSession(time.Now()); err != nil {
				return err
			}

			input := timeline.EntryInput{
				EntryType:   timeline.EntryType(entryType),
				Title:       args[0],
				Description: description,
				Severity:    severity,
				Tags:        tags,
			}
			if err := input.Validate(); err != nil {
				return err
			}

			entry, err := a.client.CreateEntry(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s entry %q\n", entry.EntryType, entry.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&entryType, "type", string(timeline.EntryNote), "entry type")
	cmd.Flags().StringVar(&description, "description", "", "optional details")
	cmd.Flags().IntVar(&severity, "severity", 0, "severity 1-5 (symptom entries)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")

	return cmd
}

func entryTypeNames() []string {
	types := timeline.EntryTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

func newTimelineListCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent timeline entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			if _, err := a.requireSession(time.Now()); err != nil {
				return err
			}

			entries, err := a.client.Entries(cmd.Context(), limit)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), RenderEntries(entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to fetch")

	return cmd
}
