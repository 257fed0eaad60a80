package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/carecompanion/companion-cli/internal/bodymap"
)

// NewBodymapCommand creates the bodymap command.
func NewBodymapCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		painLevel   int
		description string
	)

	cmd := &cobra.Command{
		Use:   "bodymap <body-part>",
		Short: "Request AI symptom analysis for a body region",
		Long: fmt.Sprintf(`Request AI symptom analysis for a body region.

Body parts: %s.`, strings.Join(bodymap.BodyParts(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			if _, err := a.requireSession(time.Now()); err != nil {
				return err
			}

			input := bodymap.AnalyzeInput{
				BodyPart:    args[0],
				PainLevel:   painLevel,
				Description: description,
			}
			if err := input.Validate(); err != nil {
				return err
			}

			analysis, err := a.client.AnalyzeSymptom(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), RenderAnalysis(analysis))
			return nil
		},
	}

	cmd.Flags().IntVar(&painLevel, "pain", 0, "pain level 1-5 (required)")
	cmd.Flags().StringVar(&description, "description", "", "optional symptom description")
	_ = cmd.MarkFlagRequired("pain")

	return cmd
}
