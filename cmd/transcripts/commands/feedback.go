// ABOUTME: CLI command to record a preference vote on an A/B summary pair
// ABOUTME: Voting again on the same pair replaces the previous vote
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/geigermatic/transcript-gen/internal/app"
)

var feedbackReason string

// NewFeedbackCmd creates the feedback command
func NewFeedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback <pair-id> <A|B>",
		Short: "Vote on an A/B summary pair",
		Long: `Record which summary variant you preferred.

Voting again on the same pair replaces your earlier vote.

Examples:
  transcripts feedback pair_4c1d A
  transcripts feedback pair_4c1d B --reason "less stiff"`,
		Args: cobra.ExactArgs(2),
		RunE: runFeedback,
	}

	cmd.Flags().StringVar(&feedbackReason, "reason", "", "Optional note on why this variant won")

	return cmd
}

func runFeedback(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	a, err := app.New(verbose)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	defer func() { _ = a.Close() }()

	if err := a.AB.RecordFeedback(args[0], args[1], feedbackReason); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Recorded vote for variant %s on %s\n", args[1], args[0])
	}
	return nil
}
