// ABOUTME: CLI command to show aggregate A/B testing statistics
// ABOUTME: Reports totals, wins per variant, and completion rate
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/geigermatic/transcript-gen/internal/app"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show A/B testing statistics",
		Long: `Show aggregate feedback across all generated summary pairs.

Examples:
  transcripts stats
  transcripts stats --format json`,
		RunE: runStats,
	}

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	a, err := app.New(verbose)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	defer func() { _ = a.Close() }()

	stats, err := a.AB.Stats()
	if err != nil {
		return fmt.Errorf("computing stats: %w", err)
	}

	if jsonOutput() {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(stats)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Summary pairs generated: %d\n", stats.TotalTests)
	fmt.Fprintf(out, "Pairs with feedback:     %d (%s)\n", stats.CompletedTests, formatPercent(stats.CompletionRate))
	fmt.Fprintf(out, "Variant A wins:          %d\n", stats.VariantAWins)
	fmt.Fprintf(out, "Variant B wins:          %d\n", stats.VariantBWins)
	return nil
}
