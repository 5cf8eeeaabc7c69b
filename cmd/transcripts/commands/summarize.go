// ABOUTME: CLI command to generate an A/B summary pair for a document
// ABOUTME: Runs both style variants and prints them side by side for a vote
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/geigermatic/transcript-gen/internal/app"
	"github.com/geigermatic/transcript-gen/internal/models"
)

// NewSummarizeCmd creates the summarize command
func NewSummarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize <document-id>",
		Short: "Generate an A/B summary pair for a transcript",
		Long: `Generate two differently styled summaries of one transcript.

Variant A is professional and structured; variant B is conversational
and engaging. Vote on the one you prefer with 'transcripts feedback'.

Examples:
  transcripts summarize doc_8f2e1a
  transcripts summarize doc_8f2e1a --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runSummarize,
	}

	return cmd
}

func runSummarize(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	a, err := app.New(verbose)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	defer func() { _ = a.Close() }()

	doc, err := a.Documents.GetDocument(args[0])
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("document %s not found", args[0])
	}

	onProgress := func(p models.PairProgress) {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "[%d/%d] %s...\n", p.Current, p.Total, p.Stage)
		}
	}

	pair, err := a.AB.GeneratePair(*doc, models.DefaultStyleGuide(), onProgress)
	if err != nil {
		return err
	}

	if jsonOutput() {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(pair)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nPair %s for %q\n", pair.ID, pair.DocumentTitle)
	fmt.Fprintf(out, "\n=== A: %s ===\n%s\n", pair.VariantDetails.VariantA.Name, pair.SummaryA)
	fmt.Fprintf(out, "\n=== B: %s ===\n%s\n", pair.VariantDetails.VariantB.Name, pair.SummaryB)
	fmt.Fprintf(out, "\nVote with: transcripts feedback %s A|B\n", pair.ID)
	return nil
}
