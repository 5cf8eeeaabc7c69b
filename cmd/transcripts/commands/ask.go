// ABOUTME: CLI command to ask a grounded question over indexed transcripts
// ABOUTME: Prints the answer with source citations and similarity scores
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/geigermatic/transcript-gen/internal/app"
	"github.com/geigermatic/transcript-gen/internal/models"
)

var (
	askDocs    []string
	askSources bool
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question grounded in your transcripts",
		Long: `Ask a question and get an answer grounded in the indexed transcripts.

The answer only draws on retrieved transcript excerpts. If nothing
relevant is indexed, the command says so instead of guessing. Format
requests in the question ("in 3 sentences", "as bullet points") are
honored.

Examples:
  transcripts ask "What did Alice say about the budget?"
  transcripts ask --doc doc_8f2e1a "Summarize this in 3 sentences"
  transcripts ask --sources "Who owns the migration?"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringSliceVar(&askDocs, "doc", nil, "Limit retrieval to these document IDs")
	cmd.Flags().BoolVar(&askSources, "sources", false, "Show the retrieved source excerpts")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	a, err := app.New(verbose)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	defer func() { _ = a.Close() }()

	titles, err := a.DocumentTitles()
	if err != nil {
		return fmt.Errorf("loading document titles: %w", err)
	}

	chatCtx := models.ChatContext{
		DocumentIDs:    askDocs,
		DocumentTitles: titles,
	}
	resp := a.Chat.Respond(args[0], chatCtx, models.DefaultStyleGuide())

	if jsonOutput() {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(resp)
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Content)

	if askSources && len(resp.Sources) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\nSources:")
		for _, source := range resp.Sources {
			title := titles[source.Chunk.DocumentID]
			if title == "" {
				title = source.Chunk.DocumentID
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  [%.0f%%] %s: %s\n",
				source.Similarity*100, title, truncate(source.Chunk.Text, 80))
		}
	}

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "\n(%s, %d sources, top similarity %.2f, %s)\n",
			resp.Outcome, resp.Metrics.RetrievalCount, resp.Metrics.TopSimilarity, resp.Metrics.ProcessingTime)
	}
	return nil
}
