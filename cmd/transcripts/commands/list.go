// ABOUTME: CLI command to list indexed transcripts
// ABOUTME: Tabular by default, JSON with --format json
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/geigermatic/transcript-gen/internal/app"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed transcripts",
		Long: `List every indexed transcript with its word count and age.

Examples:
  transcripts list
  transcripts list --format json`,
		RunE: runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	a, err := app.New(verbose)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	defer func() { _ = a.Close() }()

	docs, err := a.Documents.ListDocuments()
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if jsonOutput() {
		type entry struct {
			ID        string `json:"id"`
			Title     string `json:"title"`
			WordCount int    `json:"word_count"`
			AddedAt   string `json:"added_at"`
		}
		entries := make([]entry, 0, len(docs))
		for _, doc := range docs {
			entries = append(entries, entry{
				ID:        doc.ID,
				Title:     doc.Title,
				WordCount: doc.Metadata.WordCount,
				AddedAt:   doc.AddedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(entries)
	}

	if len(docs) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No transcripts indexed yet. Use 'transcripts add' to get started.")
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tWORDS\tADDED")
	for _, doc := range docs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			doc.ID, truncate(doc.Title, 40), doc.Metadata.WordCount, formatTime(doc.AddedAt))
	}
	return w.Flush()
}
