// ABOUTME: CLI command to remove a transcript and its embeddings
// ABOUTME: Deletes from both the database and the in-memory index
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/geigermatic/transcript-gen/internal/app"
)

// NewRemoveCmd creates the remove command
func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <document-id>",
		Short: "Remove a transcript from the index",
		Long: `Remove a transcript, its chunks, and its embeddings.

Example:
  transcripts remove doc_8f2e1a...`,
		Args: cobra.ExactArgs(1),
		RunE: runRemove,
	}

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	a, err := app.New(verbose)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	defer func() { _ = a.Close() }()

	documentID := args[0]
	deleted, err := a.Documents.DeleteDocument(documentID)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	if !deleted {
		return fmt.Errorf("document %s not found", documentID)
	}
	a.Embeddings.RemoveDocument(documentID)

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %s\n", documentID)
	}
	return nil
}
