// ABOUTME: CLI command to ingest a transcript
// ABOUTME: Reads from a file, an argument, or stdin, then chunks and embeds
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/geigermatic/transcript-gen/internal/app"
	"github.com/geigermatic/transcript-gen/internal/models"
)

var (
	addFile  string
	addTitle string
)

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a transcript to the index",
		Long: `Add a transcript from text, a file, or stdin.

The transcript is split into overlapping chunks, embedded against the
local model server, and stored for retrieval.

Examples:
  transcripts add --file standup-2026-08-25.txt
  transcripts add --title "Planning call" "We agreed to ship on Friday..."
  cat talk.txt | transcripts add --title "Conference talk"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringVar(&addFile, "file", "", "Read transcript from file")
	cmd.Flags().StringVar(&addTitle, "title", "", "Document title (defaults to the file name)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	var text string
	title := addTitle
	if addFile != "" {
		data, err := os.ReadFile(addFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(addFile), filepath.Ext(addFile))
		}
	} else if len(args) > 0 {
		text = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("no text provided")
	}
	if title == "" {
		title = "Untitled transcript"
	}

	a, err := app.New(verbose)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	defer func() { _ = a.Close() }()

	onProgress := func(p models.EmbeddingProgress) {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "\rEmbedding chunk %d/%d (%d%%)", p.Current, p.Total, p.Percentage)
		}
	}

	doc, embedded, err := a.Ingest(title, text, onProgress)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout())
	}

	if jsonOutput() {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
			"document_id": doc.ID,
			"title":       doc.Title,
			"word_count":  doc.Metadata.WordCount,
			"chunks":      len(embedded),
		})
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %q (%s): %d words in %d chunks\n",
			doc.Title, doc.ID, doc.Metadata.WordCount, len(embedded))
	}
	return nil
}
