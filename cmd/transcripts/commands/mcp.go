// ABOUTME: MCP command starts the Model Context Protocol server
// ABOUTME: Exposes the transcript tools to LLM agents over stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/geigermatic/transcript-gen/internal/app"
	"github.com/geigermatic/transcript-gen/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the transcript tools as an MCP (Model Context Protocol) server over
stdio, so agents like Claude can ingest, search, and summarize
transcripts directly.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by the agent host)
  transcripts mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "transcripts": {
  #       "command": "transcripts",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	a, err := app.New(verbose)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}

	server := mcpserver.NewMCPServer(
		"Transcript RAG System",
		versionInfo.Version,
	)
	mcp.RegisterTools(server, a)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("Transcripts MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, closing storage...")
		}
		if err := a.Close(); err != nil {
			log.Printf("Warning: error closing storage: %v", err)
		}
	case err := <-serverErr:
		_ = a.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
