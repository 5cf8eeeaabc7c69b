// ABOUTME: Standalone MCP server entry point with stdio transport
// ABOUTME: Wires the application and registers all transcript tools
package main

import (
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/geigermatic/transcript-gen/internal/app"
	"github.com/geigermatic/transcript-gen/internal/mcp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	a, err := app.New(false)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer func() { _ = a.Close() }()

	server := mcpserver.NewMCPServer(
		"Transcript RAG System",
		"0.1.0",
	)
	mcp.RegisterTools(server, a)

	log.Println("Transcripts MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
