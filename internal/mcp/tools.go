// ABOUTME: MCP tool definitions and registration for the transcripts server
// ABOUTME: Defines JSON schemas for the ingest, search, ask, and A/B tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/geigermatic/transcript-gen/internal/app"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, a *app.App) *Handlers {
	handlers := &Handlers{app: a}

	// 1. ingest_transcript - chunk, embed, and index a transcript
	server.AddTool(mcp.Tool{
		Name:        "ingest_transcript",
		Description: "Add a transcript to the index. The text is chunked, embedded against the local model server, and stored for retrieval.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Human-readable title for the transcript",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Full transcript text to index",
				},
			},
			Required: []string{"title", "text"},
		},
	}, handlers.IngestTranscript)

	// 2. list_transcripts - list indexed documents
	server.AddTool(mcp.Tool{
		Name:        "list_transcripts",
		Description: "List every indexed transcript with its ID, title, and word count.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListTranscripts)

	// 3. search_transcripts - hybrid search without generation
	server.AddTool(mcp.Tool{
		Name:        "search_transcripts",
		Description: "Search indexed transcripts by hybrid vector and keyword similarity. Returns matching chunks with scores, no generation.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: 5)",
					"default":     5,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchTranscripts)

	// 4. ask_transcripts - grounded question answering
	server.AddTool(mcp.Tool{
		Name:        "ask_transcripts",
		Description: "Ask a question answered only from the indexed transcripts, with source citations. Says so when nothing relevant is indexed.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer from the transcripts",
				},
				"document_ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Optional document IDs to limit retrieval to",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskTranscripts)

	// 5. summarize_ab - generate an A/B summary pair
	server.AddTool(mcp.Tool{
		Name:        "summarize_ab",
		Description: "Generate two differently styled summaries (professional vs conversational) of one transcript for A/B comparison.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the transcript to summarize",
				},
			},
			Required: []string{"document_id"},
		},
	}, handlers.SummarizeAB)

	// 6. record_feedback - vote on an A/B pair
	server.AddTool(mcp.Tool{
		Name:        "record_feedback",
		Description: "Record which summary variant the user preferred. Voting again on the same pair replaces the earlier vote.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"pair_id": map[string]interface{}{
					"type":        "string",
					"description": "A/B pair ID",
				},
				"winner": map[string]interface{}{
					"type":        "string",
					"description": "Winning variant: A or B",
				},
				"reason": map[string]interface{}{
					"type":        "string",
					"description": "Optional note on why this variant won",
				},
			},
			Required: []string{"pair_id", "winner"},
		},
	}, handlers.RecordFeedback)

	// 7. ab_stats - aggregate feedback statistics
	server.AddTool(mcp.Tool{
		Name:        "ab_stats",
		Description: "Get aggregate A/B testing statistics: totals, wins per variant, and completion rate.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ABStats)

	return handlers
}
