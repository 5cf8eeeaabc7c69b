// ABOUTME: MCP tool handler implementations for the transcripts server
// ABOUTME: Each handler maps one tool call onto the wired application engines
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/geigermatic/transcript-gen/internal/app"
	"github.com/geigermatic/transcript-gen/internal/models"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	app *app.App
}

// IngestTranscript handles the ingest_transcript tool
func (h *Handlers) IngestTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title argument is required and must be a string"), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	doc, embedded, err := h.app.Ingest(title, text, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ingestion failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"document_id": doc.ID,
		"title":       doc.Title,
		"word_count":  doc.Metadata.WordCount,
		"chunks":      len(embedded),
	}
	return marshalResult(response)
}

// ListTranscripts handles the list_transcripts tool
func (h *Handlers) ListTranscripts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := h.app.Documents.ListDocuments()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list transcripts: %v", err)), nil
	}

	entries := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, map[string]interface{}{
			"document_id": doc.ID,
			"title":       doc.Title,
			"word_count":  doc.Metadata.WordCount,
			"added_at":    doc.AddedAt,
		})
	}
	return marshalResult(map[string]interface{}{"transcripts": entries})
}

// SearchTranscripts handles the search_transcripts tool
func (h *Handlers) SearchTranscripts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}
	maxResults := request.GetInt("max_results", 5)

	results, err := h.app.Embeddings.Search(query, h.app.Embeddings.Corpus(), maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	titles, err := h.app.DocumentTitles()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load titles: %v", err)), nil
	}

	matches := make([]map[string]interface{}, 0, len(results))
	for _, result := range results {
		matches = append(matches, map[string]interface{}{
			"chunk_id":    result.Chunk.ID,
			"document_id": result.Chunk.DocumentID,
			"title":       titles[result.Chunk.DocumentID],
			"text":        result.Chunk.Text,
			"similarity":  result.Similarity,
		})
	}
	return marshalResult(map[string]interface{}{"results": matches})
}

// AskTranscripts handles the ask_transcripts tool
func (h *Handlers) AskTranscripts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}
	documentIDs := request.GetStringSlice("document_ids", nil)

	titles, err := h.app.DocumentTitles()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load titles: %v", err)), nil
	}

	chatCtx := models.ChatContext{
		DocumentIDs:    documentIDs,
		DocumentTitles: titles,
	}
	resp := h.app.Chat.Respond(question, chatCtx, models.DefaultStyleGuide())

	sources := make([]map[string]interface{}, 0, len(resp.Sources))
	for _, source := range resp.Sources {
		sources = append(sources, map[string]interface{}{
			"document_id": source.Chunk.DocumentID,
			"title":       titles[source.Chunk.DocumentID],
			"similarity":  source.Similarity,
		})
	}

	response := map[string]interface{}{
		"answer":        resp.Content,
		"outcome":       string(resp.Outcome),
		"has_grounding": resp.HasGrounding,
		"sources":       sources,
	}
	return marshalResult(response)
}

// SummarizeAB handles the summarize_ab tool
func (h *Handlers) SummarizeAB(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError("document_id argument is required and must be a string"), nil
	}

	doc, err := h.app.Documents.GetDocument(documentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load document: %v", err)), nil
	}
	if doc == nil {
		return mcp.NewToolResultError(fmt.Sprintf("document %s not found", documentID)), nil
	}

	pair, err := h.app.AB.GeneratePair(*doc, models.DefaultStyleGuide(), nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pair generation failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"pair_id":        pair.ID,
		"document_id":    pair.DocumentID,
		"document_title": pair.DocumentTitle,
		"variant_a":      map[string]interface{}{"name": pair.VariantDetails.VariantA.Name, "summary": pair.SummaryA},
		"variant_b":      map[string]interface{}{"name": pair.VariantDetails.VariantB.Name, "summary": pair.SummaryB},
	}
	return marshalResult(response)
}

// RecordFeedback handles the record_feedback tool
func (h *Handlers) RecordFeedback(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pairID, err := request.RequireString("pair_id")
	if err != nil {
		return mcp.NewToolResultError("pair_id argument is required and must be a string"), nil
	}
	winner, err := request.RequireString("winner")
	if err != nil {
		return mcp.NewToolResultError("winner argument is required and must be a string"), nil
	}
	reason := request.GetString("reason", "")

	if err := h.app.AB.RecordFeedback(pairID, winner, reason); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recording feedback failed: %v", err)), nil
	}

	return marshalResult(map[string]interface{}{
		"pair_id": pairID,
		"winner":  winner,
	})
}

// ABStats handles the ab_stats tool
func (h *Handlers) ABStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.app.AB.Stats()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("computing stats failed: %v", err)), nil
	}
	return marshalResult(stats)
}

func marshalResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
