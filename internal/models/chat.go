// ABOUTME: Chat message, context, and response structures for grounded chat
// ABOUTME: ChatContext is caller-owned input; ChatResponse models all terminal outcomes
package models

import "time"

// Role identifies the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in an append-only conversation history
type ChatMessage struct {
	ID        string         `json:"id"`
	Role      Role           `json:"role"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Sources   []SearchResult `json:"sources,omitempty"`
}

// ChatContext is the caller-assembled state for one chat turn. The engine
// only reads it; the caller rebuilds it fresh per turn.
type ChatContext struct {
	Messages         []ChatMessage     `json:"messages"`
	DocumentIDs      []string          `json:"document_ids"`
	DocumentTitles   map[string]string `json:"document_titles,omitempty"`
	ActiveDocumentID string            `json:"active_document_id,omitempty"`
	DocumentSummary  string            `json:"document_summary,omitempty"`
	MaxContextLength int               `json:"max_context_length"`
}

// ChatOutcome is the terminal state of one request/response exchange
type ChatOutcome string

const (
	OutcomeGrounded    ChatOutcome = "grounded"
	OutcomeNoDocuments ChatOutcome = "no_documents"
	OutcomeNoGrounding ChatOutcome = "no_grounding"
	OutcomeError       ChatOutcome = "error"
)

// ResponseMetrics captures per-response diagnostics
type ResponseMetrics struct {
	RetrievalCount int           `json:"retrieval_count"`
	TopSimilarity  float64       `json:"top_similarity"`
	ResponseLength int           `json:"response_length"`
	ProcessingTime time.Duration `json:"processing_time"`
}

// ChatResponse is the result of one chat turn. Every outcome, including
// completion failures, is modeled here rather than as a returned error so
// the conversation surface keeps functioning.
type ChatResponse struct {
	ID           string          `json:"id"`
	Content      string          `json:"content"`
	Timestamp    time.Time       `json:"timestamp"`
	Sources      []SearchResult  `json:"sources,omitempty"`
	HasGrounding bool            `json:"has_grounding"`
	Outcome      ChatOutcome     `json:"outcome"`
	Metrics      ResponseMetrics `json:"metrics"`
}
