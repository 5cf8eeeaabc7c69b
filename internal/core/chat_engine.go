// ABOUTME: Grounded response generator: retrieval-backed chat over transcripts
// ABOUTME: Models every outcome, including completion failure, as a terminal ChatResponse
package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/geigermatic/transcript-gen/internal/logging"
	"github.com/geigermatic/transcript-gen/internal/models"
)

// DefaultMaxContextMessages bounds the conversation history included in
// the prompt
const DefaultMaxContextMessages = 10

// Fixed messages for the non-grounded terminal states. These are expected
// steady states of a partially populated system, not errors.
const (
	noDocumentsMessage = "I don't have any indexed documents to draw from yet. " +
		"Add a transcript first, then ask me about it."
	noGroundingMessage = "I couldn't find anything in your documents that relates to this question. " +
		"Try rephrasing, or ask about topics the transcripts actually cover."
)

// Completer is the completion primitive, the engine's sole suspension point
type Completer interface {
	Complete(prompt string) (string, error)
}

// CorpusProvider supplies the embedded chunks to search over
type CorpusProvider interface {
	Corpus(documentIDs ...string) []models.EmbeddedChunk
	HasEmbeddings() bool
}

// ChatEngine turns a user query into a grounded, styled, post-processed
// response with source citations.
type ChatEngine struct {
	llm                Completer
	retriever          *Retriever
	corpus             CorpusProvider
	maxContextMessages int
	logger             logging.Logger
}

// NewChatEngine wires the engine. maxContextMessages <= 0 falls back to 10.
func NewChatEngine(llm Completer, retriever *Retriever, corpus CorpusProvider, maxContextMessages int, logger logging.Logger) *ChatEngine {
	if maxContextMessages <= 0 {
		maxContextMessages = DefaultMaxContextMessages
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &ChatEngine{
		llm:                llm,
		retriever:          retriever,
		corpus:             corpus,
		maxContextMessages: maxContextMessages,
		logger:             logger,
	}
}

// Respond runs one request/response exchange. The four terminal states:
// no documents indexed, insufficient grounding, a grounded answer, or an
// error-flavored response when the completion call fails. No retries here;
// callers decide whether to retry.
func (e *ChatEngine) Respond(query string, chatCtx models.ChatContext, style models.StyleGuide) models.ChatResponse {
	start := time.Now()

	if !e.corpus.HasEmbeddings() {
		return e.terminal(models.OutcomeNoDocuments, noDocumentsMessage, nil, nil, start)
	}

	scope := chatCtx.DocumentIDs
	if len(scope) == 0 && chatCtx.ActiveDocumentID != "" {
		scope = []string{chatCtx.ActiveDocumentID}
	}
	corpus := e.corpus.Corpus(scope...)
	rc, err := e.retriever.Retrieve(query, corpus)
	if err != nil {
		return e.errorResponse(err, start)
	}

	if !rc.HasRelevantContent {
		return e.terminal(models.OutcomeNoGrounding, noGroundingMessage, nil, rc.TopScores, start)
	}

	prompt := e.buildPrompt(query, chatCtx, style, rc)
	raw, err := e.llm.Complete(prompt)
	if err != nil {
		e.logger.Error("completion failed", "error", err)
		return e.errorResponse(err, start)
	}

	content := FormatParagraphs(raw)
	resp := models.ChatResponse{
		ID:           "msg_" + uuid.New().String(),
		Content:      content,
		Timestamp:    time.Now(),
		Sources:      rc.RetrievedChunks,
		HasGrounding: true,
		Outcome:      models.OutcomeGrounded,
		Metrics: models.ResponseMetrics{
			RetrievalCount: len(rc.RetrievedChunks),
			TopSimilarity:  topScore(rc.TopScores),
			ResponseLength: len(content),
			ProcessingTime: time.Since(start),
		},
	}

	e.logger.Info("grounded response generated",
		"sources", len(resp.Sources),
		"top_similarity", resp.Metrics.TopSimilarity,
		"length", resp.Metrics.ResponseLength)

	return resp
}

// buildPrompt assembles the completion prompt: format constraints first,
// then the grounding instruction, optional document summary, style guide,
// trailing conversation history, and the retrieved source excerpts.
func (e *ChatEngine) buildPrompt(query string, chatCtx models.ChatContext, style models.StyleGuide, rc models.RetrievalContext) string {
	var sections []string

	if block := renderConstraints(DetectConstraints(query)); block != "" {
		sections = append(sections, block)
	}

	sections = append(sections, "You are answering questions about the user's transcripts. "+
		"Ground every statement in the source excerpts below; if they don't cover something, say so instead of guessing.\n")

	if chatCtx.DocumentSummary != "" {
		sections = append(sections, "DOCUMENT SUMMARY (when the user mentions \"the summary\", they mean this text):\n"+
			chatCtx.DocumentSummary+"\n")
	}

	sections = append(sections, renderStyleGuide(style))

	if history := e.renderHistory(chatCtx.Messages); history != "" {
		sections = append(sections, history)
	}

	var sources strings.Builder
	sources.WriteString("SOURCE EXCERPTS:\n")
	for _, result := range rc.RetrievedChunks {
		sources.WriteString(renderSource(result, chatCtx.DocumentTitles[result.Chunk.DocumentID]))
		sources.WriteString("\n\n")
	}
	sections = append(sections, sources.String())

	sections = append(sections, renderTemplate("QUESTION:\n{{query}}\n\nANSWER:", map[string]string{
		"query": query,
	}))

	return strings.Join(sections, "\n")
}

// renderHistory formats the trailing conversation turns
func (e *ChatEngine) renderHistory(messages []models.ChatMessage) string {
	if len(messages) == 0 {
		return ""
	}
	if len(messages) > e.maxContextMessages {
		messages = messages[len(messages)-e.maxContextMessages:]
	}

	var sb strings.Builder
	sb.WriteString("CONVERSATION SO FAR:\n")
	for _, msg := range messages {
		switch msg.Role {
		case models.RoleUser:
			sb.WriteString("User: ")
		case models.RoleAssistant:
			sb.WriteString("Assistant: ")
		}
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (e *ChatEngine) terminal(outcome models.ChatOutcome, message string, sources []models.SearchResult, topScores []float64, start time.Time) models.ChatResponse {
	return models.ChatResponse{
		ID:           "msg_" + uuid.New().String(),
		Content:      message,
		Timestamp:    time.Now(),
		Sources:      sources,
		HasGrounding: false,
		Outcome:      outcome,
		Metrics: models.ResponseMetrics{
			TopSimilarity:  topScore(topScores),
			ResponseLength: len(message),
			ProcessingTime: time.Since(start),
		},
	}
}

func (e *ChatEngine) errorResponse(err error, start time.Time) models.ChatResponse {
	message := fmt.Sprintf("I couldn't generate a response: %v. "+
		"Check that the model server is running and try again.", err)
	resp := e.terminal(models.OutcomeError, message, nil, nil, start)
	return resp
}

func topScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	return scores[0]
}
