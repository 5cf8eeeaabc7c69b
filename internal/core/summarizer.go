// ABOUTME: Two-phase styled summarization: fact extraction then styled synthesis
// ABOUTME: Facts keep the summary grounded in the document instead of free generation
package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/geigermatic/transcript-gen/internal/logging"
	"github.com/geigermatic/transcript-gen/internal/models"
)

// maxSourceChars bounds how much document text goes into one extraction
// prompt (4 chars per token heuristic, so roughly 4k tokens)
const maxSourceChars = 16000

// Summarizer produces one styled summary per call. The A/B engine runs it
// once per variant.
type Summarizer struct {
	llm    Completer
	logger logging.Logger
}

// NewSummarizer creates a summarizer over the completion primitive
func NewSummarizer(llm Completer, logger logging.Logger) *Summarizer {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Summarizer{llm: llm, logger: logger}
}

// Summarize extracts key facts from the document, then synthesizes a
// summary of those facts under the given style profile. Both phases are
// single completion calls; either failure propagates to the caller.
func (s *Summarizer) Summarize(doc models.Document, style models.StyleGuide) (string, error) {
	facts, err := s.extractFacts(doc)
	if err != nil {
		return "", fmt.Errorf("extracting facts from document %s: %w", doc.ID, err)
	}

	prompt := buildSummaryPrompt(doc, facts, style)
	summary, err := s.llm.Complete(prompt)
	if err != nil {
		return "", fmt.Errorf("synthesizing summary for document %s: %w", doc.ID, err)
	}

	s.logger.Info("summary generated", "document_id", doc.ID, "facts", len(facts), "length", len(summary))
	return strings.TrimSpace(summary), nil
}

// extractFacts asks the model for a JSON array of key points. Responses
// that aren't valid JSON are salvaged line by line rather than failed.
func (s *Summarizer) extractFacts(doc models.Document) ([]string, error) {
	text := doc.Text
	if len(text) > maxSourceChars {
		text = text[:maxSourceChars]
	}

	prompt := fmt.Sprintf(`Extract the key facts from this transcript. Cover the main points, decisions, techniques, and takeaways that were explicitly stated. Do not infer or embellish.

Return ONLY a JSON array of strings, one fact per entry.
Example: ["The team shipped the beta on May 3rd", "Attendance doubled year over year"]

TRANSCRIPT:
%s`, text)

	raw, err := s.llm.Complete(prompt)
	if err != nil {
		return nil, err
	}

	var facts []string
	if err := json.Unmarshal([]byte(extractJSONArray(raw)), &facts); err != nil {
		s.logger.Warn("fact extraction returned non-JSON, salvaging lines", "document_id", doc.ID)
		facts = salvageLines(raw)
	}

	if len(facts) == 0 {
		return nil, fmt.Errorf("no facts extracted")
	}
	return facts, nil
}

// buildSummaryPrompt renders the styled synthesis prompt from the
// extracted facts and the effective style profile
func buildSummaryPrompt(doc models.Document, facts []string, style models.StyleGuide) string {
	var factList strings.Builder
	for _, fact := range facts {
		factList.WriteString("- ")
		factList.WriteString(fact)
		factList.WriteString("\n")
	}

	return renderTemplate(`Write a summary of "{{title}}" using ONLY the facts below. Every claim in the summary must trace back to one of these facts.

{{style}}
FACTS:
{{facts}}
SUMMARY:`, map[string]string{
		"title": doc.Title,
		"style": renderStyleGuide(style),
		"facts": factList.String(),
	})
}

// extractJSONArray pulls the outermost [...] span out of a completion that
// may wrap it in prose or code fences
func extractJSONArray(raw string) string {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return raw[start : end+1]
}

// salvageLines treats a non-JSON response as one fact per line, stripping
// common bullet markers
func salvageLines(raw string) []string {
	var facts []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		facts = append(facts, line)
	}
	return facts
}
