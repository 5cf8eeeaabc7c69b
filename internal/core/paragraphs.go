// ABOUTME: Post-processes raw completions into readable paragraphs
// ABOUTME: Groups sentences and breaks early at natural discourse boundaries
package core

import "strings"

// maxSentencesPerParagraph bounds paragraph length during reflow
const maxSentencesPerParagraph = 3

// breakOpeners start a new paragraph when a sentence opens with one of them
var breakOpeners = []string{
	"however",
	"meanwhile",
	"next",
	"finally",
	"on the other hand",
	"in contrast",
	"for example",
	"for instance",
	"e.g.",
}

// FormatParagraphs reflows a raw completion into paragraphs of up to three
// sentences, starting a new paragraph early after questions and before
// contrast, sequence, or exemplifying openers. Short responses and text
// that already carries its own structure (paragraph breaks, list markers)
// are returned unmodified.
func FormatParagraphs(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if hasOwnStructure(trimmed) {
		return trimmed
	}

	sentences := splitSentences(trimmed)
	if len(sentences) <= maxSentencesPerParagraph {
		return trimmed
	}

	var paragraphs []string
	var current []string

	for _, sentence := range sentences {
		if len(current) > 0 && (len(current) >= maxSentencesPerParagraph || naturalBreak(current[len(current)-1], sentence)) {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
		current = append(current, sentence)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}

	return strings.Join(paragraphs, "\n\n")
}

// naturalBreak reports whether a paragraph boundary belongs between two
// adjacent sentences
func naturalBreak(prev, next string) bool {
	if strings.HasSuffix(prev, "?") {
		return true
	}
	lower := strings.ToLower(next)
	for _, opener := range breakOpeners {
		if strings.HasPrefix(lower, opener) {
			return true
		}
	}
	return false
}

// hasOwnStructure detects completions that already chose a layout
func hasOwnStructure(text string) bool {
	if strings.Contains(text, "\n\n") {
		return true
	}
	for _, marker := range []string{"\n- ", "\n* ", "\n1. ", "\n• "} {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return strings.HasPrefix(text, "- ") || strings.HasPrefix(text, "* ")
}
