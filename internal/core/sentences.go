// ABOUTME: Shared paragraph and sentence splitting used by the chunker and formatter
// ABOUTME: Terminator-aware splitting that keeps punctuation attached to sentences
package core

import (
	"strings"
	"unicode"
)

// splitParagraphs splits text on blank lines, tolerating Windows line endings
func splitParagraphs(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")

	var paragraphs []string
	for _, para := range strings.Split(normalized, "\n\n") {
		para = strings.TrimSpace(para)
		if para != "" {
			paragraphs = append(paragraphs, para)
		}
	}
	return paragraphs
}

// splitSentences splits text into sentences, keeping terminators attached.
// A terminator only ends a sentence when followed by whitespace or end of
// input, so decimals and inline abbreviations mostly survive intact.
func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		b.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Keep a closing quote with its sentence
		if i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\'') {
			i++
			b.WriteRune(runes[i])
		}
		if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(b.String()); s != "" {
				sentences = append(sentences, s)
			}
			b.Reset()
		}
	}

	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
