// ABOUTME: Document represents an uploaded transcript and its derived metadata
// ABOUTME: Documents are immutable once created and referenced by ID everywhere else
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DocumentMetadata holds derived information about a document
type DocumentMetadata struct {
	WordCount int `json:"word_count"`
}

// Document is an uploaded transcript. The text is never mutated after creation.
type Document struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Text     string           `json:"text"`
	Metadata DocumentMetadata `json:"metadata"`
	AddedAt  time.Time        `json:"added_at"`
}

// NewDocument creates a document with a generated ID and computed word count
func NewDocument(title, text string) Document {
	return Document{
		ID:    "doc_" + uuid.New().String(),
		Title: title,
		Text:  text,
		Metadata: DocumentMetadata{
			WordCount: CountWords(text),
		},
		AddedAt: time.Now(),
	}
}

// CountWords counts whitespace-separated words in text
func CountWords(text string) int {
	return len(strings.Fields(text))
}
