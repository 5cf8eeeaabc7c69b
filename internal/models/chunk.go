// ABOUTME: Chunk and EmbeddedChunk are the units of embedding and retrieval
// ABOUTME: Chunks carry word-level position markers back into their document
package models

import "time"

// Chunk is a bounded contiguous slice of a document's text.
// StartWord and EndWord index into the document's whitespace-normalized
// word stream; the overlap prefix carried from the previous chunk is not
// counted in the span.
type Chunk struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"`
	Text       string `json:"text"`
	StartWord  int    `json:"start_word"`
	EndWord    int    `json:"end_word"`
}

// EmbeddedChunk is a chunk plus its embedding vector. The vector dimension
// is fixed by the embedding service; all chunks of one document share it.
type EmbeddedChunk struct {
	Chunk
	Vector     []float64 `json:"vector"`
	EmbeddedAt time.Time `json:"embedded_at"`
}

// EmbeddingProgress is reported after each chunk of a document is embedded
type EmbeddingProgress struct {
	Current    int `json:"current"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
