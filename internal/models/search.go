// ABOUTME: Search and retrieval result structures for hybrid search
// ABOUTME: Ephemeral values produced per query, never persisted
package models

// SearchResult pairs a chunk with its hybrid similarity score in [0,1]
type SearchResult struct {
	Chunk      EmbeddedChunk `json:"chunk"`
	Similarity float64       `json:"similarity"`
}

// RetrievalContext is the threshold-filtered retrieval outcome for one chat turn.
// TopScores keeps the unfiltered top scores for diagnostics and is sorted
// descending. HasRelevantContent is true iff at least one result cleared
// the similarity threshold.
type RetrievalContext struct {
	Query              string         `json:"query"`
	RetrievedChunks    []SearchResult `json:"retrieved_chunks"`
	TopScores          []float64      `json:"top_scores"`
	HasRelevantContent bool           `json:"has_relevant_content"`
}
