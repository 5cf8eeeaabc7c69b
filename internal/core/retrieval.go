// ABOUTME: Retrieval context builder: ranked, threshold-filtered chunk selection
// ABOUTME: Decides whether retrieval found enough signal to ground a response
package core

import (
	"fmt"

	"github.com/geigermatic/transcript-gen/internal/logging"
	"github.com/geigermatic/transcript-gen/internal/models"
)

// Retrieval defaults
const (
	DefaultMaxRetrievalResults = 5
	DefaultSimilarityThreshold = 0.3
)

// Searcher is the hybrid search surface the retriever builds on
type Searcher interface {
	Search(query string, corpus []models.EmbeddedChunk, k int) ([]models.SearchResult, error)
}

// Retriever runs hybrid search and applies the similarity threshold,
// producing one RetrievalContext per chat turn.
type Retriever struct {
	searcher   Searcher
	maxResults int
	threshold  float64
	logger     logging.Logger
}

// NewRetriever creates a retriever. Zero values fall back to the defaults
// (top 5, threshold 0.3).
func NewRetriever(searcher Searcher, maxResults int, threshold float64, logger logging.Logger) *Retriever {
	if maxResults <= 0 {
		maxResults = DefaultMaxRetrievalResults
	}
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Retriever{
		searcher:   searcher,
		maxResults: maxResults,
		threshold:  threshold,
		logger:     logger,
	}
}

// Retrieve searches the corpus and filters to results that clear the
// similarity threshold. TopScores keeps the unfiltered scores for
// diagnostics. An empty corpus returns immediately with no relevant
// content and no error.
func (r *Retriever) Retrieve(query string, corpus []models.EmbeddedChunk) (models.RetrievalContext, error) {
	rc := models.RetrievalContext{
		Query:           query,
		RetrievedChunks: []models.SearchResult{},
		TopScores:       []float64{},
	}

	if len(corpus) == 0 {
		return rc, nil
	}

	results, err := r.searcher.Search(query, corpus, r.maxResults)
	if err != nil {
		return rc, fmt.Errorf("hybrid search: %w", err)
	}

	for _, result := range results {
		rc.TopScores = append(rc.TopScores, result.Similarity)
		if result.Similarity >= r.threshold {
			rc.RetrievedChunks = append(rc.RetrievedChunks, result)
		}
	}
	rc.HasRelevantContent = len(rc.RetrievedChunks) > 0

	r.logger.Info("retrieval complete",
		"query_length", len(query),
		"candidates", len(results),
		"retained", len(rc.RetrievedChunks))

	return rc, nil
}
