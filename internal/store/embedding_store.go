// ABOUTME: In-memory embedding store with hybrid vector-plus-lexical search
// ABOUTME: One embedded chunk set per document, all-or-nothing on embedding failure
package store

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/geigermatic/transcript-gen/internal/logging"
	"github.com/geigermatic/transcript-gen/internal/models"
)

// Default hybrid score weights. Exact keyword matches survive embedding
// drift through the lexical term, and semantic matches are found without
// any lexical overlap through the vector term.
const (
	DefaultVectorWeight  = 0.7
	DefaultLexicalWeight = 0.3
)

// Embedder is the single external primitive this store depends on
type Embedder interface {
	Embed(text string) ([]float64, error)
}

// Options tunes the hybrid score combination
type Options struct {
	VectorWeight  float64
	LexicalWeight float64
}

// EmbeddingStore maps document IDs to their ordered embedded chunk sets.
// Each document's set is written by exactly one in-flight EmbedDocument
// call; searches read a snapshot under the read lock.
type EmbeddingStore struct {
	embedder      Embedder
	logger        logging.Logger
	vectorWeight  float64
	lexicalWeight float64

	mu         sync.RWMutex
	byDocument map[string][]models.EmbeddedChunk
	order      []string
}

// NewEmbeddingStore creates an empty store. Zero weights fall back to the
// 0.7/0.3 defaults.
func NewEmbeddingStore(embedder Embedder, logger logging.Logger, opts Options) *EmbeddingStore {
	vw, lw := opts.VectorWeight, opts.LexicalWeight
	if vw <= 0 && lw <= 0 {
		vw, lw = DefaultVectorWeight, DefaultLexicalWeight
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &EmbeddingStore{
		embedder:      embedder,
		logger:        logger,
		vectorWeight:  vw,
		lexicalWeight: lw,
		byDocument:    make(map[string][]models.EmbeddedChunk),
	}
}

// EmbedDocument embeds every chunk of one document sequentially, reporting
// progress after each call. Embedding proceeds chunk by chunk to bound load
// on a typically single-worker local model server. A failure on any chunk
// aborts the whole operation; nothing is stored for the document.
func (s *EmbeddingStore) EmbedDocument(documentID string, chunks []models.Chunk, onProgress func(models.EmbeddingProgress)) ([]models.EmbeddedChunk, error) {
	if documentID == "" {
		return nil, fmt.Errorf("document ID is required")
	}

	total := len(chunks)
	embedded := make([]models.EmbeddedChunk, 0, total)

	for i, chunk := range chunks {
		vector, err := s.embedder.Embed(chunk.Text)
		if err != nil {
			return nil, fmt.Errorf("embedding chunk %d/%d of document %s: %w", i+1, total, documentID, err)
		}
		if len(embedded) > 0 && len(vector) != len(embedded[0].Vector) {
			return nil, fmt.Errorf("embedding dimension changed mid-document: chunk %d has %d dims, expected %d",
				i+1, len(vector), len(embedded[0].Vector))
		}

		embedded = append(embedded, models.EmbeddedChunk{
			Chunk:      chunk,
			Vector:     vector,
			EmbeddedAt: time.Now(),
		})

		if onProgress != nil {
			onProgress(models.EmbeddingProgress{
				Current:    i + 1,
				Total:      total,
				Percentage: int(math.Round(float64(i+1) / float64(total) * 100)),
			})
		}
	}

	s.LoadDocument(documentID, embedded)
	s.logger.Info("embedded document", "document_id", documentID, "chunks", total)

	return embedded, nil
}

// LoadDocument installs a previously embedded chunk set, replacing any
// existing set for the document. Used when rehydrating from storage.
func (s *EmbeddingStore) LoadDocument(documentID string, chunks []models.EmbeddedChunk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byDocument[documentID]; !exists {
		s.order = append(s.order, documentID)
	}
	s.byDocument[documentID] = chunks
}

// RemoveDocument drops a document's embedded chunks
func (s *EmbeddingStore) RemoveDocument(documentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byDocument[documentID]; !exists {
		return
	}
	delete(s.byDocument, documentID)
	for i, id := range s.order {
		if id == documentID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// HasEmbeddings reports whether any document has an embedded chunk set
func (s *EmbeddingStore) HasEmbeddings() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, chunks := range s.byDocument {
		if len(chunks) > 0 {
			return true
		}
	}
	return false
}

// Corpus returns a snapshot of the embedded chunks for the given documents,
// in document insertion order. With no IDs it returns every document's
// chunks.
func (s *EmbeddingStore) Corpus(documentIDs ...string) []models.EmbeddedChunk {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := documentIDs
	if len(ids) == 0 {
		ids = s.order
	}

	var corpus []models.EmbeddedChunk
	for _, id := range ids {
		corpus = append(corpus, s.byDocument[id]...)
	}
	return corpus
}

// DocumentIDs lists documents with embedded chunk sets in insertion order
func (s *EmbeddingStore) DocumentIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// Search ranks the corpus against the query by hybrid score: a weighted
// combination of cosine similarity and lexical term overlap. Results are
// sorted by score descending, ties kept in original chunk order, and the
// top k returned regardless of score. Threshold filtering belongs to the
// retrieval layer.
func (s *EmbeddingStore) Search(query string, corpus []models.EmbeddedChunk, k int) ([]models.SearchResult, error) {
	if len(corpus) == 0 || k <= 0 {
		return []models.SearchResult{}, nil
	}

	queryVector, err := s.embedder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	queryTerms := lexicalTerms(query)

	results := make([]models.SearchResult, 0, len(corpus))
	for _, chunk := range corpus {
		vector := clamp01(cosineSimilarity(queryVector, chunk.Vector))
		lexical := lexicalOverlap(queryTerms, chunk.Text)
		score := s.vectorWeight*vector + s.lexicalWeight*lexical

		results = append(results, models.SearchResult{
			Chunk:      chunk,
			Similarity: clamp01(score),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// cosineSimilarity calculates cosine similarity between two vectors
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// lexicalTerms extracts the unique lowercased terms of a query
func lexicalTerms(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]bool)
	var terms []string
	for _, f := range fields {
		if len(f) < 3 || seen[f] {
			continue
		}
		seen[f] = true
		terms = append(terms, f)
	}
	return terms
}

// lexicalOverlap returns the fraction of query terms present in the chunk
// text, case-insensitive
func lexicalOverlap(queryTerms []string, text string) float64 {
	if len(queryTerms) == 0 {
		return 0.0
	}

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	present := make(map[string]bool, len(fields))
	for _, f := range fields {
		present[f] = true
	}

	matched := 0
	for _, term := range queryTerms {
		if present[term] {
			matched++
		}
	}
	return float64(matched) / float64(len(queryTerms))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
