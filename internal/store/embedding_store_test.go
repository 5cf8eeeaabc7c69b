// ABOUTME: Tests for the embedding store and hybrid search
// ABOUTME: Uses a fake embedder with canned vectors per input text
package store

import (
	"errors"
	"math"
	"testing"

	"github.com/geigermatic/transcript-gen/internal/logging"
	"github.com/geigermatic/transcript-gen/internal/models"
)

// fakeEmbedder returns preset vectors by text, or a fallback
type fakeEmbedder struct {
	vectors  map[string][]float64
	fallback []float64
	failOn   string
	calls    int
}

func (f *fakeEmbedder) Embed(text string) ([]float64, error) {
	f.calls++
	if f.failOn != "" && text == f.failOn {
		return nil, errors.New("embed failed")
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return f.fallback, nil
}

func newTestStore(embedder Embedder) *EmbeddingStore {
	return NewEmbeddingStore(embedder, logging.Nop(), Options{})
}

func chunkOf(id, text string) models.Chunk {
	return models.Chunk{ID: id, DocumentID: "doc_1", Text: text}
}

func TestEmbedDocumentProgress(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float64{1, 0}}
	store := newTestStore(embedder)

	chunks := []models.Chunk{
		chunkOf("chunk_1", "first"),
		chunkOf("chunk_2", "second"),
		chunkOf("chunk_3", "third"),
	}

	var progress []models.EmbeddingProgress
	embedded, err := store.EmbedDocument("doc_1", chunks, func(p models.EmbeddingProgress) {
		progress = append(progress, p)
	})
	if err != nil {
		t.Fatalf("EmbedDocument() error = %v", err)
	}
	if len(embedded) != 3 {
		t.Fatalf("embedded count = %d, want 3", len(embedded))
	}

	want := []models.EmbeddingProgress{
		{Current: 1, Total: 3, Percentage: 33},
		{Current: 2, Total: 3, Percentage: 67},
		{Current: 3, Total: 3, Percentage: 100},
	}
	if len(progress) != len(want) {
		t.Fatalf("progress events = %v, want %v", progress, want)
	}
	for i := range want {
		if progress[i] != want[i] {
			t.Errorf("progress[%d] = %v, want %v", i, progress[i], want[i])
		}
	}

	if !store.HasEmbeddings() {
		t.Error("HasEmbeddings() = false after successful embed")
	}
}

func TestEmbedDocumentAllOrNothing(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float64{1, 0}, failOn: "second"}
	store := newTestStore(embedder)

	chunks := []models.Chunk{
		chunkOf("chunk_1", "first"),
		chunkOf("chunk_2", "second"),
		chunkOf("chunk_3", "third"),
	}

	_, err := store.EmbedDocument("doc_1", chunks, nil)
	if err == nil {
		t.Fatal("EmbedDocument() succeeded, want mid-document failure")
	}
	if store.HasEmbeddings() {
		t.Error("partial embeddings stored after failure")
	}
	if len(store.Corpus("doc_1")) != 0 {
		t.Error("corpus not empty after failed embed")
	}
}

func TestEmbedDocumentDimensionMismatch(t *testing.T) {
	embedder := &fakeEmbedder{
		vectors:  map[string][]float64{"first": {1, 0, 0}},
		fallback: []float64{1, 0},
	}
	store := newTestStore(embedder)

	chunks := []models.Chunk{chunkOf("chunk_1", "first"), chunkOf("chunk_2", "second")}
	if _, err := store.EmbedDocument("doc_1", chunks, nil); err == nil {
		t.Fatal("EmbedDocument() accepted inconsistent vector dimensions")
	}
}

func TestRemoveDocument(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float64{1, 0}}
	store := newTestStore(embedder)

	if _, err := store.EmbedDocument("doc_1", []models.Chunk{chunkOf("chunk_1", "text")}, nil); err != nil {
		t.Fatalf("EmbedDocument() error = %v", err)
	}

	store.RemoveDocument("doc_1")
	if store.HasEmbeddings() {
		t.Error("HasEmbeddings() = true after removal")
	}
	if len(store.DocumentIDs()) != 0 {
		t.Errorf("DocumentIDs() = %v, want empty", store.DocumentIDs())
	}

	// Removing again is a no-op
	store.RemoveDocument("doc_1")
}

func TestCorpusScoping(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float64{1, 0}}
	store := newTestStore(embedder)

	store.LoadDocument("doc_a", []models.EmbeddedChunk{
		{Chunk: models.Chunk{ID: "chunk_a", DocumentID: "doc_a"}, Vector: []float64{1, 0}},
	})
	store.LoadDocument("doc_b", []models.EmbeddedChunk{
		{Chunk: models.Chunk{ID: "chunk_b", DocumentID: "doc_b"}, Vector: []float64{0, 1}},
	})

	all := store.Corpus()
	if len(all) != 2 {
		t.Errorf("full corpus = %d chunks, want 2", len(all))
	}

	scoped := store.Corpus("doc_b")
	if len(scoped) != 1 || scoped[0].Chunk.ID != "chunk_b" {
		t.Errorf("scoped corpus = %v, want only doc_b chunks", scoped)
	}

	if got := store.DocumentIDs(); len(got) != 2 || got[0] != "doc_a" {
		t.Errorf("DocumentIDs() = %v, want insertion order [doc_a doc_b]", got)
	}
}

func TestSearchHybridRanking(t *testing.T) {
	// Query vector matches chunk_semantic's direction; chunk_lexical shares
	// the query's words but points elsewhere.
	embedder := &fakeEmbedder{
		vectors: map[string][]float64{
			"budget approval": {1, 0},
		},
		fallback: []float64{0, 1},
	}
	store := newTestStore(embedder)

	corpus := []models.EmbeddedChunk{
		{Chunk: models.Chunk{ID: "chunk_semantic", Text: "spending was signed off"}, Vector: []float64{1, 0}},
		{Chunk: models.Chunk{ID: "chunk_lexical", Text: "the budget approval process"}, Vector: []float64{0, 1}},
		{Chunk: models.Chunk{ID: "chunk_neither", Text: "lunch menu options"}, Vector: []float64{0, 1}},
	}

	results, err := store.Search("budget approval", corpus, 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("result count = %d, want 3", len(results))
	}

	// chunk_semantic: 0.7*1 + 0.3*0 = 0.7
	if results[0].Chunk.ID != "chunk_semantic" {
		t.Errorf("top result = %s, want chunk_semantic", results[0].Chunk.ID)
	}
	if math.Abs(results[0].Similarity-0.7) > 1e-9 {
		t.Errorf("top score = %v, want 0.7", results[0].Similarity)
	}
	// chunk_lexical: 0.7*0 + 0.3*1 = 0.3
	if results[1].Chunk.ID != "chunk_lexical" {
		t.Errorf("second result = %s, want chunk_lexical", results[1].Chunk.ID)
	}
	if math.Abs(results[1].Similarity-0.3) > 1e-9 {
		t.Errorf("second score = %v, want 0.3", results[1].Similarity)
	}
	if results[2].Chunk.ID != "chunk_neither" {
		t.Errorf("last result = %s, want chunk_neither", results[2].Chunk.ID)
	}
}

func TestSearchTopKAndStableTies(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float64{1, 0}}
	store := newTestStore(embedder)

	// All chunks identical to the query vector: equal scores, so the
	// original corpus order must survive the sort.
	var corpus []models.EmbeddedChunk
	for _, id := range []string{"chunk_1", "chunk_2", "chunk_3", "chunk_4"} {
		corpus = append(corpus, models.EmbeddedChunk{
			Chunk:  models.Chunk{ID: id, Text: "same text"},
			Vector: []float64{1, 0},
		})
	}

	results, err := store.Search("query words", corpus, 2)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("result count = %d, want k=2", len(results))
	}
	if results[0].Chunk.ID != "chunk_1" || results[1].Chunk.ID != "chunk_2" {
		t.Errorf("tie order = %s, %s, want chunk_1, chunk_2", results[0].Chunk.ID, results[1].Chunk.ID)
	}
}

func TestSearchEmptyCorpus(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float64{1, 0}}
	store := newTestStore(embedder)

	results, err := store.Search("query", nil, 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %v, want empty", results)
	}
	if embedder.calls != 0 {
		t.Error("embedder called for empty corpus")
	}
}

func TestSearchQueryEmbedFailure(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float64{1, 0}, failOn: "query"}
	store := newTestStore(embedder)

	corpus := []models.EmbeddedChunk{
		{Chunk: models.Chunk{ID: "chunk_1", Text: "text"}, Vector: []float64{1, 0}},
	}
	if _, err := store.Search("query", corpus, 5); err == nil {
		t.Fatal("Search() succeeded despite query embed failure")
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1.0},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1.0},
		{"mismatched dims", []float64{1, 0}, []float64{1, 0, 0}, 0.0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0.0},
		{"empty", nil, nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexicalTerms(t *testing.T) {
	terms := lexicalTerms("The Budget, the budget... and AI!")
	// Short words (under 3 chars) and duplicates are dropped
	want := []string{"the", "budget", "and"}
	if len(terms) != len(want) {
		t.Fatalf("lexicalTerms() = %v, want %v", terms, want)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("term %d = %q, want %q", i, terms[i], want[i])
		}
	}
}

func TestLexicalOverlap(t *testing.T) {
	terms := lexicalTerms("budget approval meeting")

	if got := lexicalOverlap(terms, "the budget approval went through"); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("overlap = %v, want 2/3", got)
	}
	if got := lexicalOverlap(terms, "lunch plans"); got != 0 {
		t.Errorf("overlap = %v, want 0", got)
	}
	if got := lexicalOverlap(nil, "anything"); got != 0 {
		t.Errorf("overlap with no terms = %v, want 0", got)
	}
}
