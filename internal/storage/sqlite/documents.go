// ABOUTME: Document and chunk persistence on SQLite
// ABOUTME: Chunk vectors are stored JSON-encoded alongside the chunk text
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/geigermatic/transcript-gen/internal/models"
)

// DocumentStore persists documents and their embedded chunks
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a document store backed by db
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// SaveDocument writes a document and its embedded chunks in one transaction.
// An existing document with the same ID is replaced along with its chunks.
func (s *DocumentStore) SaveDocument(doc models.Document, chunks []models.EmbeddedChunk) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO documents (id, title, text, word_count, added_at)
		VALUES (?, ?, ?, ?, ?)`,
		doc.ID, doc.Title, doc.Text, doc.Metadata.WordCount, doc.AddedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	// Replace chunks wholesale; re-ingestion re-chunks from scratch
	if _, err := tx.Exec(`DELETE FROM chunks WHERE document_id = ?`, doc.ID); err != nil {
		return fmt.Errorf("failed to clear old chunks: %w", err)
	}

	for _, chunk := range chunks {
		vector, err := json.Marshal(chunk.Vector)
		if err != nil {
			return fmt.Errorf("failed to encode vector for chunk %s: %w", chunk.ID, err)
		}
		_, err = tx.Exec(`
			INSERT INTO chunks (id, document_id, text, start_word, end_word, vector, embedded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			chunk.ID, chunk.DocumentID, chunk.Text, chunk.StartWord, chunk.EndWord,
			string(vector), chunk.EmbeddedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to save chunk %s: %w", chunk.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit document: %w", err)
	}
	return nil
}

// GetDocument retrieves a document by ID. Returns nil if not found.
func (s *DocumentStore) GetDocument(id string) (*models.Document, error) {
	var doc models.Document
	var addedAt string

	err := s.db.QueryRow(`
		SELECT id, title, text, word_count, added_at
		FROM documents WHERE id = ?`, id).
		Scan(&doc.ID, &doc.Title, &doc.Text, &doc.Metadata.WordCount, &addedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	doc.AddedAt = parseTime(addedAt)
	return &doc, nil
}

// ListDocuments returns all documents ordered by insertion time
func (s *DocumentStore) ListDocuments() ([]models.Document, error) {
	rows, err := s.db.Query(`
		SELECT id, title, text, word_count, added_at
		FROM documents ORDER BY added_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		var addedAt string
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Text, &doc.Metadata.WordCount, &addedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.AddedAt = parseTime(addedAt)
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// GetEmbeddedChunks returns the stored chunks for a document in word order
func (s *DocumentStore) GetEmbeddedChunks(documentID string) ([]models.EmbeddedChunk, error) {
	rows, err := s.db.Query(`
		SELECT id, document_id, text, start_word, end_word, vector, embedded_at
		FROM chunks WHERE document_id = ? ORDER BY start_word ASC`, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks: %w", err)
	}
	defer rows.Close()

	var chunks []models.EmbeddedChunk
	for rows.Next() {
		var chunk models.EmbeddedChunk
		var vector, embeddedAt string
		if err := rows.Scan(&chunk.ID, &chunk.DocumentID, &chunk.Text,
			&chunk.StartWord, &chunk.EndWord, &vector, &embeddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}
		if err := json.Unmarshal([]byte(vector), &chunk.Vector); err != nil {
			return nil, fmt.Errorf("failed to decode vector for chunk %s: %w", chunk.ID, err)
		}
		chunk.EmbeddedAt = parseTime(embeddedAt)
		chunks = append(chunks, chunk)
	}
	return chunks, rows.Err()
}

// DeleteDocument removes a document and its chunks. Returns false if the
// document did not exist.
func (s *DocumentStore) DeleteDocument(id string) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete document: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}
	return affected > 0, nil
}

func parseTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
