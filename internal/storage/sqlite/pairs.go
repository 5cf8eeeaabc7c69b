// ABOUTME: A/B summary pair and preference persistence on SQLite
// ABOUTME: Implements the pair store consumed by the A/B engine
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/geigermatic/transcript-gen/internal/models"
)

// PairStore persists A/B summary pairs and preference votes
type PairStore struct {
	db *DB
}

// NewPairStore creates a pair store backed by db
func NewPairStore(db *DB) *PairStore {
	return &PairStore{db: db}
}

// SavePair writes a complete pair. Feedback is stored when present.
func (s *PairStore) SavePair(pair *models.ABSummaryPair) error {
	details, err := json.Marshal(pair.VariantDetails)
	if err != nil {
		return fmt.Errorf("failed to encode variant details: %w", err)
	}

	var winner, reason, feedbackAt interface{}
	if pair.UserFeedback != nil {
		winner = pair.UserFeedback.Winner
		reason = pair.UserFeedback.Reason
		feedbackAt = pair.UserFeedback.RecordedAt.UTC().Format(time.RFC3339Nano)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO ab_pairs
			(id, document_id, document_title, summary_a, summary_b, variant_details,
			 winner, feedback_reason, feedback_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pair.ID, pair.DocumentID, pair.DocumentTitle, pair.SummaryA, pair.SummaryB,
		string(details), winner, reason, feedbackAt,
		pair.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save pair: %w", err)
	}
	return nil
}

// GetPair retrieves a pair by ID. Returns nil if not found.
func (s *PairStore) GetPair(id string) (*models.ABSummaryPair, error) {
	var pair models.ABSummaryPair
	var details, createdAt string
	var winner, reason, feedbackAt sql.NullString

	err := s.db.QueryRow(`
		SELECT id, document_id, document_title, summary_a, summary_b, variant_details,
		       winner, feedback_reason, feedback_at, created_at
		FROM ab_pairs WHERE id = ?`, id).
		Scan(&pair.ID, &pair.DocumentID, &pair.DocumentTitle, &pair.SummaryA, &pair.SummaryB,
			&details, &winner, &reason, &feedbackAt, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pair: %w", err)
	}

	if err := json.Unmarshal([]byte(details), &pair.VariantDetails); err != nil {
		return nil, fmt.Errorf("failed to decode variant details: %w", err)
	}
	pair.CreatedAt = parseTime(createdAt)

	if winner.Valid {
		pair.UserFeedback = &models.UserFeedback{
			Winner:     winner.String,
			Reason:     reason.String,
			RecordedAt: parseTime(feedbackAt.String),
		}
	}
	return &pair, nil
}

// SetFeedback records the winner on a pair. Last write wins.
func (s *PairStore) SetFeedback(pairID string, feedback models.UserFeedback) error {
	result, err := s.db.Exec(`
		UPDATE ab_pairs SET winner = ?, feedback_reason = ?, feedback_at = ?
		WHERE id = ?`,
		feedback.Winner, feedback.Reason,
		feedback.RecordedAt.UTC().Format(time.RFC3339Nano), pairID)
	if err != nil {
		return fmt.Errorf("failed to set feedback: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check feedback result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("pair not found: %s", pairID)
	}
	return nil
}

// AppendPreference records a vote in the append-only preference log
func (s *PairStore) AppendPreference(record models.PreferenceRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO preferences (id, pair_id, winner, reason, recorded_at)
		VALUES (?, ?, ?, ?, ?)`,
		record.ID, record.PairID, record.Winner, record.Reason,
		record.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to append preference: %w", err)
	}
	return nil
}

// Stats aggregates feedback across all pairs. Completion rate is a
// percentage rounded to two decimal places; zero pairs means zero rate.
func (s *PairStore) Stats() (models.ABTestingStats, error) {
	var stats models.ABTestingStats

	err := s.db.QueryRow(`
		SELECT
			COUNT(*),
			COUNT(winner),
			COALESCE(SUM(CASE WHEN winner = 'A' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winner = 'B' THEN 1 ELSE 0 END), 0)
		FROM ab_pairs`).
		Scan(&stats.TotalTests, &stats.CompletedTests, &stats.VariantAWins, &stats.VariantBWins)
	if err != nil {
		return stats, fmt.Errorf("failed to compute stats: %w", err)
	}

	if stats.TotalTests > 0 {
		rate := float64(stats.CompletedTests) / float64(stats.TotalTests) * 100
		stats.CompletionRate = math.Round(rate*100) / 100
	}
	return stats, nil
}
