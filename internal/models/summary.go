// ABOUTME: A/B summary pair, variant, and feedback structures
// ABOUTME: UserFeedback is the only field mutated after pair creation
package models

import "time"

// Winner labels for A/B feedback
const (
	WinnerA = "A"
	WinnerB = "B"
)

// SummaryVariant is a named delta applied to a base style guide to produce
// one side of an A/B comparison. It never mutates the base.
type SummaryVariant struct {
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Modifications  StyleDelta `json:"style_modifications"`
	PromptStrategy string     `json:"prompt_strategy"`
}

// VariantDetails records both variant descriptors on a pair
type VariantDetails struct {
	VariantA SummaryVariant `json:"variant_a"`
	VariantB SummaryVariant `json:"variant_b"`
}

// UserFeedback is a preference vote on a pair. Last write wins.
type UserFeedback struct {
	Winner     string    `json:"winner"`
	Reason     string    `json:"reason,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ABSummaryPair is the result of one A/B generation run: two differently
// styled summaries of the same document, plus the variant descriptors.
type ABSummaryPair struct {
	ID             string         `json:"id"`
	DocumentID     string         `json:"document_id"`
	DocumentTitle  string         `json:"document_title"`
	SummaryA       string         `json:"summary_a"`
	SummaryB       string         `json:"summary_b"`
	VariantDetails VariantDetails `json:"variant_details"`
	CreatedAt      time.Time      `json:"created_at"`
	UserFeedback   *UserFeedback  `json:"user_feedback,omitempty"`
}

// PairProgress is reported during A/B pair generation. Total is always 3;
// stage 3 is "finalize".
type PairProgress struct {
	Stage   string `json:"stage"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
}

// PreferenceRecord is an append-only vote usable for aggregate analytics
type PreferenceRecord struct {
	ID        string    `json:"id"`
	PairID    string    `json:"pair_id"`
	Winner    string    `json:"winner"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ABTestingStats aggregates feedback across all generated pairs
type ABTestingStats struct {
	TotalTests     int     `json:"total_tests"`
	CompletedTests int     `json:"completed_tests"`
	VariantAWins   int     `json:"variant_a_wins"`
	VariantBWins   int     `json:"variant_b_wins"`
	CompletionRate float64 `json:"completion_rate"`
}
