// ABOUTME: Output-format constraints detected from user queries
// ABOUTME: Tagged variants so the prompt builder and tests can reason structurally
package models

// ConstraintKind tags the variant of a detected format requirement
type ConstraintKind string

const (
	ConstraintSentenceCount  ConstraintKind = "sentence_count"
	ConstraintParagraphCount ConstraintKind = "paragraph_count"
	ConstraintWordCount      ConstraintKind = "word_count"
	ConstraintBulletList     ConstraintKind = "bullet_list"
)

// Constraint is one detected output-format requirement. Count is zero for
// kinds that carry no number (bullet lists).
type Constraint struct {
	Kind  ConstraintKind `json:"kind"`
	Count int            `json:"count,omitempty"`
}
