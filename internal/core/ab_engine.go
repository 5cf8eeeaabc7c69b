// ABOUTME: A/B summary engine: two style-merged generation passes over one document
// ABOUTME: Sequential by design with an inter-variant delay; persists only complete pairs
package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/geigermatic/transcript-gen/internal/logging"
	"github.com/geigermatic/transcript-gen/internal/models"
)

// Canonical variant names
const (
	VariantNameProfessional   = "Professional & Structured"
	VariantNameConversational = "Conversational & Engaging"
)

// DefaultVariantDelay spaces out the two generation passes so a local
// single-worker inference server isn't saturated
const DefaultVariantDelay = time.Second

// pairStageTotal is the progress denominator: variant A, variant B, finalize
const pairStageTotal = 3

// SummaryGenerator produces one styled summary per call
type SummaryGenerator interface {
	Summarize(doc models.Document, style models.StyleGuide) (string, error)
}

// PairStore persists pairs and preference votes
type PairStore interface {
	SavePair(pair *models.ABSummaryPair) error
	GetPair(id string) (*models.ABSummaryPair, error)
	SetFeedback(pairID string, feedback models.UserFeedback) error
	AppendPreference(record models.PreferenceRecord) error
	Stats() (models.ABTestingStats, error)
}

// ABEngine orchestrates paired summary generation and feedback recording
type ABEngine struct {
	summarizer SummaryGenerator
	pairs      PairStore
	delay      time.Duration
	logger     logging.Logger
}

// NewABEngine wires the engine. A negative delay falls back to the 1s
// default; zero disables the delay (tests).
func NewABEngine(summarizer SummaryGenerator, pairs PairStore, delay time.Duration, logger logging.Logger) *ABEngine {
	if delay < 0 {
		delay = DefaultVariantDelay
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &ABEngine{
		summarizer: summarizer,
		pairs:      pairs,
		delay:      delay,
		logger:     logger,
	}
}

// ProfessionalVariant builds the formal side of the comparison: formality
// up 20, enthusiasm down 10, formal phrase banks, informal words avoided.
// Adjusted values are clamped into [0,100].
func ProfessionalVariant(base models.StyleGuide) models.SummaryVariant {
	return models.SummaryVariant{
		Name:        VariantNameProfessional,
		Description: "Formal register, structured flow, precise wording",
		Modifications: models.StyleDelta{
			Formality:  tonePtr(base.ToneSettings.Formality + 20),
			Enthusiasm: tonePtr(base.ToneSettings.Enthusiasm - 10),
			PreferredOpenings: listPtr(
				"This document outlines",
				"The following summary presents",
				"This session covered",
			),
			PreferredTransitions: listPtr("Furthermore", "In addition", "Moreover"),
			PreferredConclusions: listPtr("In conclusion", "To summarize", "In summary"),
			AvoidPhrases:         listPtr("awesome", "cool", "stuff", "kinda", "gonna", "super"),
		},
		PromptStrategy: "structured",
	}
}

// ConversationalVariant builds the casual side: formality down 20,
// enthusiasm up 15, technicality down 10, casual phrase banks,
// formal-register words avoided.
func ConversationalVariant(base models.StyleGuide) models.SummaryVariant {
	return models.SummaryVariant{
		Name:        VariantNameConversational,
		Description: "Casual register, engaging flow, plain wording",
		Modifications: models.StyleDelta{
			Formality:    tonePtr(base.ToneSettings.Formality - 20),
			Enthusiasm:   tonePtr(base.ToneSettings.Enthusiasm + 15),
			Technicality: tonePtr(base.ToneSettings.Technicality - 10),
			PreferredOpenings: listPtr(
				"Let's dig into",
				"Here's what this one was all about",
				"The big takeaway from this session",
			),
			PreferredTransitions: listPtr("Plus", "On top of that", "And here's the thing"),
			PreferredConclusions: listPtr("Bottom line", "All in all", "So, wrapping up"),
			AvoidPhrases:         listPtr("aforementioned", "heretofore", "pursuant", "notwithstanding", "thus"),
		},
		PromptStrategy: "conversational",
	}
}

// GeneratePair runs both variants over the document sequentially, never in
// parallel, with the configured delay between them. Either failure aborts
// the run with document context attached; no partial pair is ever
// persisted.
func (e *ABEngine) GeneratePair(doc models.Document, base models.StyleGuide, onProgress func(models.PairProgress)) (*models.ABSummaryPair, error) {
	variantA := ProfessionalVariant(base)
	variantB := ConversationalVariant(base)

	report(onProgress, "variant_a", 1)
	summaryA, err := e.summarizer.Summarize(doc, MergeStyleGuides(base, variantA.Modifications))
	if err != nil {
		return nil, fmt.Errorf("generating %q summary for document %s (%s): %w", variantA.Name, doc.ID, doc.Title, err)
	}

	if e.delay > 0 {
		time.Sleep(e.delay)
	}

	report(onProgress, "variant_b", 2)
	summaryB, err := e.summarizer.Summarize(doc, MergeStyleGuides(base, variantB.Modifications))
	if err != nil {
		return nil, fmt.Errorf("generating %q summary for document %s (%s): %w", variantB.Name, doc.ID, doc.Title, err)
	}

	report(onProgress, "finalize", 3)
	pair := &models.ABSummaryPair{
		ID:            "pair_" + uuid.New().String(),
		DocumentID:    doc.ID,
		DocumentTitle: doc.Title,
		SummaryA:      summaryA,
		SummaryB:      summaryB,
		VariantDetails: models.VariantDetails{
			VariantA: variantA,
			VariantB: variantB,
		},
		CreatedAt: time.Now(),
	}

	if err := e.pairs.SavePair(pair); err != nil {
		return nil, fmt.Errorf("persisting pair for document %s: %w", doc.ID, err)
	}

	e.logger.Info("A/B pair generated", "pair_id", pair.ID, "document_id", doc.ID)
	return pair, nil
}

// RecordFeedback writes a preference vote onto a pair. Calling it again
// for the same pair overwrites the previous vote (last write wins); every
// call also appends a preference record for aggregate analytics.
func (e *ABEngine) RecordFeedback(pairID, winner, reason string) error {
	winner = strings.ToUpper(strings.TrimSpace(winner))
	if winner != models.WinnerA && winner != models.WinnerB {
		return fmt.Errorf("winner must be %q or %q, got %q", models.WinnerA, models.WinnerB, winner)
	}

	pair, err := e.pairs.GetPair(pairID)
	if err != nil {
		return fmt.Errorf("looking up pair %s: %w", pairID, err)
	}
	if pair == nil {
		return fmt.Errorf("pair %s not found", pairID)
	}

	feedback := models.UserFeedback{
		Winner:     winner,
		Reason:     reason,
		RecordedAt: time.Now(),
	}
	if err := e.pairs.SetFeedback(pairID, feedback); err != nil {
		return fmt.Errorf("recording feedback on pair %s: %w", pairID, err)
	}

	record := models.PreferenceRecord{
		ID:        "vote_" + uuid.New().String(),
		PairID:    pairID,
		Winner:    winner,
		Reason:    reason,
		CreatedAt: feedback.RecordedAt,
	}
	if err := e.pairs.AppendPreference(record); err != nil {
		return fmt.Errorf("appending preference record for pair %s: %w", pairID, err)
	}

	e.logger.Info("feedback recorded", "pair_id", pairID, "winner", winner)
	return nil
}

// Stats aggregates feedback across all pairs
func (e *ABEngine) Stats() (models.ABTestingStats, error) {
	return e.pairs.Stats()
}

func report(onProgress func(models.PairProgress), stage string, current int) {
	if onProgress != nil {
		onProgress(models.PairProgress{Stage: stage, Current: current, Total: pairStageTotal})
	}
}

func tonePtr(v int) *int {
	clamped := models.ClampTone(v)
	return &clamped
}

func listPtr(items ...string) *[]string {
	return &items
}
