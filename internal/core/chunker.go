// ABOUTME: Chunker splits transcript text into overlapping word-bounded segments
// ABOUTME: Packs whole sentences greedily and carries overlap words across boundaries
package core

import (
	"strings"

	"github.com/google/uuid"

	"github.com/geigermatic/transcript-gen/internal/models"
)

// Default chunking parameters
const (
	DefaultTargetWords  = 500
	DefaultOverlapWords = 50
)

// Chunker splits document text on paragraph and sentence boundaries,
// packing sentences until the target word count is reached. Each chunk
// after the first starts with the trailing overlapWords words of the
// previous chunk so context survives chunk boundaries.
type Chunker struct {
	targetWords  int
	overlapWords int
}

// NewChunker creates a chunker. Non-positive targets fall back to defaults;
// overlap is clamped below the target.
func NewChunker(targetWords, overlapWords int) *Chunker {
	if targetWords <= 0 {
		targetWords = DefaultTargetWords
	}
	if overlapWords < 0 {
		overlapWords = 0
	}
	if overlapWords >= targetWords {
		overlapWords = targetWords - 1
	}
	return &Chunker{
		targetWords:  targetWords,
		overlapWords: overlapWords,
	}
}

// Chunk splits text into ordered chunks covering the whole input. Empty or
// whitespace-only text yields an empty slice, not an error. Text shorter
// than the target yields exactly one chunk.
func (c *Chunker) Chunk(documentID, text string) []models.Chunk {
	units := c.splitUnits(text)
	if len(units) == 0 {
		return nil
	}

	var chunks []models.Chunk
	var current []string
	var overlap []string
	currentWords := 0
	wordPos := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		body := strings.Join(current, " ")
		chunkText := body
		if len(overlap) > 0 {
			chunkText = strings.Join(overlap, " ") + " " + body
		}
		chunks = append(chunks, models.Chunk{
			ID:         "chunk_" + uuid.New().String(),
			DocumentID: documentID,
			Text:       chunkText,
			StartWord:  wordPos,
			EndWord:    wordPos + currentWords,
		})
		wordPos += currentWords

		overlap = trailingWords(body, c.overlapWords)
		current = nil
		currentWords = 0
	}

	for _, unit := range units {
		current = append(current, unit)
		currentWords += models.CountWords(unit)
		if currentWords >= c.targetWords {
			flush()
		}
	}
	flush()

	return chunks
}

// splitUnits flattens text into sentence units in document order. A
// paragraph with no sentence terminators becomes a single unit.
func (c *Chunker) splitUnits(text string) []string {
	var units []string
	for _, para := range splitParagraphs(text) {
		sentences := splitSentences(para)
		if len(sentences) == 0 {
			units = append(units, para)
			continue
		}
		units = append(units, sentences...)
	}
	return units
}

// trailingWords returns the last n words of text
func trailingWords(text string, n int) []string {
	if n <= 0 {
		return nil
	}
	words := strings.Fields(text)
	if len(words) <= n {
		return words
	}
	return words[len(words)-n:]
}
