// ABOUTME: Tests for the word-bounded overlapping chunker
// ABOUTME: Verifies coverage, ordering, and overlap carry between chunks
package core

import (
	"fmt"
	"strings"
	"testing"
)

// makeText builds a document of wordCount words as ten-word sentences
func makeText(wordCount int) string {
	var sb strings.Builder
	word := 0
	for word < wordCount {
		for i := 0; i < 10 && word < wordCount; i++ {
			if i > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "word%d", word)
			word++
		}
		sb.WriteString(". ")
	}
	return strings.TrimSpace(sb.String())
}

func TestChunkEmptyText(t *testing.T) {
	chunker := NewChunker(500, 50)

	for _, text := range []string{"", "   ", "\n\n\t"} {
		if got := chunker.Chunk("doc_1", text); len(got) != 0 {
			t.Errorf("Chunk(%q) = %d chunks, want 0", text, len(got))
		}
	}
}

func TestChunkShortText(t *testing.T) {
	chunker := NewChunker(500, 50)

	chunks := chunker.Chunk("doc_1", "A short note. Nothing more to say.")
	if len(chunks) != 1 {
		t.Fatalf("chunk count = %d, want 1", len(chunks))
	}
	if chunks[0].StartWord != 0 {
		t.Errorf("StartWord = %d, want 0", chunks[0].StartWord)
	}
	if chunks[0].EndWord != 7 {
		t.Errorf("EndWord = %d, want 7", chunks[0].EndWord)
	}
	if chunks[0].DocumentID != "doc_1" {
		t.Errorf("DocumentID = %v, want doc_1", chunks[0].DocumentID)
	}
}

func TestChunkLongDocument(t *testing.T) {
	chunker := NewChunker(500, 50)
	text := makeText(1200)

	chunks := chunker.Chunk("doc_long", text)
	if len(chunks) != 3 {
		t.Fatalf("chunk count = %d, want 3", len(chunks))
	}

	// Contiguous coverage of the word stream
	if chunks[0].StartWord != 0 {
		t.Errorf("first StartWord = %d, want 0", chunks[0].StartWord)
	}
	for i := 1; i < len(chunks); i++ {
		if chunks[i].StartWord != chunks[i-1].EndWord {
			t.Errorf("chunk %d StartWord = %d, want %d", i, chunks[i].StartWord, chunks[i-1].EndWord)
		}
	}
	if chunks[len(chunks)-1].EndWord != 1200 {
		t.Errorf("last EndWord = %d, want 1200", chunks[len(chunks)-1].EndWord)
	}

	// IDs are unique
	seen := map[string]bool{}
	for _, c := range chunks {
		if seen[c.ID] {
			t.Errorf("duplicate chunk ID %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestChunkOverlapCarry(t *testing.T) {
	chunker := NewChunker(500, 50)
	text := makeText(1200)

	chunks := chunker.Chunk("doc_long", text)
	if len(chunks) < 2 {
		t.Fatalf("chunk count = %d, want at least 2", len(chunks))
	}

	// First chunk carries no prefix, so its text is its body; the second
	// chunk must open with the first chunk's trailing 50 words.
	firstWords := strings.Fields(chunks[0].Text)
	secondWords := strings.Fields(chunks[1].Text)
	tail := firstWords[len(firstWords)-50:]
	for i, w := range tail {
		if secondWords[i] != w {
			t.Fatalf("overlap word %d = %q, want %q", i, secondWords[i], w)
		}
	}

	// The overlap prefix does not count toward word positions
	bodyWords := len(secondWords) - 50
	if chunks[1].EndWord-chunks[1].StartWord != bodyWords {
		t.Errorf("chunk 1 span = %d, want body word count %d",
			chunks[1].EndWord-chunks[1].StartWord, bodyWords)
	}
}

func TestChunkNoOverlap(t *testing.T) {
	chunker := NewChunker(100, 0)
	text := makeText(250)

	chunks := chunker.Chunk("doc_plain", text)
	if len(chunks) != 3 {
		t.Fatalf("chunk count = %d, want 3", len(chunks))
	}

	total := 0
	for _, c := range chunks {
		total += len(strings.Fields(c.Text))
	}
	if total != 250 {
		t.Errorf("total words across chunks = %d, want 250 with zero overlap", total)
	}
}

func TestNewChunkerClamping(t *testing.T) {
	tests := []struct {
		name                string
		target, overlap     int
		wantTarget, wantOvl int
	}{
		{"defaults on zero target", 0, 50, DefaultTargetWords, 50},
		{"negative overlap clamped", 100, -5, 100, 0},
		{"overlap below target", 100, 200, 100, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChunker(tt.target, tt.overlap)
			if c.targetWords != tt.wantTarget {
				t.Errorf("targetWords = %d, want %d", c.targetWords, tt.wantTarget)
			}
			if c.overlapWords != tt.wantOvl {
				t.Errorf("overlapWords = %d, want %d", c.overlapWords, tt.wantOvl)
			}
		})
	}
}

func TestChunkParagraphWithoutTerminators(t *testing.T) {
	chunker := NewChunker(500, 50)

	chunks := chunker.Chunk("doc_raw", "speaker notes with no punctuation at all")
	if len(chunks) != 1 {
		t.Fatalf("chunk count = %d, want 1", len(chunks))
	}
	if chunks[0].EndWord != 7 {
		t.Errorf("EndWord = %d, want 7", chunks[0].EndWord)
	}
}
