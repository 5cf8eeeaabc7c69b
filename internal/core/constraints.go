// ABOUTME: Detects output-format requirements in user queries
// ABOUTME: Pure function returning tagged constraints for the prompt builder
package core

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/geigermatic/transcript-gen/internal/models"
)

var (
	sentenceCountRe  = regexp.MustCompile(`(?i)\b(\d+|one|two|three|four|five|six|seven|eight|nine|ten|a single)\s+sentences?\b`)
	paragraphCountRe = regexp.MustCompile(`(?i)\b(\d+|one|two|three|four|five|six|seven|eight|nine|ten|a single)\s+paragraphs?\b`)
	wordCountRe      = regexp.MustCompile(`(?i)\b(\d+)\s+words?\b`)
	bulletListRe     = regexp.MustCompile(`(?i)\b(bullet\s*-?\s*points?|bulleted\s+list|bullet\s+list|as\s+a\s+list|in\s+list\s+form(?:at)?)\b`)
)

var wordNumbers = map[string]int{
	"a single": 1,
	"one":      1,
	"two":      2,
	"three":    3,
	"four":     4,
	"five":     5,
	"six":      6,
	"seven":    7,
	"eight":    8,
	"nine":     9,
	"ten":      10,
}

// DetectConstraints scans a user query for explicit format requirements:
// sentence count, paragraph count, word count, and bullet-list requests.
// Each kind is reported at most once.
func DetectConstraints(query string) []models.Constraint {
	var constraints []models.Constraint

	if m := sentenceCountRe.FindStringSubmatch(query); m != nil {
		if n := parseCount(m[1]); n > 0 {
			constraints = append(constraints, models.Constraint{Kind: models.ConstraintSentenceCount, Count: n})
		}
	}
	if m := paragraphCountRe.FindStringSubmatch(query); m != nil {
		if n := parseCount(m[1]); n > 0 {
			constraints = append(constraints, models.Constraint{Kind: models.ConstraintParagraphCount, Count: n})
		}
	}
	if m := wordCountRe.FindStringSubmatch(query); m != nil {
		if n := parseCount(m[1]); n > 0 {
			constraints = append(constraints, models.Constraint{Kind: models.ConstraintWordCount, Count: n})
		}
	}
	if bulletListRe.MatchString(query) {
		constraints = append(constraints, models.Constraint{Kind: models.ConstraintBulletList})
	}

	return constraints
}

// parseCount converts a digit string or small word number to an int
func parseCount(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, ok := wordNumbers[s]; ok {
		return n
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return 0
}

// constraintInstruction renders one constraint as an imperative line for
// the prompt
func constraintInstruction(c models.Constraint) string {
	switch c.Kind {
	case models.ConstraintSentenceCount:
		if c.Count == 1 {
			return "Respond in exactly 1 sentence."
		}
		return "Respond in exactly " + strconv.Itoa(c.Count) + " sentences."
	case models.ConstraintParagraphCount:
		if c.Count == 1 {
			return "Structure the response as exactly 1 paragraph."
		}
		return "Structure the response as exactly " + strconv.Itoa(c.Count) + " paragraphs."
	case models.ConstraintWordCount:
		return "Keep the response to approximately " + strconv.Itoa(c.Count) + " words."
	case models.ConstraintBulletList:
		return "Format the response as a bulleted list."
	}
	return ""
}
