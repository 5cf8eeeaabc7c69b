// ABOUTME: Prompt assembly helpers: template substitution and section rendering
// ABOUTME: renderTemplate is a pure key-to-string replacement of {{var}} tokens
package core

import (
	"fmt"
	"strings"

	"github.com/geigermatic/transcript-gen/internal/models"
)

// renderTemplate substitutes {{key}} tokens with their values. Unknown
// tokens are left in place.
func renderTemplate(tmpl string, vars map[string]string) string {
	out := tmpl
	for key, value := range vars {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	return out
}

// renderConstraints turns detected constraints into imperative lines
// prepended to the prompt
func renderConstraints(constraints []models.Constraint) string {
	if len(constraints) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("FORMAT REQUIREMENTS:\n")
	for _, c := range constraints {
		sb.WriteString("- ")
		sb.WriteString(constraintInstruction(c))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderStyleGuide formats a style profile as a prompt section
func renderStyleGuide(style models.StyleGuide) string {
	var sb strings.Builder
	sb.WriteString("STYLE GUIDE:\n")

	if style.Instructions != "" {
		sb.WriteString(style.Instructions)
		sb.WriteString("\n")
	}

	tone := style.ToneSettings
	sb.WriteString(fmt.Sprintf("Tone: formality %d/100, enthusiasm %d/100, technicality %d/100\n",
		tone.Formality, tone.Enthusiasm, tone.Technicality))

	if len(style.Keywords) > 0 {
		sb.WriteString("Emphasize these terms: " + strings.Join(style.Keywords, ", ") + "\n")
	}

	phrases := style.ExamplePhrases
	if len(phrases.PreferredOpenings) > 0 {
		sb.WriteString("Preferred openings: " + strings.Join(phrases.PreferredOpenings, "; ") + "\n")
	}
	if len(phrases.PreferredTransitions) > 0 {
		sb.WriteString("Preferred transitions: " + strings.Join(phrases.PreferredTransitions, "; ") + "\n")
	}
	if len(phrases.PreferredConclusions) > 0 {
		sb.WriteString("Preferred conclusions: " + strings.Join(phrases.PreferredConclusions, "; ") + "\n")
	}
	if len(phrases.AvoidPhrases) > 0 {
		sb.WriteString("Never use these words or phrases: " + strings.Join(phrases.AvoidPhrases, ", ") + "\n")
	}

	return sb.String()
}

// renderSource labels one retrieved chunk with its document title and
// similarity percentage
func renderSource(result models.SearchResult, title string) string {
	if title == "" {
		title = result.Chunk.DocumentID
	}
	return renderTemplate("[Source: {{title}} ({{similarity}} match)]\n{{text}}", map[string]string{
		"title":      title,
		"similarity": fmt.Sprintf("%.0f%%", result.Similarity*100),
		"text":       result.Chunk.Text,
	})
}
