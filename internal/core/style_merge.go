// ABOUTME: Merges a base style guide with a variant's partial delta
// ABOUTME: Pure field-wise override; phrase lists replace wholesale; tones clamp to 0-100
package core

import "github.com/geigermatic/transcript-gen/internal/models"

// MergeStyleGuides produces the effective style profile for one generation
// pass. Nil delta fields keep the base value; present phrase lists replace
// the base lists wholesale. Neither input is mutated.
func MergeStyleGuides(base models.StyleGuide, delta models.StyleDelta) models.StyleGuide {
	merged := base
	merged.Keywords = cloneStrings(base.Keywords)
	merged.ExamplePhrases = models.ExamplePhrases{
		PreferredOpenings:    cloneStrings(base.ExamplePhrases.PreferredOpenings),
		PreferredTransitions: cloneStrings(base.ExamplePhrases.PreferredTransitions),
		PreferredConclusions: cloneStrings(base.ExamplePhrases.PreferredConclusions),
		AvoidPhrases:         cloneStrings(base.ExamplePhrases.AvoidPhrases),
	}

	if delta.Instructions != nil {
		merged.Instructions = *delta.Instructions
	}
	if delta.Formality != nil {
		merged.ToneSettings.Formality = *delta.Formality
	}
	if delta.Enthusiasm != nil {
		merged.ToneSettings.Enthusiasm = *delta.Enthusiasm
	}
	if delta.Technicality != nil {
		merged.ToneSettings.Technicality = *delta.Technicality
	}
	merged.ToneSettings = merged.ToneSettings.Clamped()

	if delta.Keywords != nil {
		merged.Keywords = cloneStrings(*delta.Keywords)
	}
	if delta.PreferredOpenings != nil {
		merged.ExamplePhrases.PreferredOpenings = cloneStrings(*delta.PreferredOpenings)
	}
	if delta.PreferredTransitions != nil {
		merged.ExamplePhrases.PreferredTransitions = cloneStrings(*delta.PreferredTransitions)
	}
	if delta.PreferredConclusions != nil {
		merged.ExamplePhrases.PreferredConclusions = cloneStrings(*delta.PreferredConclusions)
	}
	if delta.AvoidPhrases != nil {
		merged.ExamplePhrases.AvoidPhrases = cloneStrings(*delta.AvoidPhrases)
	}

	return merged
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
