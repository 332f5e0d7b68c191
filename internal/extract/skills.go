// Package extract implements the deterministic (non-LLM) extraction passes:
// the pattern skill classifier and the context-window extractors for
// education, experience and personal info. All passes are pure functions
// over the input text and never fail; at worst they return empty results.
package extract

import (
	"regexp"
	"strings"

	"github.com/talentsift/cv-distiller/internal/candidate"
	"github.com/talentsift/cv-distiller/internal/vocabulary"
)

// contextRadius is the number of characters inspected on each side of a
// pattern match when judging its intent.
const contextRadius = 50

// positiveIndicators are the phrases whose presence in a context window
// confirms that a skill mention is genuine.
var positiveIndicators = []string{
	"proficient", "experienced", "expert", "skilled",
	"knowledge", "familiar", "worked with", "using",
	"developed", "implemented", "created", "built",
	"skills", "technologies", "stack", "tools",
	"particulars", "expertise", "proficient in",
	"experienced with", "familiar with",
}

// listMarkers confirm a mention that sits inside an enumeration, such as a
// dedicated skills section.
var listMarkers = []string{"skills", "technologies", "stack", "particulars"}

// Skills scans text for known skill aliases and returns the confirmed
// canonical names grouped per vocabulary category. Categories appear in
// enumeration order and always appear, even when empty; within a category,
// skills appear in vocabulary order. A canonical name is reported at most
// once no matter how many aliases or occurrences matched.
func Skills(table *vocabulary.Table, text string) []candidate.SkillGroup {
	lower := strings.ToLower(text)

	groups := make([]candidate.SkillGroup, 0, len(table.Categories()))
	for _, category := range table.Categories() {
		group := candidate.SkillGroup{Category: category.Name, Skills: []string{}}

		for _, skill := range category.Skills {
			if !aliasPresent(lower, skill.Aliases) {
				continue
			}
			if confirmed(lower, skill.Aliases) {
				group.Skills = append(group.Skills, skill.Canonical)
			}
		}

		groups = append(groups, group)
	}

	return groups
}

// aliasPresent is the cheap substring pre-check that lets the classifier
// skip the regex scan for skills that cannot possibly occur.
func aliasPresent(lower string, aliases []string) bool {
	for _, alias := range aliases {
		if strings.Contains(lower, alias) {
			return true
		}
	}
	return false
}

// confirmed re-scans for every present alias with word-boundary matching
// and accepts the skill on the first occurrence whose context window shows
// a positive indicator or list-structure evidence. An alias that only ever
// appears in neutral prose confirms nothing.
func confirmed(lower string, aliases []string) bool {
	for _, alias := range aliases {
		if !strings.Contains(lower, alias) {
			continue
		}

		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\b`)
		for _, loc := range re.FindAllStringIndex(lower, -1) {
			w := window(lower, loc[0], loc[1])
			if hasPositiveIndicator(w) || hasListShape(w) {
				return true
			}
		}
	}
	return false
}

// window returns the substring of text spanning contextRadius characters
// before and after the match at [start, end), clamped to the text bounds.
func window(text string, start, end int) string {
	from := start - contextRadius
	if from < 0 {
		from = 0
	}
	to := end + contextRadius
	if to > len(text) {
		to = len(text)
	}
	return text[from:to]
}

func hasPositiveIndicator(w string) bool {
	for _, indicator := range positiveIndicators {
		if strings.Contains(w, indicator) {
			return true
		}
	}
	return false
}

func hasListShape(w string) bool {
	if strings.Contains(w, ",") {
		return true
	}
	for _, marker := range listMarkers {
		if strings.Contains(w, marker) {
			return true
		}
	}
	return false
}
