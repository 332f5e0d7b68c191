package extract

import (
	"regexp"
	"strings"
)

// Span is a single context window captured around a section pattern match.
type Span struct {
	Context string `json:"context"`
}

// Unlike the skill classifier, the section extractors keep every match:
// the windows are raw evidence handed to the reconciler, not confirmed
// facts, so there is no indicator gating here.
var educationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(bachelor|master|phd|b\.?s\.?|m\.?s\.?|b\.?e\.?|m\.?e\.?)`),
	regexp.MustCompile(`(?i)(university|college|institute|school)`),
	regexp.MustCompile(`(?i)(computer science|engineering|information technology|it)`),
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(years? of experience)`),
	regexp.MustCompile(`(?i)(senior|junior|lead|principal)`),
	regexp.MustCompile(`(?i)(developer|engineer|architect|consultant)`),
}

// Education returns a context window for every education-related pattern
// match in the text.
func Education(text string) []Span {
	return sectionSpans(text, educationPatterns)
}

// Experience returns a context window for every experience-related pattern
// match in the text.
func Experience(text string) []Span {
	return sectionSpans(text, experiencePatterns)
}

func sectionSpans(text string, patterns []*regexp.Regexp) []Span {
	spans := []Span{}
	for _, re := range patterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			context := strings.TrimSpace(window(text, loc[0], loc[1]))
			spans = append(spans, Span{Context: context})
		}
	}
	return spans
}
