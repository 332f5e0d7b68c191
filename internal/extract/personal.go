package extract

import (
	"regexp"
	"strings"
)

// PersonalInfo is the deterministic identity partial. Location and Summary
// are always empty here: recovering them needs more than pattern matching,
// so they can only come from the LLM path.
type PersonalInfo struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Summary  string
}

var (
	emailShape = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	// Loose international/US phone shape: optional country code, then a
	// 3-3-4 grouping with space, dot or dash separators.
	phoneShape = regexp.MustCompile(`\b(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)
)

// Personal extracts name, email and phone from the text. The name is a
// heuristic, not a validated value: resumes almost always open with the
// candidate's name, so the first non-empty line is taken as-is.
func Personal(text string) PersonalInfo {
	info := PersonalInfo{}

	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			info.Name = trimmed
			break
		}
	}

	info.Email = emailShape.FindString(text)
	info.Phone = phoneShape.FindString(text)

	return info
}
