package candidate

import "regexp"

// emailPattern is the basic local@domain.tld shape accepted everywhere a
// candidate email is validated. It is deliberately loose: the goal is to
// reject garbage picked up from free text, not to implement RFC 5322.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// SkillGroup holds the canonical skill names recognised under one category.
// Group order follows the vocabulary's category enumeration; skill order is
// the order in which skills were confirmed.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// ExperienceEntry is one work-experience item. Structured fields are filled
// by the LLM path; a degraded entry produced by the deterministic path
// carries only Context.
type ExperienceEntry struct {
	Company     string `json:"company,omitempty"`
	Role        string `json:"role,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
	Context     string `json:"context,omitempty"`
}

// EducationEntry is one education item, with the same structured/degraded
// split as ExperienceEntry.
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Year        string `json:"year,omitempty"`
	Context     string `json:"context,omitempty"`
}

// ResumeRecord is the final structured output of one extraction run. It is
// constructed once by the reconciler and never mutated afterwards;
// persistence, if any, is the caller's concern.
type ResumeRecord struct {
	FullName          string            `json:"full_name"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone,omitempty"`
	Skills            []SkillGroup      `json:"skills"`
	Experience        []ExperienceEntry `json:"experience"`
	Education         []EducationEntry  `json:"education"`
	Summary           string            `json:"summary,omitempty"`
	YearsOfExperience *float64          `json:"years_of_experience,omitempty"`
}

// SearchCriteria is the structured form of a free-text recruiter query.
// Optional fields stay nil when the query does not mention them.
type SearchCriteria struct {
	Skills             []string `json:"skills"`
	Location           *string  `json:"location"`
	MinExperienceYears *float64 `json:"min_experience_years"`
}

// EmptyCriteria returns criteria with no skills and unset optionals, the
// fallback value when query parsing cannot produce anything better.
func EmptyCriteria() *SearchCriteria {
	return &SearchCriteria{Skills: []string{}}
}
