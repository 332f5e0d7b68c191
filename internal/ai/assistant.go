// Package ai defines the boundary between the pipeline and the LLM-backed
// extraction providers.
package ai

import (
	"context"
	"errors"

	"github.com/talentsift/cv-distiller/internal/candidate"
)

var (
	// ErrSchemaValidation means the provider answered, but the payload did
	// not conform to the expected schema. Recoverable: the caller falls
	// back to deterministic-only data.
	ErrSchemaValidation = errors.New("llm response does not match the expected schema")
	// ErrUpstream means the call itself failed: transport error, timeout
	// or a non-success status. Recovered the same way as a schema failure.
	ErrUpstream = errors.New("llm request failed")
)

// ResumeExtraction is the LLM-sourced partial of a resume record. Skills
// come back as a flat lowercase list; the reconciler decides how they merge
// with the categorised deterministic results.
type ResumeExtraction struct {
	FullName          string
	Email             string
	Phone             string
	Skills            []string
	Experience        []candidate.ExperienceEntry
	Education         []candidate.EducationEntry
	Summary           string
	YearsOfExperience *float64
	Raw               string
}

// ResumeExtractor produces a typed resume partial from plain resume text.
type ResumeExtractor interface {
	ExtractResume(ctx context.Context, text string) (*ResumeExtraction, error)
}

// QueryParser converts a free-text recruiter query into search criteria.
type QueryParser interface {
	ParseQuery(ctx context.Context, query string) (*candidate.SearchCriteria, error)
}
