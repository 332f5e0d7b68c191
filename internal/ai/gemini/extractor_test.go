package gemini

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/talentsift/cv-distiller/internal/ai"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestExtractResume(t *testing.T) {
	stub := &stubGenerator{response: `{
		"full_name": "Jane Roe",
		"email": "jane@example.com",
		"phone": "555-123-4567",
		"skills": ["Python", "python", " AWS "],
		"experience": [{"company": "Acme", "role": "Engineer", "duration": "2019-2023", "description": "Backend work"}],
		"education": [{"institution": "MIT", "degree": "BSc", "year": "2019"}],
		"summary": "Backend engineer.",
		"years_of_experience": 7.5
	}`}
	extractor := NewExtractor(stub, nil, 0)

	extraction, err := extractor.ExtractResume(context.Background(), "resume body goes here")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if extraction.FullName != "Jane Roe" {
		t.Fatalf("unexpected full name: %q", extraction.FullName)
	}

	if !reflect.DeepEqual(extraction.Skills, []string{"python", "aws"}) {
		t.Fatalf("expected normalized and deduplicated skills, got %v", extraction.Skills)
	}

	if len(extraction.Experience) != 1 || extraction.Experience[0].Company != "Acme" {
		t.Fatalf("unexpected experience: %v", extraction.Experience)
	}

	if len(extraction.Education) != 1 || extraction.Education[0].Institution != "MIT" {
		t.Fatalf("unexpected education: %v", extraction.Education)
	}

	if extraction.YearsOfExperience == nil || *extraction.YearsOfExperience != 7.5 {
		t.Fatalf("unexpected years of experience: %v", extraction.YearsOfExperience)
	}

	if !strings.Contains(stub.lastPrompt, "resume body goes here") {
		t.Fatalf("expected the resume text inside the prompt")
	}
}

func TestExtractResumeFencedResponse(t *testing.T) {
	stub := &stubGenerator{response: "```json\n{\"full_name\": \"Jane Roe\", \"skills\": []}\n```"}
	extractor := NewExtractor(stub, nil, 0)

	extraction, err := extractor.ExtractResume(context.Background(), "text")
	if err != nil {
		t.Fatalf("expected fenced payload to be accepted, got %v", err)
	}

	if extraction.FullName != "Jane Roe" {
		t.Fatalf("unexpected full name: %q", extraction.FullName)
	}
}

func TestExtractResumeMalformedJSON(t *testing.T) {
	stub := &stubGenerator{response: "I could not produce JSON, sorry."}
	extractor := NewExtractor(stub, nil, 0)

	_, err := extractor.ExtractResume(context.Background(), "text")
	if !errors.Is(err, ai.ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
}

func TestExtractResumeUpstreamError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("connection reset")}
	extractor := NewExtractor(stub, nil, 0)

	_, err := extractor.ExtractResume(context.Background(), "text")
	if !errors.Is(err, ai.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestExtractResumeDropsInvalidEmail(t *testing.T) {
	stub := &stubGenerator{response: `{"email": "not-an-email", "skills": []}`}
	extractor := NewExtractor(stub, nil, 0)

	extraction, err := extractor.ExtractResume(context.Background(), "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if extraction.Email != "" {
		t.Fatalf("expected malformed email to be dropped, got %q", extraction.Email)
	}
}

func TestExtractResumeNegativeYearsDropped(t *testing.T) {
	stub := &stubGenerator{response: `{"skills": [], "years_of_experience": -2}`}
	extractor := NewExtractor(stub, nil, 0)

	extraction, err := extractor.ExtractResume(context.Background(), "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if extraction.YearsOfExperience != nil {
		t.Fatalf("expected negative years to be dropped, got %v", *extraction.YearsOfExperience)
	}
}

func TestExtractResumeWeaklyTypedYears(t *testing.T) {
	stub := &stubGenerator{response: `{"skills": [], "years_of_experience": "8"}`}
	extractor := NewExtractor(stub, nil, 0)

	extraction, err := extractor.ExtractResume(context.Background(), "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if extraction.YearsOfExperience == nil || *extraction.YearsOfExperience != 8 {
		t.Fatalf("expected string years to coerce to 8, got %v", extraction.YearsOfExperience)
	}
}

func TestParseQuery(t *testing.T) {
	stub := &stubGenerator{response: `{"skills": ["PHP"], "location": null, "min_experience_years": 8.0}`}
	extractor := NewExtractor(stub, nil, 0)

	criteria, err := extractor.ParseQuery(context.Background(), "PHP Developer, 8+ year experience")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(criteria.Skills, []string{"php"}) {
		t.Fatalf("unexpected skills: %v", criteria.Skills)
	}

	if criteria.Location != nil {
		t.Fatalf("expected nil location, got %q", *criteria.Location)
	}

	if criteria.MinExperienceYears == nil || *criteria.MinExperienceYears != 8.0 {
		t.Fatalf("unexpected minimum experience: %v", criteria.MinExperienceYears)
	}

	if !strings.Contains(stub.lastPrompt, "PHP Developer, 8+ year experience") {
		t.Fatalf("expected the query inside the prompt")
	}
}

func TestParseQueryLocation(t *testing.T) {
	stub := &stubGenerator{response: `{"skills": [], "location": " Berlin ", "min_experience_years": null}`}
	extractor := NewExtractor(stub, nil, 0)

	criteria, err := extractor.ParseQuery(context.Background(), "candidates in Berlin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if criteria.Location == nil || *criteria.Location != "Berlin" {
		t.Fatalf("expected trimmed location, got %v", criteria.Location)
	}
}

func TestParseQueryUpstreamError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("timeout")}
	extractor := NewExtractor(stub, nil, 0)

	_, err := extractor.ParseQuery(context.Background(), "any query")
	if !errors.Is(err, ai.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
