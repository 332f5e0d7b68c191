package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/talentsift/cv-distiller/internal/ai"
	"github.com/talentsift/cv-distiller/internal/candidate"
	"github.com/talentsift/cv-distiller/internal/logger"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed resume_prompt.md
var resumePromptTemplate string

//go:embed query_prompt.md
var queryPromptTemplate string

const defaultMaxLogLength = 200

// Extractor turns resume text and recruiter queries into typed records via
// a completion endpoint. Both schemas share the same request/validate
// contract: one non-streaming call, strict parse, no automatic retry.
type Extractor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewExtractor(generator contentGenerator, log *zap.Logger, maxLogLength int) *Extractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Extractor{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// ExtractResume implements ai.ResumeExtractor.
func (e *Extractor) ExtractResume(ctx context.Context, text string) (*ai.ResumeExtraction, error) {
	prompt := strings.ReplaceAll(resumePromptTemplate, "{{RESUME_TEXT}}", text)

	raw, err := e.complete(ctx, "resume", prompt)
	if err != nil {
		return nil, err
	}

	var payload resumePayload
	if err := decodeStrict(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrSchemaValidation, err)
	}

	extraction := payload.toExtraction()
	extraction.Raw = raw

	if extraction.Email != "" && !candidate.ValidEmail(extraction.Email) {
		e.logger.Debug("dropping llm email failing shape check",
			zap.String("email_preview", logger.TruncateForLog(extraction.Email, e.maxLogLen)),
		)
		extraction.Email = ""
	}

	if extraction.YearsOfExperience != nil && *extraction.YearsOfExperience < 0 {
		extraction.YearsOfExperience = nil
	}

	return extraction, nil
}

// ParseQuery implements ai.QueryParser.
func (e *Extractor) ParseQuery(ctx context.Context, query string) (*candidate.SearchCriteria, error) {
	prompt := strings.ReplaceAll(queryPromptTemplate, "{{QUERY}}", query)

	raw, err := e.complete(ctx, "query", prompt)
	if err != nil {
		return nil, err
	}

	var payload criteriaPayload
	if err := decodeStrict(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrSchemaValidation, err)
	}

	criteria := &candidate.SearchCriteria{
		Skills:             normalizeSkills(payload.Skills),
		MinExperienceYears: payload.MinExperienceYears,
	}

	if location := strings.TrimSpace(payload.Location); location != "" {
		criteria.Location = &location
	}

	if criteria.MinExperienceYears != nil && *criteria.MinExperienceYears < 0 {
		criteria.MinExperienceYears = nil
	}

	return criteria, nil
}

func (e *Extractor) complete(ctx context.Context, schema, prompt string) (string, error) {
	e.logger.Debug("llm extraction request",
		zap.String("schema", schema),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ai.ErrUpstream, err)
	}

	e.logger.Debug("llm extraction response",
		zap.String("schema", schema),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, e.maxLogLen)),
	)

	return raw, nil
}

type resumePayload struct {
	FullName          string              `mapstructure:"full_name"`
	Email             string              `mapstructure:"email"`
	Phone             string              `mapstructure:"phone"`
	Skills            []string            `mapstructure:"skills"`
	Experience        []experiencePayload `mapstructure:"experience"`
	Education         []educationPayload  `mapstructure:"education"`
	Summary           string              `mapstructure:"summary"`
	YearsOfExperience *float64            `mapstructure:"years_of_experience"`
}

type experiencePayload struct {
	Company     string `mapstructure:"company"`
	Role        string `mapstructure:"role"`
	Duration    string `mapstructure:"duration"`
	Description string `mapstructure:"description"`
}

type educationPayload struct {
	Institution string `mapstructure:"institution"`
	Degree      string `mapstructure:"degree"`
	Year        string `mapstructure:"year"`
}

type criteriaPayload struct {
	Skills             []string `mapstructure:"skills"`
	Location           string   `mapstructure:"location"`
	MinExperienceYears *float64 `mapstructure:"min_experience_years"`
}

func (p resumePayload) toExtraction() *ai.ResumeExtraction {
	extraction := &ai.ResumeExtraction{
		FullName:          strings.TrimSpace(p.FullName),
		Email:             strings.TrimSpace(p.Email),
		Phone:             strings.TrimSpace(p.Phone),
		Skills:            normalizeSkills(p.Skills),
		Summary:           strings.TrimSpace(p.Summary),
		YearsOfExperience: p.YearsOfExperience,
	}

	for _, entry := range p.Experience {
		extraction.Experience = append(extraction.Experience, candidate.ExperienceEntry{
			Company:     strings.TrimSpace(entry.Company),
			Role:        strings.TrimSpace(entry.Role),
			Duration:    strings.TrimSpace(entry.Duration),
			Description: strings.TrimSpace(entry.Description),
		})
	}

	for _, entry := range p.Education {
		extraction.Education = append(extraction.Education, candidate.EducationEntry{
			Institution: strings.TrimSpace(entry.Institution),
			Degree:      strings.TrimSpace(entry.Degree),
			Year:        strings.TrimSpace(entry.Year),
		})
	}

	return extraction
}

// decodeStrict parses the raw completion as JSON and maps it onto the
// target payload. The weakly-typed decode absorbs the usual model quirks:
// numbers for years arriving as strings, years arriving as integers.
func decodeStrict(raw string, target any) error {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return fmt.Errorf("parse completion as json object: %v", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("map payload onto schema: %v", err)
	}

	return nil
}

// extractJSON strips markdown fences that models keep emitting despite the
// raw-JSON-only instruction.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func normalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	result := make([]string, 0, len(skills))

	for _, skill := range skills {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	return result
}
