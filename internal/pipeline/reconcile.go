package pipeline

import (
	"github.com/talentsift/cv-distiller/internal/ai"
	"github.com/talentsift/cv-distiller/internal/candidate"
	"github.com/talentsift/cv-distiller/internal/vocabulary"
)

// reconcile merges the deterministic partial with the LLM extraction into one
// record. A nil llm means the LLM call was skipped or failed. It never fails:
// fields neither path populated stay empty.
func reconcile(table *vocabulary.Table, det deterministicPartial, llm *ai.ResumeExtraction) *candidate.ResumeRecord {
	record := &candidate.ResumeRecord{
		FullName: det.personal.Name,
		Email:    det.personal.Email,
		Phone:    det.personal.Phone,
	}

	var llmSkills []string
	if llm != nil {
		if llm.FullName != "" {
			record.FullName = llm.FullName
		}
		if llm.Email != "" {
			record.Email = llm.Email
		}
		if llm.Phone != "" {
			record.Phone = llm.Phone
		}
		record.Summary = llm.Summary
		record.YearsOfExperience = llm.YearsOfExperience
		llmSkills = llm.Skills
	}

	record.Skills = mergeSkills(table, det.skills, llmSkills)

	if llm != nil {
		// The LLM answered, so its structured entries win even when
		// empty: an empty list from a successful call is an answer.
		record.Experience = llm.Experience
		record.Education = llm.Education
	} else {
		for _, span := range det.experience {
			record.Experience = append(record.Experience, candidate.ExperienceEntry{Context: span.Context})
		}
		for _, span := range det.education {
			record.Education = append(record.Education, candidate.EducationEntry{Context: span.Context})
		}
	}

	return record
}

// mergeSkills unions the categorised deterministic skills with the flat LLM
// list. The LLM path reports skills without categories, so any token the
// deterministic path did not already place is appended under the catch-all
// category. Categorisation belongs to the pattern classifier alone.
func mergeSkills(table *vocabulary.Table, det []candidate.SkillGroup, llm []string) []candidate.SkillGroup {
	categories := table.Categories()

	groups := make([]candidate.SkillGroup, 0, len(categories)+1)
	position := make(map[string]int, len(categories))
	for _, category := range categories {
		position[category.Name] = len(groups)
		groups = append(groups, candidate.SkillGroup{Category: category.Name, Skills: []string{}})
	}

	seen := make(map[string]bool)
	for _, group := range det {
		i, ok := position[group.Category]
		if !ok {
			position[group.Category] = len(groups)
			i = len(groups)
			groups = append(groups, candidate.SkillGroup{Category: group.Category, Skills: []string{}})
		}
		for _, skill := range group.Skills {
			groups[i].Skills = append(groups[i].Skills, skill)
			seen[skill] = true
		}
	}

	other := candidate.SkillGroup{Category: vocabulary.OtherCategory, Skills: []string{}}
	for _, token := range llm {
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		other.Skills = append(other.Skills, token)
	}
	if len(other.Skills) > 0 {
		groups = append(groups, other)
	}

	return groups
}
