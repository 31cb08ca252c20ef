package scoring

import (
	"strings"

	"ats-resume-scorer/internal/domain"
)

const (
	MinSuggestions = 3
	MaxSuggestions = 10

	missingKeywordLimit = 3
	// MissingKeywordsPrefix introduces the keyword list in the keyword suggestion.
	MissingKeywordsPrefix = "Add these keywords from the job description: "
)

var categorySuggestions = map[string]string{
	domain.CategoryContactInfo:            "Add complete contact information including name, email, phone number, and location",
	domain.CategoryQuantifiedAchievements: "Quantify your achievements with specific numbers, percentages, and metrics (e.g., 'Increased sales by 25%' rather than 'Increased sales')",
	domain.CategoryActionVerbs:            "Start bullet points with strong action verbs (e.g., 'Managed', 'Developed', 'Implemented') rather than weak verbs like 'Responsible for'",
	domain.CategoryKeywords:               "Incorporate more keywords from the job description throughout your resume",
	domain.CategoryFormatting:             "Ensure consistent formatting throughout your resume (dates, bullet points, spacing)",
}

var genericSuggestions = []string{
	"Tailor your resume to the job description for every application",
	"Use a simple, single-column layout with standard section headings",
	"Keep your resume concise and focused on relevant accomplishments",
}

// FallbackSuggestions derives suggestions from the sub-scores alone: one per
// category below 100 in rubric order, padded with generic advice to at least
// MinSuggestions and capped at MaxSuggestions.
func FallbackSuggestions(resume domain.ResumeRecord, jobDescription string, result domain.ScoringResult) []string {
	out := make([]string, 0, MaxSuggestions)
	for _, c := range Categories {
		score, ok := result.CategoryScores[c.Name]
		if !ok || score >= 100 {
			continue
		}
		if c.Name == domain.CategoryKeywords {
			if missing := MissingKeywords(resume, jobDescription, missingKeywordLimit); len(missing) > 0 {
				out = append(out, MissingKeywordsPrefix+strings.Join(missing, ", "))
				continue
			}
		}
		out = append(out, categorySuggestions[c.Name])
	}

	for _, g := range genericSuggestions {
		if len(out) >= MinSuggestions {
			break
		}
		out = append(out, g)
	}
	return Cap(out, MaxSuggestions)
}

// MissingKeywords returns up to limit job keywords that do not occur anywhere
// in the lowercased serialized resume.
func MissingKeywords(resume domain.ResumeRecord, jobDescription string, limit int) []string {
	haystack := strings.ToLower(Serialize(resume))
	var missing []string
	for _, kw := range Keywords(jobDescription) {
		if len(missing) == limit {
			break
		}
		if !strings.Contains(haystack, kw) {
			missing = append(missing, kw)
		}
	}
	return missing
}

// MergeUnique concatenates lists, keeping the first occurrence of each entry,
// and truncates the result to limit.
func MergeUnique(limit int, lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, limit)
	for _, list := range lists {
		for _, s := range list {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return Cap(out, limit)
}

func Cap(list []string, limit int) []string {
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
