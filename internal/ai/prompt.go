package ai

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"ats-resume-scorer/internal/domain"
)

//go:embed prompts/*.md
var promptFS embed.FS

func template(name string) string {
	b, err := promptFS.ReadFile("prompts/" + name + ".md")
	if err != nil {
		panic(fmt.Sprintf("missing prompt template %q", name))
	}
	return string(b)
}

var (
	suggestionsTemplate = template("suggestions")
	jobKeywordsTemplate = template("job_keywords")
	optimizeTemplates   = map[string]string{
		domain.OptimizeBulletPoint: template("optimize_bullet_point"),
		domain.OptimizeSummary:     template("optimize_summary"),
		domain.OptimizeOther:       template("optimize_other"),
	}
)

// categoryOrder fixes the listing order of sub-scores in prompts.
var categoryOrder = []string{
	domain.CategoryContactInfo,
	domain.CategoryQuantifiedAchievements,
	domain.CategoryActionVerbs,
	domain.CategoryKeywords,
	domain.CategoryFormatting,
}

// SuggestionsPrompt asks for a JSON array of improvement suggestions.
func SuggestionsPrompt(resume domain.ResumeRecord, jobDescription string, result domain.ScoringResult) string {
	var scores strings.Builder
	for _, name := range categoryOrder {
		fmt.Fprintf(&scores, "- %s: %d\n", name, result.CategoryScores[name])
	}

	issues := "- none"
	if len(result.Issues) > 0 {
		issues = "- " + strings.Join(result.Issues, "\n- ")
	}

	resumeJSON, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		resumeJSON = []byte("{}")
	}

	return fill(suggestionsTemplate, map[string]string{
		"ATS_SCORE":       fmt.Sprint(result.ATSScore),
		"CATEGORY_SCORES": strings.TrimRight(scores.String(), "\n"),
		"ISSUES":          issues,
		"JOB_DESCRIPTION": jobDescription,
		"RESUME_JSON":     string(resumeJSON),
	})
}

// OptimizePrompt builds the rewrite prompt for one optimization type.
// Unknown types use the generic template.
func OptimizePrompt(kind, content, context string) string {
	tmpl, ok := optimizeTemplates[kind]
	if !ok {
		tmpl = optimizeTemplates[domain.OptimizeOther]
	}
	if context = strings.TrimSpace(context); context != "" {
		context = "\nAdditional context (target role or job description):\n" + context
	}
	return fill(tmpl, map[string]string{
		"CONTENT": content,
		"CONTEXT": context,
	})
}

func JobKeywordsPrompt(jobDescription string) string {
	return fill(jobKeywordsTemplate, map[string]string{"JOB_DESCRIPTION": jobDescription})
}

func fill(tmpl string, values map[string]string) string {
	for k, v := range values {
		tmpl = strings.ReplaceAll(tmpl, "{{"+k+"}}", v)
	}
	return strings.TrimSpace(tmpl)
}
