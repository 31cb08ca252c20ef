package domain

import "context"

// Category names as they appear in category_scores.
const (
	CategoryContactInfo            = "contactInfo"
	CategoryQuantifiedAchievements = "quantifiedAchievements"
	CategoryActionVerbs            = "actionVerbs"
	CategoryKeywords               = "keywords"
	CategoryFormatting             = "formatting"
)

// ScoringResult is the deterministic output of the scoring engine.
type ScoringResult struct {
	ATSScore       int            `json:"ats_score"`
	CategoryScores map[string]int `json:"category_scores"`
	Issues         []string       `json:"issues"`
}

// AnalyzeRequest is the body of POST /api/analyze-resume.
// ResumeContent is either a string or, for structured input, a JSON object.
type AnalyzeRequest struct {
	ResumeContent  any    `json:"resume_content" swaggertype:"string"`
	JobDescription string `json:"job_description"`
	Format         string `json:"format" binding:"omitempty,oneof=structured freeform"`
}

// AnalysisResponse is the payload returned by the analysis endpoint.
type AnalysisResponse struct {
	ATSScore        int            `json:"ats_score"`
	CategoryScores  map[string]int `json:"category_scores"`
	Issues          []string       `json:"issues"`
	MissingKeywords []string       `json:"missing_keywords"`
	Suggestions     []string       `json:"suggestions"`
}

// Scorer computes a ScoringResult. Implementations must be pure.
type Scorer interface {
	Score(resume ResumeRecord, jobDescription string) ScoringResult
}

// SuggestionEnricher produces improvement suggestions for a scored resume.
// It never fails: any generation problem degrades to deterministic suggestions.
type SuggestionEnricher interface {
	Enrich(ctx context.Context, resume ResumeRecord, jobDescription string, result ScoringResult) []string
}

// ContentGenerator is the capability the AI layer exposes: prompt in, raw text out.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type AnalysisUsecase interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalysisResponse, error)
	ExportReport(ctx context.Context, req AnalyzeRequest, format string) ([]byte, string, error)
}
