package domain

import (
	"context"
	"errors"
)

// Optimization types for POST /api/optimize-content.
const (
	OptimizeBulletPoint = "bullet_point"
	OptimizeSummary     = "summary"
	OptimizeOther       = "other"
)

// ErrGeneratorUnavailable is returned when an operation has no deterministic substitute
// for generated text and the generator is missing or failed.
var ErrGeneratorUnavailable = errors.New("content generator unavailable")

type OptimizeContentRequest struct {
	Content string `json:"content"`
	Type    string `json:"type" binding:"omitempty,oneof=bullet_point summary other"`
	Context string `json:"context"`
}

type OptimizeContentResponse struct {
	OptimizedContent string `json:"optimized_content"`
	OriginalContent  string `json:"original_content"`
}

type ExtractKeywordsRequest struct {
	JobDescription string `json:"job_description"`
}

// JobKeywords is the structured summary of a job description.
type JobKeywords struct {
	JobTitle        string   `json:"job_title"`
	CompanyName     string   `json:"company_name"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	Keywords        []string `json:"keywords"`
}

type ContentUsecase interface {
	OptimizeContent(ctx context.Context, req OptimizeContentRequest) (*OptimizeContentResponse, error)
	ExtractJobKeywords(ctx context.Context, jobDescription string) (*JobKeywords, error)
}
