package usecase

import (
	"context"
	"fmt"
	"strings"

	"ats-resume-scorer/internal/ai"
	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/scoring"
	"ats-resume-scorer/pkg/apperror"
	"ats-resume-scorer/pkg/logger"
)

const optimizeUnavailable = "Content optimization is temporarily unavailable"

type contentUsecase struct {
	writer   domain.ContentGenerator // rewrites prose, sampled warmer
	analyzer domain.ContentGenerator // extracts structure, sampled cooler
}

// NewContentUsecase serves content optimization and job keyword extraction.
// Either generator may be nil.
func NewContentUsecase(writer, analyzer domain.ContentGenerator) domain.ContentUsecase {
	return &contentUsecase{writer: writer, analyzer: analyzer}
}

func (u *contentUsecase) OptimizeContent(ctx context.Context, req domain.OptimizeContentRequest) (*domain.OptimizeContentResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperror.BadRequest("Content is required")
	}
	if req.Type == "" {
		req.Type = domain.OptimizeBulletPoint
	}

	if u.writer == nil {
		return nil, apperror.Unavailable(optimizeUnavailable, domain.ErrGeneratorUnavailable)
	}

	prompt := ai.OptimizePrompt(req.Type, req.Content, req.Context)
	optimized, err := u.writer.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Log.Warn("content optimization failed", "type", req.Type, "error", err)
		return nil, apperror.Unavailable(optimizeUnavailable, fmt.Errorf("%w: %w", domain.ErrGeneratorUnavailable, err))
	}

	return &domain.OptimizeContentResponse{
		OptimizedContent: strings.TrimSpace(optimized),
		OriginalContent:  req.Content,
	}, nil
}

func (u *contentUsecase) ExtractJobKeywords(ctx context.Context, jobDescription string) (*domain.JobKeywords, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, apperror.BadRequest("Job description is required")
	}

	if u.analyzer != nil {
		keywords, err := u.generateKeywords(ctx, jobDescription)
		if err == nil {
			return keywords, nil
		}
		logger.Log.Warn("ai keyword extraction failed, using fallback", "error", err)
	}

	fallback := scoring.ExtractJobKeywords(jobDescription)
	return &fallback, nil
}

func (u *contentUsecase) generateKeywords(ctx context.Context, jobDescription string) (*domain.JobKeywords, error) {
	raw, err := u.analyzer.GenerateContent(ctx, ai.JobKeywordsPrompt(jobDescription))
	if err != nil {
		return nil, err
	}

	var out domain.JobKeywords
	if err := ai.ParseObject(raw, &out); err != nil {
		return nil, err
	}
	if out.JobTitle == "" && len(out.RequiredSkills) == 0 && len(out.Keywords) == 0 {
		return nil, fmt.Errorf("model returned an empty keyword summary")
	}

	out.RequiredSkills = nonNil(out.RequiredSkills)
	out.PreferredSkills = nonNil(out.PreferredSkills)
	out.Keywords = nonNil(out.Keywords)
	return &out, nil
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
