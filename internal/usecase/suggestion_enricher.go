package usecase

import (
	"context"
	"fmt"

	"ats-resume-scorer/internal/ai"
	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/scoring"
	"ats-resume-scorer/pkg/logger"
)

type suggestionEnricher struct {
	generator domain.ContentGenerator
}

// NewSuggestionEnricher returns an enricher that asks generator for suggestions
// and falls back to rubric-derived ones. generator may be nil.
func NewSuggestionEnricher(generator domain.ContentGenerator) domain.SuggestionEnricher {
	return &suggestionEnricher{generator: generator}
}

func (e *suggestionEnricher) Enrich(ctx context.Context, resume domain.ResumeRecord, jobDescription string, result domain.ScoringResult) (suggestions []string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Warn("suggestion generation panicked, using fallback", "panic", fmt.Sprint(r))
			suggestions = scoring.FallbackSuggestions(resume, jobDescription, result)
		}
	}()

	if e.generator != nil {
		generated, err := e.generate(ctx, resume, jobDescription, result)
		if err == nil {
			return scoring.Cap(generated, scoring.MaxSuggestions)
		}
		logger.Log.Warn("ai suggestions unavailable, using fallback", "error", err)
	}

	return scoring.FallbackSuggestions(resume, jobDescription, result)
}

func (e *suggestionEnricher) generate(ctx context.Context, resume domain.ResumeRecord, jobDescription string, result domain.ScoringResult) ([]string, error) {
	prompt := ai.SuggestionsPrompt(resume, jobDescription, result)
	logger.Log.Debug("requesting ai suggestions",
		"prompt_length", len(prompt),
		"prompt_preview", logger.Truncate(prompt, 120),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate suggestions: %w", err)
	}

	suggestions, err := ai.ParseStringList(raw)
	if err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}
	return suggestions, nil
}
