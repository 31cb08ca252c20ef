package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/scoring"
	"ats-resume-scorer/internal/usecase"
	"ats-resume-scorer/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOptimizeContent(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank content", func(t *testing.T) {
		uc := usecase.NewContentUsecase(new(MockGenerator), nil)
		_, err := uc.OptimizeContent(ctx, domain.OptimizeContentRequest{Content: "  "})
		assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))
	})

	t.Run("Defaults to bullet point rewrite", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("GenerateContent", mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "STAR") && strings.Contains(p, "Fixed bugs")
		})).Return("  1. Resolved 40 defects  \n", nil)

		uc := usecase.NewContentUsecase(gen, nil)
		resp, err := uc.OptimizeContent(ctx, domain.OptimizeContentRequest{Content: "Fixed bugs"})
		require.NoError(t, err)
		assert.Equal(t, "1. Resolved 40 defects", resp.OptimizedContent)
		assert.Equal(t, "Fixed bugs", resp.OriginalContent)
		gen.AssertExpectations(t)
	})

	t.Run("No generator", func(t *testing.T) {
		uc := usecase.NewContentUsecase(nil, nil)
		_, err := uc.OptimizeContent(ctx, domain.OptimizeContentRequest{Content: "x", Type: domain.OptimizeSummary})
		assert.Equal(t, http.StatusServiceUnavailable, apperror.StatusOf(err))
		assert.ErrorIs(t, err, domain.ErrGeneratorUnavailable)
	})

	t.Run("Generator failure", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("GenerateContent", mock.Anything, mock.Anything).Return("", context.DeadlineExceeded)

		uc := usecase.NewContentUsecase(gen, nil)
		_, err := uc.OptimizeContent(ctx, domain.OptimizeContentRequest{Content: "x"})
		assert.Equal(t, http.StatusServiceUnavailable, apperror.StatusOf(err))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestExtractJobKeywords(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank description", func(t *testing.T) {
		_, err := usecase.NewContentUsecase(nil, nil).ExtractJobKeywords(ctx, "")
		assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))
	})

	t.Run("Model output is parsed", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("GenerateContent", mock.Anything, mock.Anything).Return("```json\n"+
			`{"job_title": "Platform Engineer", "company_name": "Acme", "required_skills": ["Go"], "keywords": ["platform"]}`+
			"\n```", nil)

		got, err := usecase.NewContentUsecase(nil, gen).ExtractJobKeywords(ctx, "Platform Engineer at Acme")
		require.NoError(t, err)
		assert.Equal(t, "Platform Engineer", got.JobTitle)
		assert.Equal(t, "Acme", got.CompanyName)
		assert.Equal(t, []string{"Go"}, got.RequiredSkills)
		assert.Equal(t, []string{}, got.PreferredSkills)
	})

	t.Run("Unparseable output uses deterministic extraction", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("GenerateContent", mock.Anything, mock.Anything).Return("I cannot help with that.", nil)

		jd := "Senior Python engineer with Docker"
		got, err := usecase.NewContentUsecase(nil, gen).ExtractJobKeywords(ctx, jd)
		require.NoError(t, err)
		want := scoring.ExtractJobKeywords(jd)
		assert.Equal(t, &want, got)
	})

	t.Run("Generator error uses deterministic extraction", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("GenerateContent", mock.Anything, mock.Anything).Return("", errors.New("503"))

		got, err := usecase.NewContentUsecase(nil, gen).ExtractJobKeywords(ctx, "the a of")
		require.NoError(t, err)
		assert.Equal(t, "Software Engineer", got.JobTitle)
	})
}
