package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"strings"
	"testing"

	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/resume"
	"ats-resume-scorer/internal/scoring"
	"ats-resume-scorer/internal/usecase"
	"ats-resume-scorer/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var fixedResult = domain.ScoringResult{
	ATSScore: 82,
	CategoryScores: map[string]int{
		domain.CategoryContactInfo:            100,
		domain.CategoryQuantifiedAchievements: 60,
		domain.CategoryActionVerbs:            100,
		domain.CategoryKeywords:               75,
		domain.CategoryFormatting:             90,
	},
	Issues: []string{
		"Lack of quantified achievements with numbers and metrics",
		"Missing important keywords from the job description",
		"Inconsistent formatting or poor structure that may confuse ATS systems",
	},
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank input is rejected", func(t *testing.T) {
		uc := usecase.NewAnalysisUsecase(resume.NewNormalizer(), scoring.NewEngine(), new(MockEnricher))

		for _, req := range []domain.AnalyzeRequest{
			{ResumeContent: "", JobDescription: "Go developer"},
			{ResumeContent: "Built things", JobDescription: "  "},
			{ResumeContent: nil, JobDescription: "Go developer"},
		} {
			_, err := uc.Analyze(ctx, req)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))
		}
	})

	t.Run("Failing generator degrades to rubric suggestions", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("GenerateContent", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))
		uc := usecase.NewAnalysisUsecase(resume.NewNormalizer(), scoring.NewEngine(), usecase.NewSuggestionEnricher(gen))

		resp, err := uc.Analyze(ctx, domain.AnalyzeRequest{
			ResumeContent:  "Managed a team",
			JobDescription: "Looking for React developers",
		})
		require.NoError(t, err)

		assert.Equal(t, 35, resp.ATSScore)
		assert.Equal(t, 100, resp.CategoryScores[domain.CategoryActionVerbs])
		assert.Equal(t, []string{"looking", "react", "developers"}, resp.MissingKeywords)
		require.Len(t, resp.Suggestions, 6)
		assert.True(t, strings.HasPrefix(resp.Suggestions[0], "Add complete contact information"))
		assert.Equal(t, scoring.MissingKeywordsPrefix+"looking, react, developers", resp.Suggestions[2])
		assert.Equal(t, resp.Issues, resp.Suggestions[3:])
		gen.AssertExpectations(t)
	})

	t.Run("Suggestions come before issues without duplicates", func(t *testing.T) {
		scorer := new(MockScorer)
		scorer.On("Score", mock.Anything, "Go role").Return(fixedResult)
		enricher := new(MockEnricher)
		enricher.On("Enrich", mock.Anything, mock.Anything, "Go role", fixedResult).Return([]string{
			"Lead with impact",
			"Missing important keywords from the job description",
		})

		uc := usecase.NewAnalysisUsecase(resume.NewNormalizer(), scorer, enricher)
		resp, err := uc.Analyze(ctx, domain.AnalyzeRequest{ResumeContent: "text", JobDescription: "Go role"})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"Lead with impact",
			"Missing important keywords from the job description",
			"Lack of quantified achievements with numbers and metrics",
			"Inconsistent formatting or poor structure that may confuse ATS systems",
		}, resp.Suggestions)
		assert.Empty(t, resp.MissingKeywords)
		assert.NotNil(t, resp.MissingKeywords)
	})

	t.Run("Suggestions are capped at ten", func(t *testing.T) {
		many := make([]string, 12)
		for i := range many {
			many[i] = "tip " + string(rune('a'+i))
		}
		scorer := new(MockScorer)
		scorer.On("Score", mock.Anything, mock.Anything).Return(fixedResult)
		enricher := new(MockEnricher)
		enricher.On("Enrich", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(many)

		uc := usecase.NewAnalysisUsecase(resume.NewNormalizer(), scorer, enricher)
		resp, err := uc.Analyze(ctx, domain.AnalyzeRequest{ResumeContent: "text", JobDescription: "role"})
		require.NoError(t, err)
		assert.Len(t, resp.Suggestions, 10)
		assert.Equal(t, "tip a", resp.Suggestions[0])
	})

	t.Run("Unexpected failure serves the fallback payload", func(t *testing.T) {
		scorer := new(MockScorer)
		scorer.On("Score", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			panic("index out of range")
		})

		uc := usecase.NewAnalysisUsecase(resume.NewNormalizer(), scorer, new(MockEnricher))
		resp, err := uc.Analyze(ctx, domain.AnalyzeRequest{ResumeContent: "text", JobDescription: "role"})
		require.NoError(t, err)
		assert.Equal(t, usecase.FallbackAnalysis(), resp)
		assert.Equal(t, 75, resp.ATSScore)
		assert.Equal(t, []string{"TypeScript", "Kubernetes", "CI/CD"}, resp.MissingKeywords)
	})
}

func TestExportReport(t *testing.T) {
	ctx := context.Background()
	req := domain.AnalyzeRequest{ResumeContent: "text", JobDescription: "Go role"}

	newUsecase := func() domain.AnalysisUsecase {
		scorer := new(MockScorer)
		scorer.On("Score", mock.Anything, mock.Anything).Return(fixedResult)
		enricher := new(MockEnricher)
		enricher.On("Enrich", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]string{scoring.MissingKeywordsPrefix + "kubernetes, terraform"})
		return usecase.NewAnalysisUsecase(resume.NewNormalizer(), scorer, enricher)
	}

	t.Run("Excel workbook", func(t *testing.T) {
		data, filename, err := newUsecase().ExportReport(ctx, req, "xlsx")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filename, "ats_report_"))
		assert.True(t, strings.HasSuffix(filename, ".xlsx"))

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Scores", "Suggestions"}, f.GetSheetList())

		cell := func(sheet, axis string) string {
			v, err := f.GetCellValue(sheet, axis)
			require.NoError(t, err)
			return v
		}
		assert.Equal(t, "CATEGORY", cell("Scores", "A1"))
		assert.Equal(t, "Contact Information", cell("Scores", "A2"))
		assert.Equal(t, "25", cell("Scores", "B3"))
		assert.Equal(t, "60", cell("Scores", "C3"))
		assert.Equal(t, "Lack of quantified achievements with numbers and metrics", cell("Scores", "D3"))
		assert.Empty(t, cell("Scores", "D2"))
		assert.Equal(t, "OVERALL", cell("Scores", "A7"))
		assert.Equal(t, "82", cell("Scores", "C7"))

		assert.Equal(t, scoring.MissingKeywordsPrefix+"kubernetes, terraform", cell("Suggestions", "B2"))
	})

	t.Run("CSV", func(t *testing.T) {
		data, filename, err := newUsecase().ExportReport(ctx, req, "csv")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(filename, ".csv"))

		r := csv.NewReader(bytes.NewReader(data))
		r.FieldsPerRecord = -1
		records, err := r.ReadAll()
		require.NoError(t, err)

		assert.Equal(t, []string{"CATEGORY", "WEIGHT (%)", "SCORE", "ISSUE"}, records[0])
		assert.Equal(t, []string{"Keywords Match", "30", "75", "Missing important keywords from the job description"}, records[4])
		assert.Equal(t, []string{"OVERALL", "100", "82", ""}, records[6])
		assert.Equal(t, []string{"SUGGESTION"}, records[7])
		assert.Equal(t, []string{"kubernetes"}, records[len(records)-2])
		assert.Equal(t, []string{"terraform"}, records[len(records)-1])
	})

	t.Run("Unknown format", func(t *testing.T) {
		_, _, err := newUsecase().ExportReport(ctx, req, "pdf")
		assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))
	})
}
