package usecase_test

import (
	"context"
	"errors"
	"testing"

	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/scoring"
	"ats-resume-scorer/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSuggestionEnricher(t *testing.T) {
	ctx := context.Background()
	record := domain.ResumeRecord{Summary: "Go developer"}
	jd := "Kubernetes operator experience"
	fallback := scoring.FallbackSuggestions(record, jd, fixedResult)

	t.Run("Uses generated suggestions", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("GenerateContent", ctx, mock.Anything).Return(`["Mention Kubernetes operators", "Add a metric"]`, nil)

		got := usecase.NewSuggestionEnricher(gen).Enrich(ctx, record, jd, fixedResult)
		assert.Equal(t, []string{"Mention Kubernetes operators", "Add a metric"}, got)
	})

	t.Run("Caps generated suggestions", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("GenerateContent", ctx, mock.Anything).Return(`["1","2","3","4","5","6","7","8","9","10","11","12"]`, nil)

		got := usecase.NewSuggestionEnricher(gen).Enrich(ctx, record, jd, fixedResult)
		assert.Len(t, got, scoring.MaxSuggestions)
	})

	cases := map[string]func(*MockGenerator){
		"Generator error": func(g *MockGenerator) {
			g.On("GenerateContent", ctx, mock.Anything).Return("", errors.New("timeout"))
		},
		"Prose output": func(g *MockGenerator) {
			g.On("GenerateContent", ctx, mock.Anything).Return("Consider adding Kubernetes.", nil)
		},
		"Generator panic": func(g *MockGenerator) {
			g.On("GenerateContent", ctx, mock.Anything).Run(func(mock.Arguments) { panic("nil client") })
		},
	}
	for name, setup := range cases {
		t.Run(name+" falls back", func(t *testing.T) {
			gen := new(MockGenerator)
			setup(gen)
			got := usecase.NewSuggestionEnricher(gen).Enrich(ctx, record, jd, fixedResult)
			assert.Equal(t, fallback, got)
			assert.GreaterOrEqual(t, len(got), scoring.MinSuggestions)
		})
	}

	t.Run("No generator", func(t *testing.T) {
		assert.Equal(t, fallback, usecase.NewSuggestionEnricher(nil).Enrich(ctx, record, jd, fixedResult))
	})
}
