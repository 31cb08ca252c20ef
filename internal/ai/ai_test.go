package ai_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ats-resume-scorer/internal/ai"
	"ats-resume-scorer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func TestExtractJSON(t *testing.T) {
	cases := map[string]string{
		"```json\n[\"a\"]\n```":                  `["a"]`,
		"```\n{\"k\":1}\n```":                    `{"k":1}`,
		"Here you go: [\"a\", \"b\"] Thanks!":    `["a", "b"]`,
		"Sure!\n{\"job_title\":\"Dev\"}\nCheers": `{"job_title":"Dev"}`,
		"no json here":                           "no json here",
	}
	for in, want := range cases {
		assert.Equal(t, want, ai.ExtractJSON(in), in)
	}
}

func TestParseStringList(t *testing.T) {
	t.Run("Plain array", func(t *testing.T) {
		got, err := ai.ParseStringList("```json\n[\"Add metrics\", \"  \", \"Use verbs\"]\n```")
		require.NoError(t, err)
		assert.Equal(t, []string{"Add metrics", "Use verbs"}, got)
	})

	t.Run("Wrapped object", func(t *testing.T) {
		got, err := ai.ParseStringList(`{"suggestions": ["One", "Two"]}`)
		require.NoError(t, err)
		assert.Equal(t, []string{"One", "Two"}, got)
	})

	t.Run("Prose is rejected", func(t *testing.T) {
		_, err := ai.ParseStringList("You should add more keywords.")
		assert.Error(t, err)
	})

	t.Run("Empty array is rejected", func(t *testing.T) {
		_, err := ai.ParseStringList("[]")
		assert.Error(t, err)
	})

	t.Run("Array of objects is rejected", func(t *testing.T) {
		_, err := ai.ParseStringList(`[{"text": "x"}]`)
		assert.Error(t, err)
	})
}

func TestParseObject(t *testing.T) {
	var out domain.JobKeywords
	require.NoError(t, ai.ParseObject(`Result: {"job_title": "Data Engineer", "keywords": ["spark"]}`, &out))
	assert.Equal(t, "Data Engineer", out.JobTitle)
	assert.Equal(t, []string{"spark"}, out.Keywords)

	assert.Error(t, ai.ParseObject(`["not", "an", "object"]`, &out))
}

func TestPrompts(t *testing.T) {
	t.Run("Suggestions prompt embeds the score breakdown", func(t *testing.T) {
		result := domain.ScoringResult{
			ATSScore:       63,
			CategoryScores: map[string]int{domain.CategoryKeywords: 40},
			Issues:         []string{"Missing important keywords from the job description"},
		}
		p := ai.SuggestionsPrompt(domain.ResumeRecord{Summary: "Go developer"}, "Needs Terraform", result)
		assert.Contains(t, p, "63/100")
		assert.Contains(t, p, "- keywords: 40")
		assert.Contains(t, p, "- Missing important keywords")
		assert.Contains(t, p, "Needs Terraform")
		assert.Contains(t, p, "Go developer")
		assert.NotContains(t, p, "{{")
	})

	t.Run("Optimize prompt varies by type", func(t *testing.T) {
		bullet := ai.OptimizePrompt(domain.OptimizeBulletPoint, "Did stuff", "")
		assert.Contains(t, bullet, "STAR")
		assert.Contains(t, bullet, "3 different variations")
		assert.NotContains(t, bullet, "Additional context")

		summary := ai.OptimizePrompt(domain.OptimizeSummary, "Engineer", "Backend role")
		assert.Contains(t, summary, "summary")
		assert.Contains(t, summary, "Backend role")

		unknown := ai.OptimizePrompt("poem", "Text", "")
		assert.Equal(t, ai.OptimizePrompt(domain.OptimizeOther, "Text", ""), unknown)
	})

	t.Run("Job keyword prompt lists the expected fields", func(t *testing.T) {
		p := ai.JobKeywordsPrompt("Hiring a Go engineer")
		for _, field := range []string{"job_title", "company_name", "required_skills", "preferred_skills", "keywords"} {
			assert.Contains(t, p, field)
		}
		assert.True(t, strings.HasSuffix(p, "JSON object:"))
	})
}

func TestGuard(t *testing.T) {
	t.Run("Nil generator stays nil", func(t *testing.T) {
		assert.Nil(t, ai.Guard(nil, time.Second))
	})

	t.Run("Passes through results", func(t *testing.T) {
		g := ai.Guard(generatorFunc(func(ctx context.Context, prompt string) (string, error) {
			return "ok:" + prompt, nil
		}), time.Second)
		out, err := g.GenerateContent(context.Background(), "hi")
		require.NoError(t, err)
		assert.Equal(t, "ok:hi", out)
	})

	t.Run("Times out slow generators", func(t *testing.T) {
		g := ai.Guard(generatorFunc(func(ctx context.Context, prompt string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}), 10*time.Millisecond)
		_, err := g.GenerateContent(context.Background(), "hi")
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("Recovers panics", func(t *testing.T) {
		g := ai.Guard(generatorFunc(func(ctx context.Context, prompt string) (string, error) {
			panic("boom")
		}), time.Second)
		_, err := g.GenerateContent(context.Background(), "hi")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}
