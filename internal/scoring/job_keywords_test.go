package scoring_test

import (
	"testing"

	"ats-resume-scorer/internal/scoring"

	"github.com/stretchr/testify/assert"
)

func TestMentionedSkills(t *testing.T) {
	jd := "We use TypeScript with React and Node.js. Kubernetes on AWS, CI/CD via GitHub. Java is a plus, JavaScript required."
	assert.Equal(t,
		[]string{"TypeScript", "React", "Node.js", "Kubernetes", "AWS", "CI/CD", "Java", "JavaScript"},
		scoring.MentionedSkills(jd))

	assert.Empty(t, scoring.MentionedSkills("We value kindness and curiosity"))
}

func TestExtractJobKeywords(t *testing.T) {
	t.Run("Splits skills and filters stop words", func(t *testing.T) {
		got := scoring.ExtractJobKeywords("Looking for a Python engineer with Docker and Terraform experience")
		assert.Equal(t, []string{"Python", "Docker"}, got.RequiredSkills)
		assert.Equal(t, []string{"Terraform"}, got.PreferredSkills)
		assert.Equal(t, []string{"python", "engineer", "docker", "terraform", "experience"}, got.Keywords)
		assert.Empty(t, got.JobTitle)
	})

	t.Run("Caps keywords", func(t *testing.T) {
		jd := "alpha bravo charlie delta echoes foxtrot golfing hotel india juliet kilo lima mike november oscar papa quebec romeo"
		got := scoring.ExtractJobKeywords(jd)
		assert.Len(t, got.Keywords, 15)
		assert.Equal(t, "alpha", got.Keywords[0])
		assert.NotNil(t, got.RequiredSkills)
		assert.NotNil(t, got.PreferredSkills)
	})

	t.Run("Nothing found yields the default payload", func(t *testing.T) {
		assert.Equal(t, scoring.DefaultJobKeywords(), scoring.ExtractJobKeywords("a an the of"))
	})
}
