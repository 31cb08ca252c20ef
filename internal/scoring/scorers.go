package scoring

import (
	"math"
	"strings"

	"ats-resume-scorer/internal/domain"
)

const (
	contactFieldPoints = 25
	formattingPenalty  = 10
	maxBulletStyles    = 2
)

// ScoreContact awards 25 points for each of name, email, phone and location.
func ScoreContact(c domain.Contact) int {
	score := 0
	if c.Name != "" {
		score += contactFieldPoints
	}
	if strings.Contains(c.Email, "@") {
		score += contactFieldPoints
	}
	if c.Phone != "" {
		score += contactFieldPoints
	}
	if c.Location != "" {
		score += contactFieldPoints
	}
	return score
}

// ScoreQuantified is the share of summary and experience sentences that carry a metric.
func ScoreQuantified(r domain.ResumeRecord) int {
	total, quantified := 0, 0
	for _, text := range narrativeTexts(r) {
		for _, s := range SplitSentences(text) {
			total++
			if IsQuantified(s) {
				quantified++
			}
		}
	}
	return percent(quantified, total)
}

// ScoreActionVerbs is the share of summary and experience lines that open with an action verb.
func ScoreActionVerbs(r domain.ResumeRecord) int {
	total, matches := 0, 0
	for _, text := range narrativeTexts(r) {
		for _, line := range SplitLines(text) {
			total++
			if StartsWithActionVerb(line) {
				matches++
			}
		}
	}
	return percent(matches, total)
}

// ScoreKeywords is the share of distinct job description keywords found in the resume.
func ScoreKeywords(r domain.ResumeRecord, jobDescription string) int {
	if jobDescription == "" {
		return 0
	}
	jobWords := Keywords(jobDescription)
	if len(jobWords) == 0 {
		return 0
	}
	resumeWords := keywordSet(searchableText(r))
	matched := 0
	for _, w := range jobWords {
		if _, ok := resumeWords[w]; ok {
			matched++
		}
	}
	return percent(matched, len(jobWords))
}

// ScoreFormatting starts at 100 and applies one flat deduction per problem class.
func ScoreFormatting(r domain.ResumeRecord) int {
	score := 100
	if hasMalformedDate(r) {
		score -= formattingPenalty
	}
	if HasWhitespaceRun(Serialize(r)) {
		score -= formattingPenalty
	}
	if hasMixedBullets(r) {
		score -= formattingPenalty
	}
	return max(score, 0)
}

// narrativeTexts lists the experience descriptions followed by the summary.
func narrativeTexts(r domain.ResumeRecord) []string {
	texts := make([]string, 0, len(r.Experience)+1)
	for _, e := range r.Experience {
		texts = append(texts, e.Description)
	}
	return append(texts, r.Summary)
}

func searchableText(r domain.ResumeRecord) string {
	var b strings.Builder
	b.WriteString(strings.Join([]string{r.Contact.Name, r.Contact.Email, r.Contact.Phone, r.Summary}, " "))
	for _, e := range r.Experience {
		b.WriteString(" " + e.Company + " " + e.Position + " " + e.Description)
	}
	for _, e := range r.Education {
		b.WriteString(" " + e.Institution + " " + e.Degree)
	}
	b.WriteString(" " + strings.Join(r.Skills, " "))
	return b.String()
}

func hasMalformedDate(r domain.ResumeRecord) bool {
	bad := func(start, end string) bool {
		return (start != "" && !IsWellFormedDate(start)) || (end != "" && !IsWellFormedEndDate(end))
	}
	for _, e := range r.Experience {
		if bad(e.StartDate, e.EndDate) {
			return true
		}
	}
	for _, e := range r.Education {
		if bad(e.StartDate, e.EndDate) {
			return true
		}
	}
	return false
}

// hasMixedBullets stops at the first multi-line description using more than two
// distinct leading characters.
func hasMixedBullets(r domain.ResumeRecord) bool {
	for _, e := range r.Experience {
		lines := strings.Split(e.Description, "\n")
		if len(lines) <= 1 {
			continue
		}
		styles := make(map[rune]struct{})
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			styles[[]rune(line)[0]] = struct{}{}
		}
		if len(styles) > maxBulletStyles {
			return true
		}
	}
	return false
}

// percent returns round(100*part/whole) using round-half-to-even, 0 for an empty whole.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return min(roundHalfEven(float64(100*part)/float64(whole)), 100)
}

func roundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}
