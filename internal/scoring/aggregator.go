package scoring

import "ats-resume-scorer/internal/domain"

// Category describes one rubric line: its weight in percent and the issue reported below 100.
type Category struct {
	Name   string
	Label  string
	Weight int
	Issue  string
}

// Categories is the rubric in reporting order. Weights sum to 100.
var Categories = []Category{
	{
		Name:   domain.CategoryContactInfo,
		Label:  "Contact Information",
		Weight: 10,
		Issue:  "Missing complete contact information (name, email, phone)",
	},
	{
		Name:   domain.CategoryQuantifiedAchievements,
		Label:  "Quantified Achievements",
		Weight: 25,
		Issue:  "Lack of quantified achievements with numbers and metrics",
	},
	{
		Name:   domain.CategoryActionVerbs,
		Label:  "Action Verbs",
		Weight: 15,
		Issue:  "Insufficient use of strong action verbs at the beginning of bullet points",
	},
	{
		Name:   domain.CategoryKeywords,
		Label:  "Keywords Match",
		Weight: 30,
		Issue:  "Missing important keywords from the job description",
	},
	{
		Name:   domain.CategoryFormatting,
		Label:  "Formatting",
		Weight: 20,
		Issue:  "Inconsistent formatting or poor structure that may confuse ATS systems",
	},
}

type engine struct{}

// NewEngine returns the deterministic rubric scorer.
func NewEngine() domain.Scorer {
	return engine{}
}

func (engine) Score(resume domain.ResumeRecord, jobDescription string) domain.ScoringResult {
	return Aggregate(resume, jobDescription)
}

// Aggregate runs every category scorer and combines the results with the rubric weights.
func Aggregate(resume domain.ResumeRecord, jobDescription string) domain.ScoringResult {
	subscores := map[string]int{
		domain.CategoryContactInfo:            ScoreContact(resume.Contact),
		domain.CategoryQuantifiedAchievements: ScoreQuantified(resume),
		domain.CategoryActionVerbs:            ScoreActionVerbs(resume),
		domain.CategoryKeywords:               ScoreKeywords(resume, jobDescription),
		domain.CategoryFormatting:             ScoreFormatting(resume),
	}

	weighted := 0
	issues := make([]string, 0, len(Categories))
	for _, c := range Categories {
		s := subscores[c.Name]
		weighted += s * c.Weight
		if s < 100 {
			issues = append(issues, c.Issue)
		}
	}

	return domain.ScoringResult{
		ATSScore:       roundHalfEven(float64(weighted) / 100),
		CategoryScores: subscores,
		Issues:         issues,
	}
}
