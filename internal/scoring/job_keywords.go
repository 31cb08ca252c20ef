package scoring

import (
	"regexp"
	"sort"

	"ats-resume-scorer/internal/domain"
)

const jobKeywordLimit = 15

var stopWords = toSet(
	"about", "able", "across", "also", "been", "both", "could", "each", "from", "have",
	"including", "into", "just", "looking", "more", "must", "only", "other", "over", "plus",
	"should", "some", "such", "than", "that", "their", "them", "then", "these", "they",
	"this", "those", "very", "well", "were", "what", "when", "where", "which", "while",
	"will", "with", "within", "would", "year", "years", "your",
)

// techVocabulary lists skills recognized in job descriptions, in canonical spelling.
var techVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Golang", "Rust", "Ruby", "PHP", "C++", "C#",
	"Kotlin", "Swift", "Scala", "SQL", "NoSQL", "GraphQL", "REST",
	"React", "Angular", "Vue", "Next.js", "Node.js", "Express", "Django", "Flask", "Spring",
	"Rails", ".NET", "HTML", "CSS", "Tailwind",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Kafka", "RabbitMQ",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins",
	"CI/CD", "Git", "Linux", "Microservices", "Agile", "Scrum",
	"Machine Learning", "TensorFlow", "PyTorch", "Pandas", "Spark", "Hadoop", "Tableau", "Excel",
}

var vocabularyPatterns = compileVocabulary(techVocabulary)

func compileVocabulary(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		out[i] = regexp.MustCompile(`(?i)(?:^|[^\w.#+/])` + regexp.QuoteMeta(w) + `(?:$|[^\w#+])`)
	}
	return out
}

// DefaultJobKeywords is returned when nothing can be extracted from a description.
func DefaultJobKeywords() domain.JobKeywords {
	return domain.JobKeywords{
		JobTitle:        "Software Engineer",
		CompanyName:     "Tech Company",
		RequiredSkills:  []string{"React", "Node.js", "TypeScript"},
		PreferredSkills: []string{"AWS", "Docker", "Kubernetes"},
		Keywords:        []string{"full-stack", "scalable", "microservices"},
	}
}

// ExtractJobKeywords summarizes a job description without a model. Keywords are
// the first distinct long tokens minus stop words; skills are vocabulary hits in
// order of appearance, the first half marked required and the rest preferred.
func ExtractJobKeywords(jobDescription string) domain.JobKeywords {
	keywords := make([]string, 0, jobKeywordLimit)
	for _, kw := range Keywords(jobDescription) {
		if len(keywords) == jobKeywordLimit {
			break
		}
		if _, stop := stopWords[kw]; !stop {
			keywords = append(keywords, kw)
		}
	}

	skills := MentionedSkills(jobDescription)
	if len(keywords) == 0 && len(skills) == 0 {
		return DefaultJobKeywords()
	}

	half := (len(skills) + 1) / 2
	return domain.JobKeywords{
		RequiredSkills:  append([]string{}, skills[:half]...),
		PreferredSkills: append([]string{}, skills[half:]...),
		Keywords:        keywords,
	}
}

// MentionedSkills returns vocabulary skills found in text, ordered by first mention.
func MentionedSkills(text string) []string {
	type hit struct {
		skill string
		at    int
	}
	var hits []hit
	for i, re := range vocabularyPatterns {
		if loc := re.FindStringIndex(text); loc != nil {
			hits = append(hits, hit{skill: techVocabulary[i], at: loc[0]})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].at < hits[j].at })

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.skill
	}
	return out
}
