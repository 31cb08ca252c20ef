package domain

import "context"

// Contact holds the contact block of a resume. Empty strings mean "not provided".
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
}

type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// ResumeRecord is the structured resume consumed by the scorers.
// The zero value is a valid, empty resume.
type ResumeRecord struct {
	Contact    Contact           `json:"contact"`
	Summary    string            `json:"summary"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Skills     []string          `json:"skills"`
}

// Resume input formats accepted by the analysis endpoint.
const (
	FormatStructured = "structured"
	FormatFreeform   = "freeform"
)

// ResumeNormalizer turns raw request input into a fully defaulted ResumeRecord.
type ResumeNormalizer interface {
	Normalize(content any, format string) ResumeRecord
}

// TextExtractor pulls plain text out of an uploaded document.
type TextExtractor interface {
	Extract(ctx context.Context, mime string, data []byte) (string, error)
}
