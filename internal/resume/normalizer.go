package resume

import (
	"bytes"
	"encoding/json"
	"strings"

	"ats-resume-scorer/internal/domain"
)

type normalizer struct{}

// NewNormalizer returns the boundary that turns request input into a ResumeRecord.
func NewNormalizer() domain.ResumeNormalizer {
	return normalizer{}
}

// Normalize parses structured input when asked to and falls back to a
// summary-only record for freeform input or anything that fails to parse.
func (normalizer) Normalize(content any, format string) domain.ResumeRecord {
	if format == domain.FormatStructured {
		if r, ok := ParseStructured(content); ok {
			return r
		}
	}
	return Freeform(asText(content))
}

// ParseStructured decodes a JSON object, given either as decoded JSON or as a
// string holding JSON, into a defaulted ResumeRecord.
func ParseStructured(content any) (domain.ResumeRecord, bool) {
	var raw []byte
	switch v := content.(type) {
	case nil:
		return domain.ResumeRecord{}, false
	case string:
		raw = []byte(strings.TrimSpace(v))
	case []byte:
		raw = bytes.TrimSpace(v)
	case json.RawMessage:
		raw = bytes.TrimSpace(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return domain.ResumeRecord{}, false
		}
		raw = b
	}

	if len(raw) == 0 || raw[0] != '{' {
		return domain.ResumeRecord{}, false
	}

	var r domain.ResumeRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return domain.ResumeRecord{}, false
	}
	return Defaulted(r), true
}

// Freeform places the whole text in the summary.
func Freeform(text string) domain.ResumeRecord {
	return Defaulted(domain.ResumeRecord{Summary: text})
}

// Defaulted replaces nil sequences with empty ones.
func Defaulted(r domain.ResumeRecord) domain.ResumeRecord {
	if r.Experience == nil {
		r.Experience = []domain.ExperienceEntry{}
	}
	if r.Education == nil {
		r.Education = []domain.EducationEntry{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	return r
}

func asText(content any) string {
	switch v := content.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.RawMessage:
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return s
		}
		return string(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// IsBlank reports whether content carries nothing to score.
func IsBlank(content any) bool {
	switch v := content.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
