package scoring

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"ats-resume-scorer/internal/domain"
)

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]+`)
	lineBoundary     = regexp.MustCompile(`\n|\. |\? |! `)
	nonWord          = regexp.MustCompile(`\W`)
	wordToken        = regexp.MustCompile(`\b\w{4,}\b`)

	quantifiedPattern = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*(?:%|percent|dollars?|\$|k|million|billion|hours?|days?|weeks?|months?|years?|employees?|projects?|clients?|sales?|revenue|growth|increase|decrease|improvement)`)

	// MM/YYYY with a real month, a bare year, or an open-ended literal.
	datePattern = regexp.MustCompile(`(?i)^(?:(?:0?[1-9]|1[0-2])/\d{4}|\d{4}|present|current)$`)
	openEnded   = regexp.MustCompile(`(?i)^(?:present|current)$`)

	// Unicode spaces count too; encoding/json leaves them unescaped.
	whitespaceRun = regexp.MustCompile(`[\s\p{Zs}\x{FEFF}]{4,}`)
)

// SplitSentences splits text on runs of sentence-ending punctuation and
// drops pieces that are empty after trimming.
func SplitSentences(text string) []string {
	return nonEmpty(sentenceBoundary.Split(text, -1))
}

// SplitLines splits text into bullet-like lines: on newlines, or on
// sentence punctuation followed by a space.
func SplitLines(text string) []string {
	return nonEmpty(lineBoundary.Split(text, -1))
}

func nonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsQuantified reports whether a sentence carries a number tied to a unit or metric.
func IsQuantified(sentence string) bool {
	return quantifiedPattern.MatchString(sentence)
}

// LeadingWord returns the first whitespace-delimited token of line, lowercased
// and stripped of non-word characters.
func LeadingWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return nonWord.ReplaceAllString(strings.ToLower(fields[0]), "")
}

// StartsWithActionVerb reports whether the line opens with a known action verb.
func StartsWithActionVerb(line string) bool {
	_, ok := actionVerbs[LeadingWord(line)]
	return ok
}

// Keywords returns the distinct lowercased words of four or more word characters
// in text, in order of first appearance.
func Keywords(text string) []string {
	matches := wordToken.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.ToLower(m)
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

func keywordSet(text string) map[string]struct{} {
	words := Keywords(text)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsWellFormedDate checks a start date token.
func IsWellFormedDate(date string) bool {
	return datePattern.MatchString(date)
}

// IsWellFormedEndDate checks an end date token, which may also be open-ended.
func IsWellFormedEndDate(date string) bool {
	return datePattern.MatchString(date) || openEnded.MatchString(date)
}

// HasWhitespaceRun reports a run of four or more whitespace characters.
func HasWhitespaceRun(text string) bool {
	return whitespaceRun.MatchString(text)
}

// Serialize renders the resume as compact JSON without HTML escaping.
func Serialize(resume domain.ResumeRecord) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resume); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
