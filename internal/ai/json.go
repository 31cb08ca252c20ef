package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errNoJSON = errors.New("no JSON value in model output")

// ExtractJSON strips markdown code fences and any prose around the first JSON
// object or array in raw.
func ExtractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.TrimSpace(strings.Trim(raw, "`"))

	start := strings.IndexAny(raw, "[{")
	if start == -1 {
		return raw
	}
	closer := "]"
	if raw[start] == '{' {
		closer = "}"
	}
	end := strings.LastIndex(raw, closer)
	if end < start {
		return raw[start:]
	}
	return raw[start : end+1]
}

// ParseStringList decodes a JSON array of strings, or an object whose
// "suggestions" field is one. Blank entries are dropped.
func ParseStringList(raw string) ([]string, error) {
	cleaned := ExtractJSON(raw)
	if cleaned == "" {
		return nil, errNoJSON
	}

	var list []string
	if err := json.Unmarshal([]byte(cleaned), &list); err != nil {
		var wrapped struct {
			Suggestions []string `json:"suggestions"`
		}
		if werr := json.Unmarshal([]byte(cleaned), &wrapped); werr != nil || wrapped.Suggestions == nil {
			return nil, fmt.Errorf("parse string list: %w", err)
		}
		list = wrapped.Suggestions
	}

	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, errNoJSON
	}
	return out, nil
}

// ParseObject decodes the first JSON object in raw into v.
func ParseObject(raw string, v any) error {
	cleaned := ExtractJSON(raw)
	if !strings.HasPrefix(cleaned, "{") {
		return errNoJSON
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("parse object: %w", err)
	}
	return nil
}
