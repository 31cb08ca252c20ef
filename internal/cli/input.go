package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/resume"
	"ats-resume-scorer/pkg/security"
)

// readDocument returns the plain text of a PDF, DOCX or TXT file.
func readDocument(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	check := security.ValidateResumeFile(filepath.Base(path), data)
	if err := check.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	text, err := resume.NewExtractor().Extract(ctx, check.ContentType, data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// loadResume reads the resume file. JSON files are passed through as
// structured content; anything else is extracted to text.
func loadResume(ctx context.Context, path, format string) (content any, resolvedFormat string, err error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		if format == "" {
			format = domain.FormatStructured
		}
		return string(data), format, nil
	}

	text, err := readDocument(ctx, path)
	if err != nil {
		return nil, "", err
	}
	if format == "" {
		format = domain.FormatFreeform
	}
	return text, format, nil
}

func loadJobDescription(ctx context.Context, path, text string) (string, error) {
	switch {
	case path != "" && text != "":
		return "", fmt.Errorf("--job and --job-text are mutually exclusive")
	case text != "":
		return text, nil
	case path != "":
		return readDocument(ctx, path)
	default:
		return "", fmt.Errorf("a job description is required (--job or --job-text)")
	}
}
