package ai

import (
	"context"
	"fmt"
	"time"

	"ats-resume-scorer/internal/domain"
)

type guarded struct {
	next    domain.ContentGenerator
	timeout time.Duration
}

// Guard bounds every call to next by timeout and turns a panic inside the
// client into an error. A nil next yields nil so callers can detect that
// generation is disabled.
func Guard(next domain.ContentGenerator, timeout time.Duration) domain.ContentGenerator {
	if next == nil {
		return nil
	}
	return &guarded{next: next, timeout: timeout}
}

func (g *guarded) GenerateContent(ctx context.Context, prompt string) (out string, err error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("content generator panicked: %v", r)
		}
	}()

	out, err = g.next.GenerateContent(ctx, prompt)
	if err == nil && ctx.Err() != nil {
		return "", ctx.Err()
	}
	return out, err
}
