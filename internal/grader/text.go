package grader

import (
	"context"
	"strings"
)

// TextSubmission carries a free-text answer plus the scoring hints its
// step was configured with.
type TextSubmission struct {
	Prompt    string
	Text      string
	MinLength int
	MaxLength int
	Keywords  []string
}

// TextScorer scores free text in [0,1]. Implementations may call out to
// an external model; callers must treat a failure as non-fatal.
type TextScorer interface {
	Score(ctx context.Context, sub TextSubmission) (float64, error)
}

// HeuristicScorer scores text without any external dependency. Half the
// score comes from landing in the expected length band, half from
// keyword coverage. It never returns an error.
type HeuristicScorer struct{}

func (HeuristicScorer) Score(_ context.Context, sub TextSubmission) (float64, error) {
	return 0.5*lengthScore(sub) + 0.5*keywordScore(sub), nil
}

func lengthScore(sub TextSubmission) float64 {
	n := len(strings.TrimSpace(sub.Text))
	if n == 0 {
		return 0
	}
	if sub.MinLength > 0 && n < sub.MinLength {
		// Partial credit proportional to how close the answer got.
		return float64(n) / float64(sub.MinLength)
	}
	if sub.MaxLength > 0 && n > sub.MaxLength {
		return 0.5
	}
	return 1
}

func keywordScore(sub TextSubmission) float64 {
	if len(sub.Keywords) == 0 {
		return 1
	}
	lower := strings.ToLower(sub.Text)
	hits := 0
	for _, kw := range sub.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			hits++
		}
	}
	return float64(hits) / float64(len(sub.Keywords))
}
