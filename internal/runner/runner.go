package runner

import (
	"context"
	"fmt"
)

// Case is one input/output check for a submission.
type Case struct {
	Input    string
	Expected string
	Hidden   bool
}

// Submission is a learner's code plus the cases to check it against.
type Submission struct {
	Language string
	Code     string
	Cases    []Case
}

// CaseResult is the outcome of running a single case.
type CaseResult struct {
	Passed bool
	Got    string
	Hidden bool
	Err    string
}

// RunResult is the outcome of running a full submission.
type RunResult struct {
	Cases []CaseResult
}

// PassFraction returns the fraction of cases that passed, in [0,1].
func (r *RunResult) PassFraction() float64 {
	if len(r.Cases) == 0 {
		return 0
	}
	passed := 0
	for _, c := range r.Cases {
		if c.Passed {
			passed++
		}
	}
	return float64(passed) / float64(len(r.Cases))
}

// Runner executes a code submission against its cases. Implementations
// must honor ctx cancellation; a returned error means the submission
// could not be evaluated at all, not that cases failed.
type Runner interface {
	Run(ctx context.Context, sub Submission) (*RunResult, error)
}

// ErrUnsupportedLanguage indicates the runner cannot execute the
// submission's language.
type ErrUnsupportedLanguage struct {
	Language string
}

func (e *ErrUnsupportedLanguage) Error() string {
	return fmt.Sprintf("unsupported submission language: %q", e.Language)
}
