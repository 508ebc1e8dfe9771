package runner

import (
	"context"
	"time"
)

// DefaultTimeout bounds a single submission run.
const DefaultTimeout = 10 * time.Second

// timeoutRunner decorates a Runner with a per-run deadline.
type timeoutRunner struct {
	inner   Runner
	timeout time.Duration
}

// WithTimeout wraps a Runner so every Run call carries a deadline.
// A non-positive timeout falls back to DefaultTimeout.
func WithTimeout(r Runner, timeout time.Duration) Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &timeoutRunner{inner: r, timeout: timeout}
}

func (t *timeoutRunner) Run(ctx context.Context, sub Submission) (*RunResult, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Run(ctx, sub)
}
