package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// loggingProvider records every Generate call with duration and token
// usage. Prompt and response bodies are deliberately not logged.
type loggingProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithLogging wraps a Provider so each call is logged. A nil logger
// disables logging without changing behavior.
func WithLogging(p Provider, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &loggingProvider{inner: p, log: log}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		l.log.Warn("llm request failed",
			zap.String("model", l.inner.ModelID()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return nil, err
	}

	l.log.Debug("llm request completed",
		zap.String("model", resp.Model),
		zap.Duration("elapsed", elapsed),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
		zap.String("stop_reason", resp.StopReason))
	return resp, nil
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
