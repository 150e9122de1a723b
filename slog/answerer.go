package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docqa"
)

// Ensure LoggingAnswerer implements docqa.Answerer.
var _ docqa.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer with logging of each backend call.
type LoggingAnswerer struct {
	next   docqa.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next docqa.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// Answer delegates to the wrapped answerer. The prompt itself is not
// logged, only its size.
func (a *LoggingAnswerer) Answer(ctx context.Context, prompt string) (text string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			a.logger.Error("answer",
				"prompt_chars", len(prompt),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		a.logger.Info("answer",
			"prompt_chars", len(prompt),
			"answer_chars", len(text),
			"duration", time.Since(begin),
		)
	}(time.Now())

	return a.next.Answer(ctx, prompt)
}
