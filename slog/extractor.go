package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docqa"
)

// Ensure LoggingSourceExtractor implements docqa.SourceExtractor.
var _ docqa.SourceExtractor = (*LoggingSourceExtractor)(nil)

// LoggingSourceExtractor wraps a SourceExtractor with logging.
type LoggingSourceExtractor struct {
	next   docqa.SourceExtractor
	logger *slog.Logger
}

// NewLoggingSourceExtractor creates a new LoggingSourceExtractor.
func NewLoggingSourceExtractor(next docqa.SourceExtractor, logger *slog.Logger) *LoggingSourceExtractor {
	return &LoggingSourceExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingSourceExtractor) Extract(ctx context.Context, src docqa.Source) (text string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Warn("extract",
				"kind", src.Kind.String(),
				"source", src.String(),
				"code", docqa.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		e.logger.Debug("extract",
			"kind", src.Kind.String(),
			"source", src.String(),
			"chars", len(text),
			"duration", time.Since(begin),
		)
	}(time.Now())

	return e.next.Extract(ctx, src)
}
