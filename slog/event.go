package slog

import (
	"log/slog"

	"github.com/fwojciec/docqa"
)

// EventLogger returns a SessionEventFunc that logs session progress.
// Transitions are logged at debug level, failed extractions as warnings and
// a transition into the failed state as an error.
func EventLogger(logger *slog.Logger) docqa.SessionEventFunc {
	return func(e docqa.SessionEvent) {
		switch e.Type {
		case docqa.EventTransition:
			if e.To == docqa.StateFailed {
				logger.Error("session failed",
					"session", e.SessionID,
					"from", string(e.From),
					"code", docqa.ErrorCode(e.Err),
					"err", e.Err,
				)
				return
			}
			logger.Debug("session transition",
				"session", e.SessionID,
				"from", string(e.From),
				"to", string(e.To),
			)
		case docqa.EventExtracted:
			if e.Err != nil {
				logger.Warn("source skipped",
					"session", e.SessionID,
					"source", e.Source.String(),
					"code", docqa.ErrorCode(e.Err),
					"err", e.Err,
				)
				return
			}
			logger.Debug("source extracted",
				"session", e.SessionID,
				"source", e.Source.String(),
			)
		}
	}
}
