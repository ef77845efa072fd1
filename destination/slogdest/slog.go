// Package slogdest provides a destination that forwards entries to a
// *slog.Logger, carrying the kind in a "kind" attribute.
package slogdest

import (
	"context"
	"log/slog"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination"
)

// Slog is a destination backed by a slog logger
type Slog struct {
	logger *slog.Logger
}

// New creates a destination writing to l, or to slog.Default when l is nil
func New(l *slog.Logger) *Slog {
	if l == nil {
		l = slog.Default()
	}
	return &Slog{logger: l}
}

func levelOf(kind core.Kind) slog.Level {
	switch destination.SeverityOf(kind) {
	case destination.SeverityDebug:
		return slog.LevelDebug
	case destination.SeverityWarn:
		return slog.LevelWarn
	case destination.SeverityError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Log writes text at the level mapped from kind
func (s *Slog) Log(text string, kind core.Kind) {
	s.logger.Log(context.Background(), levelOf(kind), text, destination.KindKey, kind.String())
}

var _ destination.Destination = (*Slog)(nil)
