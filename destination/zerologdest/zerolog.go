// Package zerologdest provides a destination that forwards entries to a
// zerolog.Logger, carrying the kind in a "kind" field.
package zerologdest

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination"
)

// Zerolog is a destination backed by a zerolog logger
type Zerolog struct {
	logger zerolog.Logger
}

// New creates a destination writing to l
func New(l zerolog.Logger) *Zerolog {
	return &Zerolog{logger: l}
}

func levelOf(kind core.Kind) zerolog.Level {
	switch destination.SeverityOf(kind) {
	case destination.SeverityDebug:
		return zerolog.DebugLevel
	case destination.SeverityWarn:
		return zerolog.WarnLevel
	case destination.SeverityError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Log writes text at the level mapped from kind. A disabled level yields a
// nil event, on which every call is a no-op.
func (z *Zerolog) Log(text string, kind core.Kind) {
	z.logger.WithLevel(levelOf(kind)).Str(destination.KindKey, kind.String()).Msg(text)
}

var _ destination.Destination = (*Zerolog)(nil)
