// Package logrusdest provides a destination that forwards entries to a
// *logrus.Logger, carrying the kind in a "kind" field.
package logrusdest

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination"
)

// Logrus is a destination backed by a logrus logger
type Logrus struct {
	logger *logrus.Logger
}

// New creates a destination writing to l, or to logrus.StandardLogger when l is nil
func New(l *logrus.Logger) *Logrus {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Logrus{logger: l}
}

// Entry.Log never exits or panics below PanicLevel, and FATAL maps to
// ErrorLevel here anyway.
func levelOf(kind core.Kind) logrus.Level {
	switch destination.SeverityOf(kind) {
	case destination.SeverityDebug:
		return logrus.DebugLevel
	case destination.SeverityWarn:
		return logrus.WarnLevel
	case destination.SeverityError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Log writes text at the level mapped from kind
func (l *Logrus) Log(text string, kind core.Kind) {
	l.logger.WithField(destination.KindKey, kind.String()).Log(levelOf(kind), text)
}

var _ destination.Destination = (*Logrus)(nil)
