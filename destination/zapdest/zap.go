// Package zapdest provides a destination that forwards entries to a
// *zap.Logger.
//
// The rendered text becomes the zap message and the kind is attached as a
// "kind" string field. Kinds map onto zap levels with
// destination.SeverityOf; FATAL is written at ErrorLevel so zap never
// exits the process on its own.
package zapdest

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination"
)

// Zap is a destination backed by a zap logger
type Zap struct {
	logger *zap.Logger
}

// New creates a destination writing to l. A nil logger discards everything.
func New(l *zap.Logger) *Zap {
	if l == nil {
		l = zap.NewNop()
	}
	return &Zap{logger: l}
}

func levelOf(kind core.Kind) zapcore.Level {
	switch destination.SeverityOf(kind) {
	case destination.SeverityDebug:
		return zapcore.DebugLevel
	case destination.SeverityWarn:
		return zapcore.WarnLevel
	case destination.SeverityError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Log writes text at the level mapped from kind
func (z *Zap) Log(text string, kind core.Kind) {
	if ce := z.logger.Check(levelOf(kind), text); ce != nil {
		ce.Write(zap.Stringer(destination.KindKey, kind))
	}
}

// Sync flushes the underlying zap logger
func (z *Zap) Sync() error {
	return z.logger.Sync()
}

var _ destination.Destination = (*Zap)(nil)
