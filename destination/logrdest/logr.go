// Package logrdest provides a destination that forwards entries to a
// logr.Logger.
//
// logr only distinguishes info and error messages, so debug kinds are
// written at V(1), warnings and info kinds at V(0), and error kinds through
// Logger.Error with a nil error. The kind is always passed as the "kind"
// key.
package logrdest

import (
	"github.com/go-logr/logr"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination"
)

// DebugVerbosity is the V-level used for DEBUG entries.
const DebugVerbosity = 1

// Logr is a destination backed by a logr logger
type Logr struct {
	logger logr.Logger
}

// New creates a destination writing to l. A zero logr.Logger discards
// everything.
func New(l logr.Logger) *Logr {
	return &Logr{logger: l}
}

// Log writes text through the logr method matching kind
func (l *Logr) Log(text string, kind core.Kind) {
	switch destination.SeverityOf(kind) {
	case destination.SeverityDebug:
		l.logger.V(DebugVerbosity).Info(text, destination.KindKey, kind.String())
	case destination.SeverityError:
		l.logger.Error(nil, text, destination.KindKey, kind.String())
	default:
		l.logger.Info(text, destination.KindKey, kind.String())
	}
}

var _ destination.Destination = (*Logr)(nil)
