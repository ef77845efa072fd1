package destination

import "github.com/philipp01105/fanlog/core"

// Severity is the coarse level used when bridging into leveled loggers
type Severity int8

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

// SeverityOf maps a kind onto a leveled logger's scale. FATAL maps to
// SeverityError: the facade terminates the process itself, so a bridged
// logger must never run its own fatal or panic path.
func SeverityOf(kind core.Kind) Severity {
	switch kind {
	case core.KindDebug:
		return SeverityDebug
	case core.KindWarn:
		return SeverityWarn
	case core.KindError, core.KindException, core.KindFatal:
		return SeverityError
	default:
		return SeverityInfo
	}
}

// KindKey is the field name bridges use to carry the original kind
const KindKey = "kind"
