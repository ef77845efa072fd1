package core

import (
	"fmt"
	"strings"
)

// Kind categorizes a log entry
type Kind uint8

const (
	// KindInfo for general informational messages (default)
	KindInfo Kind = iota
	// KindError for errors the application can recover from
	KindError
	// KindDebug for fine-grained diagnostics, only delivered when debug is enabled
	KindDebug
	// KindException for entries carrying an error and its trace
	KindException
	// KindWarn for potentially harmful situations
	KindWarn
	// KindChat for chat or user communication lines
	KindChat
	// KindCustom for user-defined categories
	KindCustom
	// KindFatal for unrecoverable failures (the facade exits afterwards)
	KindFatal
)

var kindNames = [...]string{
	KindInfo:      "INFO",
	KindError:     "ERROR",
	KindDebug:     "DEBUG",
	KindException: "EXCEPTION",
	KindWarn:      "WARN",
	KindChat:      "CHAT",
	KindCustom:    "CUSTOM",
	KindFatal:     "FATAL",
}

// Kinds lists every kind in declaration order.
var Kinds = []Kind{KindInfo, KindError, KindDebug, KindException, KindWarn, KindChat, KindCustom, KindFatal}

// String returns the upper-case name of the kind
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// ParseKind converts a name such as "warn" to a Kind
func ParseKind(s string) (Kind, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		return KindWarn, nil
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return KindInfo, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
