package logger

import (
	"sync"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination"
)

var (
	defaultLogger = New()
	defaultMu     sync.RWMutex
)

// Default returns the process-wide logger. It starts without any
// destinations.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger. A nil l is ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// AddDestination registers d with the default logger
func AddDestination(d destination.Destination) error {
	return Default().AddDestination(d)
}

// SetDebugEnabled switches DEBUG delivery of the default logger
func SetDebugEnabled(enabled bool) {
	Default().SetDebugEnabled(enabled)
}

// DebugEnabled reports whether the default logger delivers DEBUG entries
func DebugEnabled() bool {
	return Default().DebugEnabled()
}

// Create starts a new entry on the default logger
func Create() *Builder {
	return Default().Create()
}

// With returns a child of the default logger whose entries default to ctx
func With(ctx core.Context) *Logger {
	return Default().With(ctx)
}

// Info logs an INFO entry using the default logger
func Info(msg string, args ...any) error {
	return Default().Info(msg, args...)
}

// Warn logs a WARN entry using the default logger
func Warn(msg string, args ...any) error {
	return Default().Warn(msg, args...)
}

// Error logs an ERROR entry using the default logger
func Error(msg string, args ...any) error {
	return Default().Error(msg, args...)
}

// Custom logs a CUSTOM entry using the default logger
func Custom(msg string, args ...any) error {
	return Default().Custom(msg, args...)
}

// Debug logs a DEBUG entry using the default logger
func Debug(msg string, args ...any) error {
	return Default().Debug(msg, args...)
}

// Chat logs a CHAT entry using the default logger
func Chat(ctx core.Context, user, msg string) error {
	return Default().Chat(ctx, user, msg)
}

// Exception logs err as an EXCEPTION entry using the default logger
func Exception(err error) error {
	return Default().exception("", err, 1)
}

// ExceptionMessage logs err described by msg using the default logger
func ExceptionMessage(msg string, err error) error {
	return Default().exception(msg, err, 1)
}

// Fatal logs a FATAL entry using the default logger and exits the program
func Fatal(ctx core.Context, msg string, args ...any) {
	Default().Fatal(ctx, msg, args...)
}
