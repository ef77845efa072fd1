package logger

import (
	"os"

	"go.uber.org/zap"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger is the facade: it builds entries in its default context and
// hands them to a shared Broadcaster.
type Logger struct {
	sink *destination.Broadcaster
	ctx  core.Context
	exit func(int)
	diag *zap.Logger
}

// Option configures a Logger created by New
type Option func(*options)

type options struct {
	sink *destination.Broadcaster
	exit func(int)
	diag *zap.Logger
}

// WithBroadcaster makes the Logger publish to b instead of a fresh
// Broadcaster of its own.
func WithBroadcaster(b *destination.Broadcaster) Option {
	return func(o *options) {
		o.sink = b
	}
}

// WithExitFunc replaces the process exit used by Fatal
func WithExitFunc(fn func(int)) Option {
	return func(o *options) {
		o.exit = fn
	}
}

// WithDiagnostics sets the logger that receives the library's own
// diagnostics. It is also passed to the Broadcaster created by New.
func WithDiagnostics(l *zap.Logger) Option {
	return func(o *options) {
		o.diag = l
	}
}

// New creates a Logger with no destinations and debug output disabled
func New(opts ...Option) *Logger {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.diag == nil {
		o.diag = zap.NewNop()
	}
	if o.sink == nil {
		o.sink = destination.NewBroadcaster(destination.WithDiagnostics(o.diag))
	}
	if o.exit == nil {
		o.exit = func(code int) { osExit(code) }
	}

	return &Logger{
		sink: o.sink,
		ctx:  core.System,
		exit: o.exit,
		diag: o.diag,
	}
}

// With returns a Logger sharing the same destinations whose entries
// default to ctx.
func (l *Logger) With(ctx core.Context) *Logger {
	return &Logger{
		sink: l.sink,
		ctx:  ctx,
		exit: l.exit,
		diag: l.diag,
	}
}

// Context returns the default context of entries created by l
func (l *Logger) Context() core.Context {
	return l.ctx
}

// Broadcaster returns the Broadcaster l publishes to
func (l *Logger) Broadcaster() *destination.Broadcaster {
	return l.sink
}

// SetDebugEnabled switches delivery of DEBUG entries
func (l *Logger) SetDebugEnabled(enabled bool) {
	l.sink.SetDebugEnabled(enabled)
}

// DebugEnabled reports whether DEBUG entries are delivered
func (l *Logger) DebugEnabled() bool {
	return l.sink.DebugEnabled()
}

// AddDestination registers d after the existing destinations
func (l *Logger) AddDestination(d destination.Destination) error {
	return l.sink.Add(d)
}

// Create starts a new entry in l's default context with kind INFO
func (l *Logger) Create() *Builder {
	return newBuilder(l.sink, l.ctx)
}

func (l *Logger) log(kind core.Kind, msg string, args []any) error {
	return l.Create().Kind(kind).Message(msg, args...).Send()
}

// Info logs an INFO entry
func (l *Logger) Info(msg string, args ...any) error {
	return l.log(core.KindInfo, msg, args)
}

// Warn logs a WARN entry
func (l *Logger) Warn(msg string, args ...any) error {
	return l.log(core.KindWarn, msg, args)
}

// Error logs an ERROR entry
func (l *Logger) Error(msg string, args ...any) error {
	return l.log(core.KindError, msg, args)
}

// Custom logs a CUSTOM entry
func (l *Logger) Custom(msg string, args ...any) error {
	return l.log(core.KindCustom, msg, args)
}

// Debug logs a DEBUG entry. When debug output is off the message is not
// even formatted.
func (l *Logger) Debug(msg string, args ...any) error {
	if !l.sink.DebugEnabled() {
		return nil
	}
	return l.log(core.KindDebug, msg, args)
}

// Chat logs a CHAT entry in ctx with the body "[user]: msg"
func (l *Logger) Chat(ctx core.Context, user, msg string) error {
	return l.Create().Context(ctx).Kind(core.KindChat).Message("[%s]: %s", user, msg).Send()
}

// Exception logs err with its trace as an EXCEPTION entry
func (l *Logger) Exception(err error) error {
	return l.exception("", err, 1)
}

// ExceptionMessage logs err with its trace as an EXCEPTION entry
// described by msg.
func (l *Logger) ExceptionMessage(msg string, err error) error {
	return l.exception(msg, err, 1)
}

func (l *Logger) exception(msg string, err error, skip int) error {
	return l.Create().
		Kind(core.KindException).
		exception(err, skip+1).
		Message(msg).
		Send()
}

// Fatal logs a FATAL entry in ctx and terminates the process with
// status 1. If msg does not match args, the raw template is logged with
// the formatting error appended before exiting.
func (l *Logger) Fatal(ctx core.Context, msg string, args ...any) {
	err := l.Create().Context(ctx).Kind(core.KindFatal).Message(msg, args...).Send()
	if err != nil {
		l.diag.Warn("fatal message could not be formatted", zap.Error(err))
		_ = l.Create().
			Context(ctx).
			Kind(core.KindFatal).
			Message(msg + " (" + err.Error() + ")").
			Send()
	}
	l.exit(1)
}

// Close closes every destination that holds resources. Loggers derived
// with With share those destinations.
func (l *Logger) Close() error {
	return l.sink.Close()
}
