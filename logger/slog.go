package logger

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/philipp01105/fanlog/core"
)

// ContextKey is the slog attribute key that selects the entry context
// instead of being appended to the message.
const ContextKey = "context"

// SlogHandler is an adapter that implements slog.Handler on top of a Logger.
// This allows code written against log/slog to feed the same destinations.
//
// Records map to kinds by level: below Info is DEBUG, below Warn is INFO,
// below Error is WARN, anything higher is ERROR. Attributes are appended
// to the message as key=value pairs.
type SlogHandler struct {
	logger *Logger
	ctx    core.Context
	attrs  string
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter feeding l.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{
		logger: l,
		ctx:    l.ctx,
	}
}

// Enabled reports whether the handler handles records at the given level.
// Debug records follow the logger's debug switch.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level < slog.LevelInfo {
		return s.logger.DebugEnabled()
	}
	return true
}

// Handle converts record into an entry and sends it through the logger.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	ctx := s.ctx
	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(s.attrs)

	record.Attrs(func(a slog.Attr) bool {
		if s.group == "" && a.Key == ContextKey {
			ctx = core.NewContext(a.Value.Resolve().String())
			return true
		}
		appendAttr(&sb, s.group, a)
		return true
	})

	return s.logger.Create().
		Context(ctx).
		Kind(slogLevelToKind(record.Level)).
		Message(sb.String()).
		Send()
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	ctx := s.ctx
	var sb strings.Builder
	sb.WriteString(s.attrs)
	for _, a := range attrs {
		if s.group == "" && a.Key == ContextKey {
			ctx = core.NewContext(a.Value.Resolve().String())
			continue
		}
		appendAttr(&sb, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		ctx:    ctx,
		attrs:  sb.String(),
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		ctx:    s.ctx,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToKind converts a slog.Level to a core.Kind.
func slogLevelToKind(level slog.Level) core.Kind {
	switch {
	case level >= slog.LevelError:
		return core.KindError
	case level >= slog.LevelWarn:
		return core.KindWarn
	case level >= slog.LevelInfo:
		return core.KindInfo
	default:
		return core.KindDebug
	}
}

// appendAttr writes " key=value", prefixing the key with group and
// flattening nested groups.
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	v := a.Value.String()
	if needsQuoting(v) {
		v = strconv.Quote(v)
	}
	sb.WriteString(v)
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			return true
		}
	}
	return false
}

var _ slog.Handler = (*SlogHandler)(nil)
