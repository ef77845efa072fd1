package logger

import (
	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination"
)

// Builder accumulates one entry and submits it with Send.
//
// Nothing reaches any destination before Send. A Builder is single-shot
// and must not be shared between goroutines.
type Builder struct {
	sink   *destination.Broadcaster
	entry  core.Entry
	fmtErr error
	sent   bool
}

func newBuilder(sink *destination.Broadcaster, ctx core.Context) *Builder {
	return &Builder{
		sink:  sink,
		entry: core.Entry{Context: ctx, Kind: core.KindInfo},
	}
}

// Context sets the source of the entry
func (b *Builder) Context(ctx core.Context) *Builder {
	b.entry.Context = ctx
	return b
}

// Kind sets the category of the entry
func (b *Builder) Kind(kind core.Kind) *Builder {
	b.entry.Kind = kind
	return b
}

// Message sets the message text. With args the template is expanded with
// fmt verbs; a verb/argument mismatch is remembered and returned by Send.
// Without args the template is stored as is.
func (b *Builder) Message(template string, args ...any) *Builder {
	msg, err := core.Sprintf(template, args...)
	b.entry.Message = msg
	b.fmtErr = err
	return b
}

// Exception attaches err together with its trace. An INFO entry becomes
// an EXCEPTION; any other kind is kept. A nil err is ignored.
func (b *Builder) Exception(err error) *Builder {
	return b.exception(err, 1)
}

// exception drops skip frames above itself from the captured stack.
func (b *Builder) exception(err error, skip int) *Builder {
	if err == nil {
		return b
	}
	b.entry.Err = err
	b.entry.Trace = core.TraceOf(err, core.CaptureStack(skip+1))
	if b.entry.Kind == core.KindInfo {
		b.entry.Kind = core.KindException
	}
	return b
}

// Entry returns the entry accumulated so far
func (b *Builder) Entry() core.Entry {
	return b.entry
}

// Send renders the entry and broadcasts it. It returns the pending
// formatting error without delivering anything, and core.ErrAlreadySent
// when called more than once.
func (b *Builder) Send() error {
	if b.sent {
		return core.ErrAlreadySent
	}
	b.sent = true

	if b.fmtErr != nil {
		return b.fmtErr
	}

	b.sink.Log(b.entry.Render(), b.entry.Kind)
	return nil
}
