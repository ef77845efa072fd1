// Package logtest provides destinations for testing code that logs through
// fanlog.
//
// Recorder captures every call so tests can assert on the exact rendered
// text and kind:
//
//	rec := logtest.NewRecorder()
//	log := logger.New()
//	log.AddDestination(rec)
//	log.Info("ready")
//	rec.Calls() // -> []logtest.Call{{Text: "[System] ready", Kind: core.KindInfo}}
package logtest

import (
	"sync"

	"github.com/philipp01105/fanlog/core"
)

// Call is one recorded Log invocation.
type Call struct {
	Text string
	Kind core.Kind
}

// Recorder is a destination that keeps every call in memory.
// Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
	// OnLog, if set, is invoked after the call is recorded.
	OnLog func(Call)
}

// NewRecorder creates an empty [Recorder].
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Log records the call.
func (r *Recorder) Log(text string, kind core.Kind) {
	c := Call{Text: text, Kind: kind}

	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()

	if r.OnLog != nil {
		r.OnLog(c)
	}
}

// Calls returns a copy of the recorded calls in arrival order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Call, len(r.calls))
	copy(out, r.calls)

	return out
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.calls)
}

// Last returns the most recent call and whether there was one.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.calls) == 0 {
		return Call{}, false
	}

	return r.calls[len(r.calls)-1], true
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

// Panicking is a destination whose Log always panics with Value, simulating
// a destination whose output fails catastrophically.
type Panicking struct {
	Value any
}

// Log panics.
func (p Panicking) Log(string, core.Kind) {
	panic(p.Value)
}

// Closer is a [Recorder] that also implements io.Closer, returning Err.
type Closer struct {
	Recorder

	Err    error
	closed int
	mu     sync.Mutex
}

// Close counts the call and returns c.Err.
func (c *Closer) Close() error {
	c.mu.Lock()
	c.closed++
	c.mu.Unlock()

	return c.Err
}

// Closed returns how many times Close was called.
func (c *Closer) Closed() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}
