package destination

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/fanlog/core"
)

// Broadcaster forwards every accepted entry to all registered destinations
// in registration order. It is itself a Destination, so broadcasters nest.
//
// The registry is copy-on-write: Log iterates an immutable snapshot without
// taking a lock, and Add swaps in a new slice under mu.
type Broadcaster struct {
	mu    sync.Mutex // serializes Add and Close
	dests atomic.Pointer[[]Destination]
	debug atomic.Bool
	diag  *zap.Logger
	stats *Stats
}

// Option configures a Broadcaster
type Option func(*Broadcaster)

// WithDiagnostics sets the logger used to report recovered destination
// panics and close failures. The default discards everything.
func WithDiagnostics(l *zap.Logger) Option {
	return func(b *Broadcaster) {
		if l != nil {
			b.diag = l
		}
	}
}

// WithDebugEnabled sets the initial value of the debug flag
func WithDebugEnabled(enabled bool) Option {
	return func(b *Broadcaster) {
		b.debug.Store(enabled)
	}
}

// NewBroadcaster creates a broadcaster with an empty registry
func NewBroadcaster(opts ...Option) *Broadcaster {
	b := &Broadcaster{
		diag:  zap.NewNop(),
		stats: NewStats(),
	}
	empty := make([]Destination, 0)
	b.dests.Store(&empty)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// nestMu serializes adding one broadcaster to another, so two concurrent
// Adds cannot each pass the cycle check and close a loop together.
var nestMu sync.Mutex

// Add appends d to the registry. It fails with core.ErrInvalidArgument when
// d is nil (or a typed nil), is the broadcaster itself, or is a broadcaster
// that already reaches b through its own nested registries.
func (b *Broadcaster) Add(d Destination) error {
	if isNil(d) {
		return fmt.Errorf("%w: destination is nil", core.ErrInvalidArgument)
	}
	if other, ok := d.(*Broadcaster); ok {
		if other == b {
			return fmt.Errorf("%w: broadcaster cannot be added to itself", core.ErrInvalidArgument)
		}
		nestMu.Lock()
		defer nestMu.Unlock()
		if other.reaches(b, make(map[*Broadcaster]bool)) {
			return fmt.Errorf("%w: destination cycle", core.ErrInvalidArgument)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	cur := *b.dests.Load()
	next := make([]Destination, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, d)
	b.dests.Store(&next)
	return nil
}

// reaches reports whether target is b or is registered, at any depth, in
// b's nested broadcasters
func (b *Broadcaster) reaches(target *Broadcaster, seen map[*Broadcaster]bool) bool {
	if b == target {
		return true
	}
	if seen[b] {
		return false
	}
	seen[b] = true
	for _, d := range *b.dests.Load() {
		if nested, ok := d.(*Broadcaster); ok && nested.reaches(target, seen) {
			return true
		}
	}
	return false
}

// Log forwards text and kind to every destination. DEBUG entries are
// dropped silently while the debug flag is off.
func (b *Broadcaster) Log(text string, kind core.Kind) {
	if kind == core.KindDebug && !b.debug.Load() {
		b.stats.IncrementDebugDropped()
		return
	}

	for i, d := range *b.dests.Load() {
		b.forward(i, d, text, kind)
	}
	b.stats.IncrementDelivered(kind)
}

// forward invokes one destination, recovering a panic so the remaining
// destinations still receive the entry
func (b *Broadcaster) forward(i int, d Destination, text string, kind core.Kind) {
	defer func() {
		if r := recover(); r != nil {
			b.stats.IncrementPanics()
			b.diag.Error("destination panicked",
				zap.Int("index", i),
				zap.String("destination", fmt.Sprintf("%T", d)),
				zap.Stringer("kind", kind),
				zap.Any("panic", r),
			)
		}
	}()
	d.Log(text, kind)
}

// SetDebugEnabled toggles delivery of DEBUG entries
func (b *Broadcaster) SetDebugEnabled(enabled bool) {
	b.debug.Store(enabled)
}

// DebugEnabled reports whether DEBUG entries are delivered
func (b *Broadcaster) DebugEnabled() bool {
	return b.debug.Load()
}

// Len returns the number of registered destinations
func (b *Broadcaster) Len() int {
	return len(*b.dests.Load())
}

// Destinations returns a copy of the registry in registration order
func (b *Broadcaster) Destinations() []Destination {
	cur := *b.dests.Load()
	out := make([]Destination, len(cur))
	copy(out, cur)
	return out
}

// Stats returns a snapshot of the current statistics
func (b *Broadcaster) Stats() Snapshot {
	return b.stats.GetSnapshot()
}

// Close closes every registered destination that implements io.Closer, in
// registration order, and returns their combined errors. It is never called
// implicitly; the registry is left intact.
func (b *Broadcaster) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	for _, d := range *b.dests.Load() {
		c, ok := d.(io.Closer)
		if !ok {
			continue
		}
		if closeErr := c.Close(); closeErr != nil {
			b.diag.Warn("closing destination failed",
				zap.String("destination", fmt.Sprintf("%T", d)),
				zap.Error(closeErr),
			)
			err = multierr.Append(err, closeErr)
		}
	}
	return err
}

var _ Destination = (*Broadcaster)(nil)
