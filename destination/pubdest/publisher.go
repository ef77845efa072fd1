// Package pubdest provides a destination that fans entries out to
// in-process subscribers, e.g. a terminal UI that shows recent log lines.
//
// Each [Subscription] owns a buffered channel with ring-buffer semantics:
// when it is full the oldest record is dropped, so logging never blocks on
// a slow reader.
//
//	pub := pubdest.New()
//	log.AddDestination(pub)
//
//	sub := pub.Subscribe()
//	go func() {
//		for rec := range sub.C() {
//			// Render rec.Text colored by rec.Kind.
//		}
//	}()
package pubdest

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination"
	"github.com/philipp01105/fanlog/formatter"
)

const defaultBufferSize = 64

// Publisher is a [destination.Destination] that delivers every entry to all
// active subscriptions. Safe for concurrent use.
//
// Create instances with [New].
type Publisher struct {
	subscribers []*Subscription
	bufSize     int
	now         func() time.Time
	mu          sync.Mutex
	closed      bool
}

// Option configures a [Publisher].
type Option func(*Publisher)

// WithBufferSize sets the channel buffer size for new subscriptions.
// Values less than 1 are clamped to 1.
func WithBufferSize(n int) Option {
	return func(p *Publisher) {
		if n < 1 {
			n = 1
		}

		p.bufSize = n
	}
}

// WithClock sets the function stamping each record. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a [Publisher] with the given options.
// The default buffer size is 64.
func New(opts ...Option) *Publisher {
	p := &Publisher{
		bufSize: defaultBufferSize,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Log sends a record to all active subscribers. When a subscriber's
// channel is full the oldest record is dropped to make room. Closed
// subscriptions are compacted out of the subscriber list.
func (p *Publisher) Log(text string, kind core.Kind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	rec := formatter.Record{Time: p.now(), Kind: kind, Text: text}

	// Compact closed subscriptions and deliver in one pass.
	alive := p.subscribers[:0]
	for _, sub := range p.subscribers {
		if sub.closed.Load() {
			close(sub.ch)
			continue
		}

		select {
		case sub.ch <- rec:
		default:
			// The reader may drain the channel concurrently, so neither
			// step may block.
			select {
			case <-sub.ch:
				sub.dropped.Add(1)
			default:
			}

			select {
			case sub.ch <- rec:
			default:
				sub.dropped.Add(1)
			}
		}

		alive = append(alive, sub)
	}
	// Clear trailing references for GC.
	for i := len(alive); i < len(p.subscribers); i++ {
		p.subscribers[i] = nil
	}

	p.subscribers = alive
}

// Subscribe creates and registers a new [Subscription]. If the Publisher is
// already closed the returned subscription's channel is immediately closed.
func (p *Publisher) Subscribe() *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	sub := &Subscription{
		ch: make(chan formatter.Record, p.bufSize),
	}

	if p.closed {
		close(sub.ch)
		return sub
	}

	p.subscribers = append(p.subscribers, sub)

	return sub
}

// Close marks the Publisher as closed, closes all subscription channels,
// and releases the subscriber list. Idempotent.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true
	for _, sub := range p.subscribers {
		close(sub.ch)
	}

	p.subscribers = nil

	return nil
}

// Subscription receives records from a [Publisher].
type Subscription struct {
	ch      chan formatter.Record
	closed  atomic.Bool
	dropped atomic.Uint64
}

// C returns the read-only channel that delivers records.
func (s *Subscription) C() <-chan formatter.Record {
	return s.ch
}

// Dropped returns how many records were discarded because the channel was full.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

// Close marks the subscription as closed. The Publisher will close the
// underlying channel on its next Log or Close call. Idempotent.
func (s *Subscription) Close() {
	s.closed.Store(true)
}

var _ destination.Destination = (*Publisher)(nil)
