package destination

import (
	"sync/atomic"

	"github.com/philipp01105/fanlog/core"
)

// Stats tracks broadcaster statistics
type Stats struct {
	// Broadcasts per kind that reached the destination loop
	delivered [8]atomic.Uint64
	// DEBUG entries dropped because debug was disabled
	debugDropped atomic.Uint64
	// Destination calls that panicked and were recovered
	panics atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDelivered atomically increments the delivered counter for a kind
func (s *Stats) IncrementDelivered(kind core.Kind) {
	if int(kind) < len(s.delivered) {
		s.delivered[kind].Add(1)
	}
}

// IncrementDebugDropped atomically increments the dropped debug counter
func (s *Stats) IncrementDebugDropped() {
	s.debugDropped.Add(1)
}

// IncrementPanics atomically increments the recovered panic counter
func (s *Stats) IncrementPanics() {
	s.panics.Add(1)
}

// GetDelivered returns the delivered count for a kind
func (s *Stats) GetDelivered(kind core.Kind) uint64 {
	if int(kind) < len(s.delivered) {
		return s.delivered[kind].Load()
	}
	return 0
}

// GetTotalDelivered returns the delivered count across all kinds
func (s *Stats) GetTotalDelivered() uint64 {
	var total uint64
	for i := range s.delivered {
		total += s.delivered[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.delivered {
		s.delivered[i].Store(0)
	}
	s.debugDropped.Store(0)
	s.panics.Store(0)
}

// Snapshot is a point-in-time copy of the broadcaster statistics
type Snapshot struct {
	Delivered      map[core.Kind]uint64
	DeliveredTotal uint64
	DebugDropped   uint64
	Panics         uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	delivered := make(map[core.Kind]uint64, len(core.Kinds))
	for _, k := range core.Kinds {
		delivered[k] = s.GetDelivered(k)
	}
	return Snapshot{
		Delivered:      delivered,
		DeliveredTotal: s.GetTotalDelivered(),
		DebugDropped:   s.debugDropped.Load(),
		Panics:         s.panics.Load(),
	}
}
