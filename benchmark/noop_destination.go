package benchmark

import (
	"sync/atomic"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination"
)

// countingDestination only counts deliveries, isolating the cost of
// building and broadcasting an entry from any output work.
type countingDestination struct {
	n atomic.Uint64
}

func newCountingDestination() *countingDestination {
	return &countingDestination{}
}

func (d *countingDestination) Log(text string, _ core.Kind) {
	_ = len(text)
	d.n.Add(1)
}

var _ destination.Destination = (*countingDestination)(nil)
