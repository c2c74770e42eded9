package watch

import (
	"context"

	"github.com/snapcount/snapcount/internal/counter"
)

// CounterReaction is the production reaction: one Increment per invocation.
type CounterReaction struct {
	counter *counter.Counter
}

// NewCounterReaction binds a reaction to a counter. The counter does not know
// about the reaction, so construction order is always counter first, reaction
// second — no cycle.
func NewCounterReaction(c *counter.Counter) *CounterReaction {
	return &CounterReaction{counter: c}
}

// React increments the bound counter exactly once. A nil counter makes this a
// no-op rather than a panic so a torn-down host cannot crash the watch loop.
func (r *CounterReaction) React(ctx context.Context) {
	if r == nil || r.counter == nil {
		return
	}
	r.counter.Increment()
}
