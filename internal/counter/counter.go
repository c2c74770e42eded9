package counter

import "sync"

// Observer is notified after every count change.
type Observer interface {
	OnCount(n int)
}

// Counter owns the screenshot tally. All mutation goes through Increment,
// guarded by a single mutex, so observers never see a torn read and
// concurrent increments never interleave destructively.
type Counter struct {
	mu       sync.Mutex
	count    int
	observer Observer
}

// Option configures a Counter.
type Option func(*Counter)

// WithObserver registers an observer notified after each increment.
func WithObserver(o Observer) Option {
	return func(c *Counter) { c.observer = o }
}

// New creates a Counter starting at zero.
func New(opts ...Option) *Counter {
	c := &Counter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Increment adds exactly one to the count. It is total: it cannot fail and
// is safe from any goroutine.
func (c *Counter) Increment() {
	c.mu.Lock()
	c.count++
	n := c.count
	obs := c.observer
	c.mu.Unlock()

	// Notify outside the lock so a slow observer cannot block readers.
	if obs != nil {
		obs.OnCount(n)
	}
}

// Count returns the current tally.
func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}
