// Package oneshot provides a single-resolution gate: a channel that can be
// resolved exactly once, with repeated resolution a safe no-op instead of a
// panic or double-resume.
package oneshot

import "sync"

// Gate is a one-shot completion signal. The zero value is not usable; create
// one with New.
type Gate struct {
	once sync.Once
	done chan struct{}
}

// New creates an unresolved Gate.
func New() *Gate {
	return &Gate{done: make(chan struct{})}
}

// Resolve marks the gate as done. Calls after the first are no-ops.
func (g *Gate) Resolve() {
	g.once.Do(func() { close(g.done) })
}

// Done returns a channel closed when the gate resolves.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}

// Resolved reports whether Resolve has been called.
func (g *Gate) Resolved() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}
