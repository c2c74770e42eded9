package oneshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveClosesDone(t *testing.T) {
	g := New()
	assert.False(t, g.Resolved())

	g.Resolve()

	select {
	case <-g.Done():
	case <-time.After(time.Second):
		t.Fatal("done channel not closed")
	}
	assert.True(t, g.Resolved())
}

func TestDoubleResolveIsSafe(t *testing.T) {
	g := New()
	assert.NotPanics(t, func() {
		g.Resolve()
		g.Resolve()
		g.Resolve()
	})
	assert.True(t, g.Resolved())
}

func TestResolveFromMultipleGoroutines(t *testing.T) {
	g := New()
	for i := 0; i < 10; i++ {
		go g.Resolve()
	}
	select {
	case <-g.Done():
	case <-time.After(time.Second):
		t.Fatal("done channel not closed")
	}
}
