package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/snapcount/snapcount/internal/config"
	"github.com/snapcount/snapcount/internal/domain"
	"github.com/snapcount/snapcount/internal/log"
	"github.com/snapcount/snapcount/internal/oneshot"
	"github.com/snapcount/snapcount/internal/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource pushes events on demand.
type fakeSource struct {
	ch chan domain.Event
}

func newFakeSource() *fakeSource {
	return &fakeSource{ch: make(chan domain.Event, 16)}
}

func (f *fakeSource) Subscribe(ctx context.Context) (<-chan domain.Event, error) {
	return f.ch, nil
}

func (f *fakeSource) Send(ev domain.Event) { f.ch <- ev }

// activationFunc adapts a function to watch.Activation.
type activationFunc func(ctx context.Context) error

func (f activationFunc) Run(ctx context.Context) error { return f(ctx) }

func newTestModel(t *testing.T, src domain.EventSource, opts ...Option) Model {
	t.Helper()
	m := New(config.DefaultConfig(), src, nil, log.NullLogger(), opts...)
	t.Cleanup(m.cancel)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCountChangedUpdatesDisplay(t *testing.T) {
	m := newTestModel(t, newFakeSource())

	next, cmd := m.Update(CountChangedMsg{Count: 3})

	assert.Equal(t, 3, next.(Model).Count())
	assert.NotNil(t, cmd, "count listener must be re-armed")
}

func TestEventObservedAppendsToLog(t *testing.T) {
	m := newTestModel(t, newFakeSource())

	ev := domain.Event{Path: "/tmp/shot.png", Source: "dir", At: time.Now()}
	next, cmd := m.Update(EventObservedMsg{Event: ev})

	nm := next.(Model)
	require.Len(t, nm.events, 1)
	assert.Equal(t, "/tmp/shot.png", nm.events[0].Path)
	assert.NotNil(t, cmd, "event listener must be re-armed")
}

func TestEventLogIsBounded(t *testing.T) {
	m := newTestModel(t, newFakeSource())
	m.maxEvents = 3

	var model tea.Model = m
	for i := 0; i < 5; i++ {
		model, _ = model.(Model).Update(EventObservedMsg{
			Event: domain.Event{Source: "test", At: time.Now()},
		})
	}

	assert.Len(t, model.(Model).events, 3)
}

func TestQuitCancelsWatchLoop(t *testing.T) {
	m := newTestModel(t, newFakeSource())

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)

	select {
	case <-m.ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("quit did not cancel the watch context")
	}
}

func TestWatchStoppedCancellationIsNotAnError(t *testing.T) {
	m := newTestModel(t, newFakeSource())

	next, _ := m.Update(WatchStoppedMsg{Err: context.Canceled})

	nm := next.(Model)
	assert.True(t, nm.stopped)
	assert.NoError(t, nm.watchErr)
}

func TestWithActivationBypassesWatchLoop(t *testing.T) {
	gate := oneshot.New()
	fake := activationFunc(func(ctx context.Context) error {
		gate.Resolve()
		return nil
	})

	// No event source is constructed or needed when the whole activation is
	// substituted.
	m := newTestModel(t, nil, WithActivation(fake))

	msg := startWatchCmd(m.ctx, m.activation)()

	assert.True(t, gate.Resolved())
	assert.IsType(t, WatchStoppedMsg{}, msg)
}

func TestWithReactionKeepsRealWatchLoop(t *testing.T) {
	src := newFakeSource()
	reacted := make(chan struct{}, 4)
	m := newTestModel(t, src, WithReaction(watch.ReactionFunc(func(context.Context) {
		reacted <- struct{}{}
	})))

	done := make(chan error, 1)
	go func() { done <- m.activation.Run(m.ctx) }()

	src.Send(domain.Event{Source: "test", At: time.Now()})

	select {
	case <-reacted:
	case <-time.After(2 * time.Second):
		t.Fatal("substituted reaction never fired")
	}

	// The production counter reaction was bypassed entirely.
	assert.Equal(t, 0, m.counter.Count())

	m.cancel()
	<-done
}

func TestProductionDefaultIncrementsCounter(t *testing.T) {
	src := newFakeSource()
	m := newTestModel(t, src)

	done := make(chan error, 1)
	go func() { done <- m.activation.Run(m.ctx) }()

	for i := 0; i < 3; i++ {
		src.Send(domain.Event{Source: "test", At: time.Now()})
	}

	require.Eventually(t, func() bool { return m.counter.Count() == 3 },
		2*time.Second, 10*time.Millisecond)

	// Count updates flow to the display channel.
	var last int
	for i := 0; i < 3; i++ {
		select {
		case last = <-m.countCh:
		case <-time.After(time.Second):
			t.Fatal("missing count update")
		}
	}
	assert.Equal(t, 3, last)

	m.cancel()
	<-done
}

func TestFilterEvents(t *testing.T) {
	events := []domain.Event{
		{Path: "/s/screenshot-001.png"},
		{Path: "/s/photo.jpg"},
		{Path: "/s/screenshot-002.png"},
	}

	all := filterEvents(events, "")
	assert.Len(t, all, 3)

	matched := filterEvents(events, "screenshot")
	require.Len(t, matched, 2)
	for _, r := range matched {
		assert.Contains(t, r.Event.Path, "screenshot")
		assert.NotEmpty(t, r.MatchedIndexes)
	}
}

func TestViewShowsCount(t *testing.T) {
	m := newTestModel(t, newFakeSource())

	next, _ := m.Update(CountChangedMsg{Count: 7})
	out := next.(Model).View()

	assert.Contains(t, out, "snapcount")
	assert.Contains(t, out, "7")
}
