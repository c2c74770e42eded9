package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/snapcount/snapcount/internal/config"
	"github.com/snapcount/snapcount/internal/counter"
	"github.com/snapcount/snapcount/internal/domain"
	"github.com/snapcount/snapcount/internal/history"
	"github.com/snapcount/snapcount/internal/watch"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateCounting ApplicationState = iota
	StateFiltering
	StateSessions
)

const channelBuffer = 64

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState

	// Wiring
	counter    *counter.Counter
	activation watch.Activation
	reaction   watch.Reaction
	countCh    chan int
	eventCh    chan domain.Event
	store      *history.Store
	logger     *slog.Logger

	// Watch loop lifetime; cancelled on quit
	ctx    context.Context
	cancel context.CancelFunc

	// UI state
	Keys        KeyMap
	FilterInput textinput.Model

	count     int // displayed count, mutated only in Update
	lifetime  int // lifetime tally from history, excludes current run
	events    []domain.Event
	maxEvents int
	scroll    int
	sessions  []history.Session
	watchErr  error
	stopped   bool

	// Dimensions
	Width  int
	Height int
}

// Option configures the model's injection seams.
type Option func(*Model)

// WithActivation replaces the whole watch-loop/reaction composition. The
// default loop and reaction are not constructed when this is set.
func WithActivation(a watch.Activation) Option {
	return func(m *Model) { m.activation = a }
}

// WithReaction replaces only the per-event reaction; the real watch loop is
// kept.
func WithReaction(r watch.Reaction) Option {
	return func(m *Model) { m.reaction = r }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.Keys = k }
}

// New wires the counter screen. With no options it builds the production
// composition: a counter-incrementing reaction driven by a watch loop over
// source. Options substitute the reaction alone or the whole activation,
// independently; neither substitution constructs the pieces it bypasses.
func New(cfg *config.Config, source domain.EventSource, store *history.Store, logger *slog.Logger, opts ...Option) Model {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	input := textinput.New()
	input.Placeholder = "filter"
	input.Prompt = "/"
	input.CharLimit = 64

	m := Model{
		State:       StateCounting,
		countCh:     make(chan int, channelBuffer),
		eventCh:     make(chan domain.Event, channelBuffer),
		store:       store,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
		Keys:        DefaultKeyMap(),
		FilterInput: input,
		maxEvents:   cfg.UI.LogLines,
	}
	if m.maxEvents <= 0 {
		m.maxEvents = 200
	}

	m.counter = counter.New(counter.WithObserver(counter.NewChannelObserver(m.countCh)))

	for _, opt := range opts {
		opt(&m)
	}

	if m.activation == nil {
		reaction := m.reaction
		if reaction == nil {
			reaction = watch.NewCounterReaction(m.counter)
		}
		m.activation = watch.NewLoop(source, reaction, logger,
			watch.WithEventObserver(watch.NewChannelEventObserver(m.eventCh)))
	}

	return m
}

// Count returns the value currently displayed. Main reads this off the final
// model to record the session.
func (m Model) Count() int {
	return m.count
}

// SetLifetime seeds the lifetime tally shown in the footer.
func (m *Model) SetLifetime(n int) {
	m.lifetime = n
}

// Init is the on-display hook: the Bubble Tea runtime invokes it exactly once
// when the program starts. It launches the activation and arms the channel
// listeners.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		startWatchCmd(m.ctx, m.activation),
		waitForCountCmd(m.countCh),
		waitForEventCmd(m.eventCh),
	)
}

// Update is the single designated execution context for all UI-observable
// state: the displayed count changes here and nowhere else.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case CountChangedMsg:
		m.count = msg.Count
		return m, waitForCountCmd(m.countCh)

	case EventObservedMsg:
		m.events = append(m.events, msg.Event)
		if len(m.events) > m.maxEvents {
			m.events = m.events[len(m.events)-m.maxEvents:]
		}
		return m, waitForEventCmd(m.eventCh)

	case WatchStoppedMsg:
		m.stopped = true
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			m.watchErr = msg.Err
			m.logger.Error("watch loop stopped", "error", msg.Err)
		}
		return m, nil

	case SessionsLoadedMsg:
		m.sessions = msg.Sessions
		return m, nil

	case ErrMsg:
		m.watchErr = msg
		m.logger.Error("tui error", "error", msg.Error())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text entry modes swallow everything except escape and enter.
	if m.State == StateFiltering || m.State == StateSessions {
		switch {
		case key.Matches(msg, m.Keys.Escape):
			m.State = StateCounting
			m.FilterInput.Reset()
			m.FilterInput.Blur()
			return m, nil
		case msg.String() == "enter":
			m.FilterInput.Blur()
			return m, nil
		}
		if m.FilterInput.Focused() {
			var cmd tea.Cmd
			m.FilterInput, cmd = m.FilterInput.Update(msg)
			if m.State == StateSessions {
				return m, tea.Batch(cmd, loadSessionsCmd(m.store, m.FilterInput.Value()))
			}
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		// Cancel the watch loop before leaving; no reaction may fire after
		// cancellation is observed.
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Filter):
		m.State = StateFiltering
		m.FilterInput.Reset()
		return m, m.FilterInput.Focus()

	case key.Matches(msg, m.Keys.Sessions):
		m.State = StateSessions
		m.FilterInput.Reset()
		return m, tea.Batch(m.FilterInput.Focus(), loadSessionsCmd(m.store, ""))

	case key.Matches(msg, m.Keys.Escape):
		m.State = StateCounting
		m.scroll = 0
		return m, nil

	case key.Matches(msg, m.Keys.Up):
		if m.scroll < len(m.events)-1 {
			m.scroll++
		}
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		if m.scroll > 0 {
			m.scroll--
		}
		return m, nil
	}

	return m, nil
}
