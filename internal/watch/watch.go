package watch

import (
	"context"
	"log/slog"

	"github.com/snapcount/snapcount/internal/domain"
)

// Reaction is the unit of behavior run once per observed event.
type Reaction interface {
	React(ctx context.Context)
}

// ReactionFunc adapts a plain function to Reaction.
type ReactionFunc func(ctx context.Context)

func (f ReactionFunc) React(ctx context.Context) { f(ctx) }

// Activation is the "what to do on display" unit. The hosting layer invokes
// Run exactly once when the counter screen becomes visible and cancels ctx to
// tear it down.
type Activation interface {
	Run(ctx context.Context) error
}

// EventObserver receives each event after its reaction has completed. Used by
// the TUI to display the raw event log; optional.
type EventObserver interface {
	OnEvent(ev domain.Event)
}

// Loop is the default Activation: it opens one subscription to its source and
// forwards every event to its reaction, one at a time, in emission order. The
// loop never completes on its own with a live source; it ends only when ctx
// is cancelled (returning ctx.Err()) or the source closes its channel
// (returning nil, which only test doubles do).
type Loop struct {
	source   domain.EventSource
	reaction Reaction
	observer EventObserver
	logger   *slog.Logger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithEventObserver registers an observer notified after each reaction.
func WithEventObserver(o EventObserver) LoopOption {
	return func(l *Loop) { l.observer = o }
}

// NewLoop creates the default watch loop over source, invoking reaction once
// per event.
func NewLoop(source domain.EventSource, reaction Reaction, logger *slog.Logger, opts ...LoopOption) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loop{
		source:   source,
		reaction: reaction,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run subscribes and processes events until ctx is cancelled. Reactions are
// sequential: the next event is not received until the current reaction has
// completed. No reaction fires for an event arriving after cancellation is
// observed.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debug("watch loop subscribing")
	events, err := l.source.Subscribe(ctx)
	if err != nil {
		return err
	}
	l.logger.Debug("watch loop listening")

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("watch loop cancelled")
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				l.logger.Debug("event source closed")
				return nil
			}
			// Re-check after the receive: select picks a ready case at
			// random, so cancellation may already have happened.
			if ctx.Err() != nil {
				l.logger.Debug("watch loop cancelled")
				return ctx.Err()
			}
			l.logger.Debug("event observed", "path", ev.Path, "source", ev.Source)
			l.reaction.React(ctx)
			if l.observer != nil {
				l.observer.OnEvent(ev)
			}
		}
	}
}
