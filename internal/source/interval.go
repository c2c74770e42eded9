package source

import (
	"context"
	"time"

	"github.com/snapcount/snapcount/internal/domain"
)

// Interval emits one event per fixed period. Demo mode: it lets the app be
// tried without taking any screenshots.
type Interval struct {
	period time.Duration
}

// NewInterval creates an interval source. Periods below 100ms are clamped.
func NewInterval(period time.Duration) *Interval {
	if period < 100*time.Millisecond {
		period = 100 * time.Millisecond
	}
	return &Interval{period: period}
}

// Subscribe emits an event every period until ctx is cancelled.
func (s *Interval) Subscribe(ctx context.Context) (<-chan domain.Event, error) {
	out := make(chan domain.Event)

	go func() {
		defer close(out)
		ticker := time.NewTicker(s.period)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				ev := domain.Event{Source: KindInterval, At: t}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
