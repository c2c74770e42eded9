//go:build unix

package source

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/snapcount/snapcount/internal/domain"
)

// Signal emits one event per SIGUSR1 delivered to the process. Handy when no
// screenshot directory exists: `kill -USR1 $(pidof snapcount)` is an event.
type Signal struct{}

// NewSignal creates a SIGUSR1 source.
func NewSignal() (*Signal, error) {
	return &Signal{}, nil
}

// Subscribe registers for SIGUSR1 and pumps deliveries into the returned
// channel until ctx is cancelled.
func (s *Signal) Subscribe(ctx context.Context) (<-chan domain.Event, error) {
	sigs := make(chan os.Signal, 8)
	signal.Notify(sigs, syscall.SIGUSR1)

	out := make(chan domain.Event, 8)

	go func() {
		defer close(out)
		defer signal.Stop(sigs)

		for {
			select {
			case <-ctx.Done():
				return
			case <-sigs:
				ev := domain.Event{Source: KindSignal, At: time.Now()}
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
