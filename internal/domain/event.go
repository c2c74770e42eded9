package domain

import (
	"context"
	"time"
)

// Event is a single observed screenshot occurrence. The watch loop treats it
// as a unit signal; the payload fields exist for display only.
type Event struct {
	Path   string    // originating file, empty for non-file sources
	Source string    // source kind label ("dir", "signal", "interval")
	At     time.Time // when the event was observed
}

// EventSource produces screenshot events. Each Subscribe call yields an
// independent subscription; the returned channel is closed when ctx is
// cancelled or the source ends. Events emitted while no subscription is open
// are lost — sources make no buffering promise beyond their channel capacity.
type EventSource interface {
	Subscribe(ctx context.Context) (<-chan Event, error)
}

// Basename returns the file name portion of the event path, or the source
// label when the event has no path.
func (e Event) Basename() string {
	if e.Path == "" {
		return e.Source
	}
	for i := len(e.Path) - 1; i >= 0; i-- {
		if e.Path[i] == '/' || e.Path[i] == '\\' {
			return e.Path[i+1:]
		}
	}
	return e.Path
}
