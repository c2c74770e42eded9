package watch

import "github.com/snapcount/snapcount/internal/domain"

// ChannelEventObserver adapts EventObserver to a channel for Bubble Tea.
type ChannelEventObserver struct {
	ch chan<- domain.Event
}

// NewChannelEventObserver creates a new channel-based event observer.
func NewChannelEventObserver(ch chan<- domain.Event) *ChannelEventObserver {
	return &ChannelEventObserver{ch: ch}
}

// OnEvent sends the event to the channel (non-blocking if full).
func (o *ChannelEventObserver) OnEvent(ev domain.Event) {
	select {
	case o.ch <- ev:
	default: // Non-blocking if channel full
	}
}
