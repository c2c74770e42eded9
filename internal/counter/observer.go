package counter

// ChannelObserver adapts Observer to a channel for Bubble Tea.
type ChannelObserver struct {
	ch chan<- int
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver(ch chan<- int) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnCount sends the new count to the channel (non-blocking if full).
func (o *ChannelObserver) OnCount(n int) {
	select {
	case o.ch <- n:
	default: // Non-blocking if channel full
	}
}
