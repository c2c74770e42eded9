package tui

import (
	"github.com/snapcount/snapcount/internal/domain"
	"github.com/snapcount/snapcount/internal/history"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CountChangedMsg signals that the counter value changed
type CountChangedMsg struct {
	Count int
}

// EventObservedMsg signals that the watch loop processed an event
type EventObservedMsg struct {
	Event domain.Event
}

// WatchStoppedMsg signals that the watch loop has exited
type WatchStoppedMsg struct {
	Err error
}

// SessionsLoadedMsg signals that session history is ready
type SessionsLoadedMsg struct {
	Sessions []history.Session
}
