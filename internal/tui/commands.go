package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/snapcount/snapcount/internal/domain"
	"github.com/snapcount/snapcount/internal/history"
	"github.com/snapcount/snapcount/internal/watch"
)

// Command factories for async operations

// startWatchCmd runs the activation inside the command goroutine. It does not
// return until the watch loop exits, which for the production loop means ctx
// was cancelled.
func startWatchCmd(ctx context.Context, activation watch.Activation) tea.Cmd {
	return func() tea.Msg {
		return WatchStoppedMsg{Err: activation.Run(ctx)}
	}
}

// waitForCountCmd receives one count update; Update re-arms it.
func waitForCountCmd(ch <-chan int) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return CountChangedMsg{Count: n}
	}
}

// waitForEventCmd receives one observed event; Update re-arms it.
func waitForEventCmd(ch <-chan domain.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return EventObservedMsg{Event: ev}
	}
}

// loadSessionsCmd loads session history, fuzzy-filtered by query.
func loadSessionsCmd(store *history.Store, query string) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return SessionsLoadedMsg{}
		}
		sessions, err := store.Search(query)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading sessions"}
		}
		return SessionsLoadedMsg{Sessions: sessions}
	}
}
