package tui

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/snapcount/snapcount/internal/domain"
)

// logIndex implements fuzzy.Source over the event log for zero-allocation
// matching against event basenames.
type logIndex []domain.Event

func (l logIndex) String(i int) string { return strings.ToLower(l[i].Basename()) }
func (l logIndex) Len() int            { return len(l) }

// filterResult pairs an event with the character positions that matched, for
// highlighting.
type filterResult struct {
	Event          domain.Event
	MatchedIndexes []int
}

// filterEvents returns the events whose basename fuzzy-matches query, best
// match first. An empty query returns everything in log order with no match
// metadata.
func filterEvents(events []domain.Event, query string) []filterResult {
	if query == "" {
		out := make([]filterResult, len(events))
		for i, ev := range events {
			out[i] = filterResult{Event: ev}
		}
		return out
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), logIndex(events))
	out := make([]filterResult, 0, len(matches))
	for _, m := range matches {
		out = append(out, filterResult{
			Event:          events[m.Index],
			MatchedIndexes: m.MatchedIndexes,
		})
	}
	return out
}
