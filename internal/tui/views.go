package tui

import (
	"fmt"
	"strings"

	"github.com/snapcount/snapcount/internal/tui/styles"
)

// View renders the counter screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("snapcount"))
	b.WriteString("\n\n")

	b.WriteString(styles.CounterBoxStyle.Render(
		styles.CountStyle.Render(fmt.Sprintf("%d", m.count)) +
			styles.SubtitleStyle.Render(" screenshots this session"),
	))
	b.WriteString("\n\n")

	switch m.State {
	case StateSessions:
		b.WriteString(m.sessionsView())
	default:
		b.WriteString(m.logView())
	}

	b.WriteString("\n")
	b.WriteString(m.footerView())

	return b.String()
}

// logView renders the recent-event pane, filtered when a query is active.
func (m Model) logView() string {
	var lines []string

	if m.State == StateFiltering {
		lines = append(lines, m.FilterInput.View())
	}

	query := ""
	if m.State == StateFiltering {
		query = m.FilterInput.Value()
	}
	results := filterEvents(m.events, query)

	visible := m.logHeight()
	// Newest at the bottom; scroll offsets from the tail.
	start := len(results) - visible - m.scroll
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(results) {
		end = len(results)
	}

	if len(results) == 0 {
		lines = append(lines, styles.DimStyle.Render("waiting for screenshots..."))
	}
	for _, r := range results[start:end] {
		stamp := styles.DimStyle.Render(r.Event.At.Format("15:04:05"))
		name := highlight(r.Event.Basename(), r.MatchedIndexes)
		src := styles.SubtitleStyle.Render(r.Event.Source)
		lines = append(lines, fmt.Sprintf("%s  %s  %s", stamp, name, src))
	}

	return styles.LogPaneStyle.Render(strings.Join(lines, "\n"))
}

// sessionsView renders the past-session overlay.
func (m Model) sessionsView() string {
	lines := []string{m.FilterInput.View()}

	if len(m.sessions) == 0 {
		lines = append(lines, styles.DimStyle.Render("no recorded sessions"))
	}
	max := m.logHeight()
	for i, sess := range m.sessions {
		if i >= max {
			break
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			styles.DimStyle.Render(sess.Started.Format("2006-01-02 15:04")),
			styles.AccentStyle.Render(fmt.Sprintf("%4d", sess.Count)),
			styles.SubtitleStyle.Render(sess.Source),
		))
	}

	return styles.OverlayStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) footerView() string {
	parts := []string{
		"q quit", "/ filter", "s sessions", "esc close",
	}
	footer := styles.FooterStyle.Render(strings.Join(parts, " · "))
	if m.lifetime > 0 {
		footer += styles.DimStyle.Render(fmt.Sprintf("   lifetime: %d", m.lifetime+m.count))
	}
	if m.watchErr != nil {
		footer += "\n" + styles.ErrorStyle.Render(m.watchErr.Error())
	} else if m.stopped {
		footer += "\n" + styles.DimStyle.Render("watch loop stopped")
	}
	return footer
}

// logHeight is how many log lines fit under the counter box and footer.
func (m Model) logHeight() int {
	h := m.Height - 12
	if h < 3 {
		h = 3
	}
	return h
}

// highlight renders name with the matched rune positions emphasized.
func highlight(name string, matched []int) string {
	if len(matched) == 0 {
		return styles.TitleStyle.Render(name)
	}
	set := make(map[int]struct{}, len(matched))
	for _, idx := range matched {
		set[idx] = struct{}{}
	}
	var b strings.Builder
	for i, r := range []rune(name) {
		if _, ok := set[i]; ok {
			b.WriteString(styles.MatchStyle.Render(string(r)))
		} else {
			b.WriteString(styles.TitleStyle.Render(string(r)))
		}
	}
	return b.String()
}
