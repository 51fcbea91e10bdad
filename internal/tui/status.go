package tui

import (
	"fmt"
	"path/filepath"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/guilhermegouw/leaguebook/internal/events"
	"github.com/guilhermegouw/leaguebook/internal/tui/styles"
)

// Status is the console's current state.
type Status int

// Statuses.
const (
	StatusReady Status = iota
	StatusRunning
	StatusNotice
	StatusError
)

// StatusBar shows the console state, the league size and the last save.
type StatusBar struct { //nolint:govet // fieldalignment: preserving logical field order
	status  Status
	message string
	counts  string
	saved   string
	width   int
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{status: StatusReady}
}

// SetStatus sets the current status and clears any message.
func (s *StatusBar) SetStatus(status Status) {
	s.status = status
	s.message = ""
}

// SetNotice shows a short informational message.
func (s *StatusBar) SetNotice(msg string) {
	s.status = StatusNotice
	s.message = msg
}

// SetError shows an error message.
func (s *StatusBar) SetError(msg string) {
	s.status = StatusError
	s.message = msg
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// HandleRecord updates the bar from a command event.
func (s *StatusBar) HandleRecord(e events.RecordEvent) {
	switch e.Type {
	case events.RecordEventExecuted:
		s.counts = fmt.Sprintf("#%d  %d players  %d teams  %d matches", e.Seq, e.Players, e.Teams, e.Matches)
	case events.RecordEventSaveFailed:
		s.SetError("not saved: " + e.Error)
	}
}

// HandleStore updates the bar from a storage event.
func (s *StatusBar) HandleStore(e events.StoreEvent) {
	s.saved = fmt.Sprintf("%s %s %s", e.Type, filepath.Base(e.Path), e.Timestamp.Format("15:04:05"))
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := styles.CurrentTheme()

	var statusText string
	var statusStyle lipgloss.Style

	switch s.status {
	case StatusReady:
		statusText = "Ready"
		statusStyle = t.S().Success
	case StatusRunning:
		statusText = "Running..."
		statusStyle = t.S().Info
	case StatusNotice:
		statusText = s.message
		statusStyle = t.S().Info
	case StatusError:
		statusText = "Error: " + s.message
		statusStyle = t.S().Error
	}

	left := statusStyle.Render(statusText)
	if s.counts != "" {
		left += t.S().Muted.Render("  " + s.counts)
	}
	right := t.S().Subtle.Render(s.saved)
	if room := s.width - lipgloss.Width(right) - 3; s.width > 0 && lipgloss.Width(left) > room {
		left = ansi.Truncate(left, max(room, 0), "…")
	}

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	content := left + lipgloss.NewStyle().Width(gap).Render("") + right

	return lipgloss.NewStyle().
		Width(s.width).
		Padding(0, 1).
		Background(t.BgSubtle).
		Render(content)
}
