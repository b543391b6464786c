package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/morrow/internal/tui/styles"
)

// StatusBar renders a bottom help bar showing contextual help items.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width and items.
// Items are joined with " • " separator and padded to fill the width.
func (s StatusBar) Render(width int, items []string) string {
	if len(items) == 0 {
		return styles.StatusBarStyle.Width(width).Render("")
	}

	content := strings.Join(items, " • ")

	return styles.StatusBarStyle.Width(width).Render(content)
}

// RenderWithNote renders the help items plus a right-aligned note, padding
// the middle so the note lands at the right edge. The note is dropped when
// the width cannot hold both.
func (s StatusBar) RenderWithNote(width int, items []string, note string) string {
	if note == "" {
		return s.Render(width, items)
	}

	left := strings.Join(items, " • ")
	gap := width - lipgloss.Width(left) - lipgloss.Width(note)
	if gap < 1 {
		return s.Render(width, items)
	}

	return styles.StatusBarStyle.Render(left + strings.Repeat(" ", gap) + note)
}
