// Package style renders terminal text effects for task listings.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the terminal effects used by the table renderer. A nil
// *Styles, or one constructed with New(false), renders everything plain.
type Styles struct {
	enabled bool
	header  lipgloss.Style
	done    lipgloss.Style
	overdue lipgloss.Style
	struck  lipgloss.Style
}

// New builds the effect set. When enabled is false every method is a
// pass-through.
func New(enabled bool) *Styles {
	return &Styles{
		enabled: enabled,
		header:  lipgloss.NewStyle().Bold(true),
		done:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		overdue: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		struck:  lipgloss.NewStyle().Strikethrough(true),
	}
}

// Header styles a table header cell.
func (s *Styles) Header(text string) string {
	if s == nil || !s.enabled {
		return text
	}
	return s.header.Render(text)
}

// Done styles a completion mark.
func (s *Styles) Done(text string) string {
	if s == nil || !s.enabled {
		return text
	}
	return s.done.Render(text)
}

// Overdue styles a past deadline.
func (s *Styles) Overdue(text string) string {
	if s == nil || !s.enabled {
		return text
	}
	return s.overdue.Render(text)
}

// Struck styles the name of a completed task.
func (s *Styles) Struck(text string) string {
	if s == nil || !s.enabled {
		return text
	}
	return s.struck.Render(text)
}

// Pad right-pads text with spaces to the given display width. Escape
// sequences do not count toward the width, so styled cells stay aligned.
func Pad(text string, width int) string {
	gap := width - lipgloss.Width(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}
