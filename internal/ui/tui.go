// Package ui provides the optional terminal interface.
package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dculotta/taskline/internal/tracker"
)

// RunTUI starts the interactive task viewer. It reloads the collection
// every second so edits from other invocations show up.
func RunTUI(ctx context.Context, tr tracker.Tracker, opts tracker.ListOptions) error {
	model := newTUIModel(tr, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type tuiModel struct {
	tracker      tracker.Tracker
	opts         tracker.ListOptions
	table        string
	loadErr      error
	showHelp     bool
	tickInterval time.Duration
}

type tickMsg time.Time

func newTUIModel(tr tracker.Tracker, opts tracker.ListOptions) *tuiModel {
	return &tuiModel{
		tracker:      tr,
		opts:         opts,
		tickInterval: time.Second,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "a":
			m.opts.All = !m.opts.All
			m.refresh()
			return m, nil
		case "o":
			m.opts.Overdue = !m.opts.Overdue
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}
	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString("taskline\n\n")

	if m.showHelp {
		b.WriteString("  q      quit\n")
		b.WriteString("  r/f5   reload\n")
		b.WriteString("  a      toggle completed tasks\n")
		b.WriteString("  o      toggle overdue filter\n")
		b.WriteString("  ?      toggle this help\n")
		writeFooter(&b)
		return b.String()
	}

	var filters []string
	if m.opts.All {
		filters = append(filters, "all")
	}
	if m.opts.Overdue {
		filters = append(filters, "overdue")
	}
	if len(m.opts.Tags) > 0 {
		filters = append(filters, "tags: "+strings.Join(m.opts.Tags, ", "))
	}
	if len(filters) > 0 {
		b.WriteString("Filters: " + strings.Join(filters, " | ") + "\n\n")
	}

	if m.loadErr != nil {
		b.WriteString("Error loading tasks:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n")
		writeFooter(&b)
		return b.String()
	}

	b.WriteString(m.table)
	writeFooter(&b)
	return b.String()
}

func (m *tuiModel) refresh() {
	// Re-anchor overdue checks on every reload
	m.opts.Now = time.Now()
	table, err := m.tracker.List(m.opts)
	m.loadErr = err
	if err == nil {
		m.table = table
	}
}

func writeFooter(b *strings.Builder) {
	b.WriteString("\nq quit · r reload · a all · o overdue · ? help\n")
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
