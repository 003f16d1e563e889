package tracker

import (
	"strconv"
	"strings"
	"time"

	"github.com/dculotta/taskline/internal/style"
	"github.com/dculotta/taskline/internal/task"
)

// Minimum column widths for the listing table. Due is as wide as the
// rendered deadline format.
const (
	minIDWidth   = 1
	minNameWidth = 4
	minTagsWidth = 4
	minDueWidth  = 19
	minDoneWidth = 4
)

const doneMark = "✓"

type listRow struct {
	id int
	t  task.Task
}

// renderTable formats tasks as a column-aligned table. Ids are assigned
// over incomplete tasks before the overdue and tag filters apply, so a
// row keeps the same id the mutating commands would resolve. The id
// column is omitted when completed tasks are included.
func renderTable(tasks []task.Task, opts ListOptions) string {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	st := opts.Styles

	var rows []listRow
	if opts.All {
		for _, t := range tasks {
			rows = append(rows, listRow{id: -1, t: t})
		}
	} else {
		id := 0
		for _, t := range tasks {
			if t.Complete {
				continue
			}
			rows = append(rows, listRow{id: id, t: t})
			id++
		}
	}

	filtered := make([]listRow, 0, len(rows))
	for _, r := range rows {
		if opts.Overdue && !r.t.Overdue(now) {
			continue
		}
		if len(opts.Tags) > 0 && !r.t.HasTag(opts.Tags) {
			continue
		}
		filtered = append(filtered, r)
	}

	idWidth := minIDWidth
	nameWidth := minNameWidth
	tagsWidth := minTagsWidth
	dueWidth := minDueWidth
	doneWidth := minDoneWidth
	for _, r := range filtered {
		idWidth = maxInt(idWidth, len(strconv.Itoa(r.id)))
		nameWidth = maxInt(nameWidth, len(r.t.Name))
		tagsWidth = maxInt(tagsWidth, len(r.t.TagList()))
		dueWidth = maxInt(dueWidth, len(r.t.LocalDeadline()))
	}

	widths := []int{nameWidth, tagsWidth, dueWidth, doneWidth}
	if !opts.All {
		widths = append([]int{idWidth}, widths...)
	}
	barWidth := 4 + 3*(len(widths)-1)
	for _, w := range widths {
		barWidth += w
	}

	var b strings.Builder
	headers := []cell{
		{text: st.Header("Name"), width: nameWidth},
		{text: st.Header("Tags"), width: tagsWidth},
		{text: st.Header("Due"), width: dueWidth},
		{text: st.Header("Done"), width: doneWidth},
	}
	if !opts.All {
		headers = append([]cell{{text: st.Header("#"), width: idWidth}}, headers...)
	}
	writeRow(&b, headers)
	b.WriteString(strings.Repeat("=", barWidth))
	b.WriteString("\n")

	for _, r := range filtered {
		name := r.t.Name
		if r.t.Complete {
			name = st.Struck(name)
		}
		due := r.t.LocalDeadline()
		if r.t.Overdue(now) {
			due = st.Overdue(due)
		}
		mark := ""
		if r.t.Complete {
			mark = st.Done(doneMark)
		}
		cells := []cell{
			{text: name, width: nameWidth},
			{text: r.t.TagList(), width: tagsWidth},
			{text: due, width: dueWidth},
			{text: mark, width: doneWidth},
		}
		if !opts.All {
			cells = append([]cell{{text: strconv.Itoa(r.id), width: idWidth}}, cells...)
		}
		writeRow(&b, cells)
	}

	return b.String()
}

type cell struct {
	text  string
	width int
}

func writeRow(b *strings.Builder, cells []cell) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(style.Pad(c.text, c.width))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
