package tracker

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dculotta/taskline/internal/task"
)

// PlainText is the line-oriented file backend: one encoded task per line,
// whole-file load on every call, append-only Add, truncate-and-rewrite
// Complete and Delete. It holds only the path; the file is the sole
// source of truth between calls.
type PlainText struct {
	path string
}

// NewPlainText returns a tracker over the given file path. The file is
// created on first use.
func NewPlainText(path string) *PlainText {
	return &PlainText{path: path}
}

// Tasks loads and sorts the whole collection. A missing file is treated
// as a first run: it is created empty and yields no tasks. A decode
// failure on any line fails the whole load.
func (p *PlainText) Tasks() ([]task.Task, error) {
	f, err := os.OpenFile(p.path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("open task file: %w", err)
	}
	defer f.Close()

	var tasks []task.Task
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := task.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("task file %s line %d: %w", p.path, lineNo, err)
		}
		tasks = append(tasks, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	sortTasks(tasks)
	return tasks, nil
}

// Add appends one encoded line. Existing bytes are never touched, so a
// failed append cannot corrupt prior records.
func (p *PlainText) Add(name string, tags []string, deadline *time.Time) error {
	t := task.New(name, tags, deadline)

	f, err := os.OpenFile(p.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("open task file: %w", err)
	}
	if _, err := fmt.Fprintln(f, task.Encode(t)); err != nil {
		f.Close()
		return fmt.Errorf("append task: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close task file: %w", err)
	}
	return nil
}

// Complete marks the id-th incomplete task done and rewrites the file.
// An out-of-range id returns nil without opening the file for writing.
func (p *PlainText) Complete(id int) error {
	tasks, err := p.Tasks()
	if err != nil {
		return err
	}
	idx := incompleteIndex(tasks, id)
	if idx < 0 {
		return nil
	}
	tasks[idx].MarkComplete()
	return p.rewrite(tasks)
}

// Delete removes the id-th incomplete task and rewrites the file. An
// out-of-range id returns nil without opening the file for writing.
func (p *PlainText) Delete(id int) error {
	tasks, err := p.Tasks()
	if err != nil {
		return err
	}
	idx := incompleteIndex(tasks, id)
	if idx < 0 {
		return nil
	}
	tasks = append(tasks[:idx], tasks[idx+1:]...)
	return p.rewrite(tasks)
}

// List renders the collection as a table.
func (p *PlainText) List(opts ListOptions) (string, error) {
	tasks, err := p.Tasks()
	if err != nil {
		return "", err
	}
	return renderTable(tasks, opts), nil
}

func (p *PlainText) rewrite(tasks []task.Task) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("open task file: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, t := range tasks {
		if _, err := fmt.Fprintln(w, task.Encode(t)); err != nil {
			f.Close()
			return fmt.Errorf("write task: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush task file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close task file: %w", err)
	}
	return nil
}
