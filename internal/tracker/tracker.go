package tracker

import (
	"fmt"
	"sort"
	"time"

	"github.com/dculotta/taskline/internal/style"
	"github.com/dculotta/taskline/internal/task"
)

// Tracker is the abstract task-tracking capability. Every method loads
// current state from storage on entry; no state is cached between calls.
type Tracker interface {
	// Add appends a new incomplete task. A nil deadline means none.
	Add(name string, tags []string, deadline *time.Time) error
	// Complete marks the id-th incomplete task done. An out-of-range id
	// is a silent no-op that leaves storage untouched.
	Complete(id int) error
	// Delete removes the id-th incomplete task. An out-of-range id is a
	// silent no-op that leaves storage untouched.
	Delete(id int) error
	// Tasks loads the collection sorted by ascending deadline, tasks
	// without a deadline last, ties in storage order.
	Tasks() ([]task.Task, error)
	// List loads the collection and renders it as an aligned table.
	List(opts ListOptions) (string, error)
}

// ListOptions control filtering and presentation of List output.
type ListOptions struct {
	// All includes completed tasks and hides the id column.
	All bool
	// Overdue keeps only incomplete tasks whose deadline has passed.
	Overdue bool
	// Tags keeps only tasks carrying at least one of these tags.
	Tags []string
	// Now anchors overdue checks; zero means time.Now().
	Now time.Time
	// Styles applies terminal effects to the output; nil renders plain.
	Styles *style.Styles
}

// Backend names accepted by New.
const (
	BackendPlainText = "plaintext"
	BackendJSON      = "json"
	BackendSQLite    = "sqlite"
)

// Options configure backend construction.
type Options struct {
	Backend  string
	Path     string
	Validate bool // json backend: validate the document on load
}

// New constructs the tracker backend named in opts. Backends holding OS
// resources implement io.Closer; callers should close them when done.
func New(opts Options) (Tracker, error) {
	switch opts.Backend {
	case BackendPlainText, "":
		return NewPlainText(opts.Path), nil
	case BackendJSON:
		return NewJSONFile(opts.Path, opts.Validate)
	case BackendSQLite:
		return OpenSQLite(opts.Path)
	default:
		return nil, fmt.Errorf("unknown backend %q (want plaintext, json, or sqlite)", opts.Backend)
	}
}

// sortTasks orders by ascending deadline, stable so equal deadlines keep
// storage order. Tasks without a deadline sort after every task with one.
func sortTasks(tasks []task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].Deadline, tasks[j].Deadline
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}

// incompleteIndex resolves a positional id over incomplete tasks to an
// absolute index into tasks, or -1 when the id is out of range.
func incompleteIndex(tasks []task.Task, id int) int {
	if id < 0 {
		return -1
	}
	n := 0
	for i := range tasks {
		if tasks[i].Complete {
			continue
		}
		if n == id {
			return i
		}
		n++
	}
	return -1
}
