package tracker

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dculotta/taskline/internal/task"
)

// SQLite is an embedded-store backend. Insertion order (rowid) stands in
// for file order, so sorting and positional ids behave exactly like the
// file backends.
type SQLite struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	tags        TEXT NOT NULL DEFAULT '',
	complete    INTEGER NOT NULL DEFAULT 0,
	deadline_ms INTEGER
);
`

// OpenSQLite opens (creating if needed) a task database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open task db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping task db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tasks table: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the database handle.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type sqliteRow struct {
	rowID int64
	t     task.Task
}

func (s *SQLite) loadRows() ([]sqliteRow, error) {
	rows, err := s.db.Query(`SELECT id, name, tags, complete, deadline_ms FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var out []sqliteRow
	for rows.Next() {
		var (
			r        sqliteRow
			tags     string
			deadline sql.NullInt64
		)
		if err := rows.Scan(&r.rowID, &r.t.Name, &tags, &r.t.Complete, &deadline); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if tags != "" {
			r.t.Tags = strings.Split(tags, ", ")
		}
		if deadline.Valid {
			at := time.UnixMilli(deadline.Int64).UTC()
			r.t.Deadline = &at
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].t.Deadline, out[j].t.Deadline
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return out, nil
}

// Tasks loads the collection sorted by deadline, insertion order on ties.
func (s *SQLite) Tasks() ([]task.Task, error) {
	rows, err := s.loadRows()
	if err != nil {
		return nil, err
	}
	tasks := make([]task.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, r.t)
	}
	return tasks, nil
}

// Add inserts one task row.
func (s *SQLite) Add(name string, tags []string, deadline *time.Time) error {
	t := task.New(name, tags, deadline)
	var deadlineMs sql.NullInt64
	if t.Deadline != nil {
		deadlineMs = sql.NullInt64{Int64: t.Deadline.UTC().UnixMilli(), Valid: true}
	}
	_, err := s.db.Exec(
		`INSERT INTO tasks (name, tags, complete, deadline_ms) VALUES (?, ?, ?, ?)`,
		t.Name, t.TagList(), t.Complete, deadlineMs,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// Complete marks the id-th incomplete task done. Out of range is a no-op.
func (s *SQLite) Complete(id int) error {
	rowID, ok, err := s.resolve(id)
	if err != nil || !ok {
		return err
	}
	if _, err := s.db.Exec(`UPDATE tasks SET complete = 1 WHERE id = ?`, rowID); err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	return nil
}

// Delete removes the id-th incomplete task. Out of range is a no-op.
func (s *SQLite) Delete(id int) error {
	rowID, ok, err := s.resolve(id)
	if err != nil || !ok {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, rowID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// List renders the collection as a table.
func (s *SQLite) List(opts ListOptions) (string, error) {
	tasks, err := s.Tasks()
	if err != nil {
		return "", err
	}
	return renderTable(tasks, opts), nil
}

// resolve maps a positional id over incomplete tasks in sorted order to
// the backing rowid.
func (s *SQLite) resolve(id int) (int64, bool, error) {
	if id < 0 {
		return 0, false, nil
	}
	rows, err := s.loadRows()
	if err != nil {
		return 0, false, err
	}
	n := 0
	for _, r := range rows {
		if r.t.Complete {
			continue
		}
		if n == id {
			return r.rowID, true, nil
		}
		n++
	}
	return 0, false, nil
}
