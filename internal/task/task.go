// Package task defines the task record and its pipe-delimited line codec.
package task

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// storageTimeFormat is the machine-readable deadline format written to disk.
const storageTimeFormat = time.RFC3339

// displayTimeFormat is the human-readable deadline format for listings.
// It is display-only and never parsed back.
const displayTimeFormat = "01/02/2006 15:04:05"

// Task represents a single tracked task.
type Task struct {
	Name     string
	Tags     []string
	Deadline *time.Time // nil means no deadline; stored in UTC
	Complete bool
}

// New constructs an incomplete task. The deadline, if present, is
// normalized to UTC.
func New(name string, tags []string, deadline *time.Time) Task {
	if deadline != nil {
		utc := deadline.UTC()
		deadline = &utc
	}
	return Task{
		Name:     name,
		Tags:     tags,
		Deadline: deadline,
		Complete: false,
	}
}

// MarkComplete sets the completion flag. Nothing ever clears it.
func (t *Task) MarkComplete() {
	t.Complete = true
}

// Overdue reports whether the task has a deadline at or before now and is
// not yet complete.
func (t Task) Overdue(now time.Time) bool {
	if t.Complete || t.Deadline == nil {
		return false
	}
	return !t.Deadline.After(now)
}

// HasTag reports whether the task carries any of the given tags.
func (t Task) HasTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range t.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// LocalDeadline renders the deadline in the viewer's local time zone, or
// an empty string when the task has none.
func (t Task) LocalDeadline() string {
	if t.Deadline == nil {
		return ""
	}
	return t.Deadline.Local().Format(displayTimeFormat)
}

// TagList renders the tags as a comma-separated list.
func (t Task) TagList() string {
	return strings.Join(t.Tags, ", ")
}

// Equal reports value equality. A nil tag list and an empty one are
// equivalent; deadlines compare by instant, not location.
func (t Task) Equal(other Task) bool {
	if t.Name != other.Name || t.Complete != other.Complete {
		return false
	}
	if len(t.Tags) != len(other.Tags) {
		return false
	}
	for i := range t.Tags {
		if t.Tags[i] != other.Tags[i] {
			return false
		}
	}
	if (t.Deadline == nil) != (other.Deadline == nil) {
		return false
	}
	if t.Deadline != nil && !t.Deadline.Equal(*other.Deadline) {
		return false
	}
	return true
}

func (t Task) storageDeadline() string {
	if t.Deadline == nil {
		return ""
	}
	return t.Deadline.UTC().Format(storageTimeFormat)
}

// ErrInvalidFormat reports a line that does not split into the four
// record fields (name, tags, complete, deadline).
var ErrInvalidFormat = errors.New("line is not a four-field task record")

// BoolFieldError reports a complete field that is not a boolean literal.
type BoolFieldError struct {
	Value string
}

func (e *BoolFieldError) Error() string {
	return fmt.Sprintf("complete field %q is not \"true\" or \"false\"", e.Value)
}

// TimestampError reports a deadline field that failed to parse, keeping
// the underlying parse failure.
type TimestampError struct {
	Value string
	Err   error
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("deadline field %q: %v", e.Value, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *TimestampError) Unwrap() error {
	return e.Err
}

// Encode renders a task as a single storage line:
//
//	| name | tag, tag | false | 2025-03-17T22:00:00Z |
//
// Empty tags and an absent deadline encode as empty fields. Encoding is
// total; Encode(t) always decodes back to t.
func Encode(t Task) string {
	return fmt.Sprintf("| %s | %s | %t | %s |", t.Name, t.TagList(), t.Complete, t.storageDeadline())
}

// Decode parses a storage line into a task. It is strict: the line must
// carry exactly four pipe-delimited fields, the complete field must be a
// boolean literal, and a non-empty deadline must be a valid RFC 3339
// timestamp. The first failing field aborts the whole line.
func Decode(line string) (Task, error) {
	trimmed := strings.Trim(strings.TrimSpace(line), "|")
	fields := strings.Split(trimmed, "|")
	if len(fields) != 4 {
		return Task{}, ErrInvalidFormat
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	t := Task{
		Name: fields[0],
		Tags: parseTags(fields[1]),
	}

	switch fields[2] {
	case "true":
		t.Complete = true
	case "false":
		t.Complete = false
	default:
		return Task{}, &BoolFieldError{Value: fields[2]}
	}

	if fields[3] != "" {
		parsed, err := time.Parse(storageTimeFormat, fields[3])
		if err != nil {
			return Task{}, &TimestampError{Value: fields[3], Err: err}
		}
		utc := parsed.UTC()
		t.Deadline = &utc
	}

	return t, nil
}

// parseTags splits a stored tag field. A field that is blank, or contains
// only separators, decodes to no tags at all.
func parseTags(field string) []string {
	empty := true
	for _, part := range strings.Split(field, ",") {
		if strings.TrimSpace(part) != "" {
			empty = false
			break
		}
	}
	if empty {
		return nil
	}
	return strings.Split(field, ", ")
}
