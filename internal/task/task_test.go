// Package task tests the record codec.
package task

import (
	"errors"
	"testing"
	"time"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed.UTC()
}

func timePtr(v time.Time) *time.Time {
	return &v
}

func TestDecode(t *testing.T) {
	deadline := mustTime(t, "2025-03-17T22:00:00+00:00")

	tests := []struct {
		name string
		line string
		want Task
	}{
		{
			name: "single tag",
			line: "| Task 1 | ugh | false | 2025-03-17T22:00:00+00:00 |",
			want: Task{Name: "Task 1", Tags: []string{"ugh"}, Deadline: timePtr(deadline)},
		},
		{
			name: "multiple tags complete",
			line: "| Task 2 | project, time | true | 2025-03-17T22:00:00+00:00 |",
			want: Task{Name: "Task 2", Tags: []string{"project", "time"}, Complete: true, Deadline: timePtr(deadline)},
		},
		{
			name: "no tags",
			line: "| Task 3 |  | false | 2025-03-17T22:00:00+00:00 |",
			want: Task{Name: "Task 3", Deadline: timePtr(deadline)},
		},
		{
			name: "no deadline",
			line: "| Task 4 | x | false |  |",
			want: Task{Name: "Task 4", Tags: []string{"x"}},
		},
		{
			name: "no tags no deadline",
			line: "| Task 5 |  | false |  |",
			want: Task{Name: "Task 5"},
		},
		{
			name: "surrounding whitespace",
			line: "   | Task 6 | a | true |  |  ",
			want: Task{Name: "Task 6", Tags: []string{"a"}, Complete: true},
		},
		{
			name: "offset normalized to utc",
			line: "| Task 7 |  | false | 2025-03-18T00:00:00+02:00 |",
			want: Task{Name: "Task 7", Deadline: timePtr(mustTime(t, "2025-03-17T22:00:00Z"))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.line)
			if err != nil {
				t.Fatalf("Decode(%q): %v", tt.line, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Decode(%q): got %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestDecodeInvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "| Task 1 | ugh | false |"},
		{"too many fields", "| Task 1 | ugh | false | 2025-03-17T22:00:00Z | extra |"},
		{"empty line", ""},
		{"plain text", "not a task"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.line)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Decode(%q): got %v, want ErrInvalidFormat", tt.line, err)
			}
		})
	}
}

func TestDecodeInvalidBoolean(t *testing.T) {
	for _, value := range []string{"yes", "TRUE", "1", ""} {
		line := "| Task | tag | " + value + " | 2025-03-17T22:00:00Z |"
		_, err := Decode(line)
		var boolErr *BoolFieldError
		if !errors.As(err, &boolErr) {
			t.Errorf("Decode with complete=%q: got %v, want BoolFieldError", value, err)
			continue
		}
		if boolErr.Value != value {
			t.Errorf("BoolFieldError.Value: got %q, want %q", boolErr.Value, value)
		}
	}
}

func TestDecodeInvalidTimestamp(t *testing.T) {
	_, err := Decode("| Task | tag | false | yesterday |")
	var tsErr *TimestampError
	if !errors.As(err, &tsErr) {
		t.Fatalf("got %v, want TimestampError", err)
	}
	if tsErr.Value != "yesterday" {
		t.Errorf("TimestampError.Value: got %q, want yesterday", tsErr.Value)
	}
	if tsErr.Unwrap() == nil {
		t.Error("TimestampError should keep the underlying parse error")
	}
}

func TestEncode(t *testing.T) {
	deadline := mustTime(t, "2025-03-17T22:00:00Z")

	tests := []struct {
		name string
		task Task
		want string
	}{
		{
			name: "full",
			task: Task{Name: "Task 1", Tags: []string{"ugh"}, Deadline: timePtr(deadline)},
			want: "| Task 1 | ugh | false | 2025-03-17T22:00:00Z |",
		},
		{
			name: "multiple tags complete",
			task: Task{Name: "Task 2", Tags: []string{"project", "time"}, Complete: true, Deadline: timePtr(deadline)},
			want: "| Task 2 | project, time | true | 2025-03-17T22:00:00Z |",
		},
		{
			name: "no tags no deadline",
			task: Task{Name: "Name"},
			want: "| Name |  | false |  |",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.task); got != tt.want {
				t.Errorf("Encode: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	deadline := mustTime(t, "2025-03-19T08:30:00Z")

	tasks := []Task{
		{Name: "plain"},
		{Name: "tagged", Tags: []string{"a", "b", "c"}},
		{Name: "due", Deadline: timePtr(deadline)},
		{Name: "done", Tags: []string{"x"}, Complete: true, Deadline: timePtr(deadline)},
		{Name: "name with spaces", Tags: []string{"two words"}},
	}

	for _, original := range tasks {
		decoded, err := Decode(Encode(original))
		if err != nil {
			t.Errorf("round trip %q: %v", original.Name, err)
			continue
		}
		if !decoded.Equal(original) {
			t.Errorf("round trip %q: got %+v, want %+v", original.Name, decoded, original)
		}
	}
}

func TestOverdue(t *testing.T) {
	now := mustTime(t, "2025-03-18T00:00:00Z")
	past := mustTime(t, "2025-03-17T22:00:00Z")
	future := mustTime(t, "2025-03-19T22:00:00Z")

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"past deadline", Task{Name: "a", Deadline: timePtr(past)}, true},
		{"deadline equal to now", Task{Name: "b", Deadline: timePtr(now)}, true},
		{"future deadline", Task{Name: "c", Deadline: timePtr(future)}, false},
		{"past but complete", Task{Name: "d", Deadline: timePtr(past), Complete: true}, false},
		{"no deadline", Task{Name: "e"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.Overdue(now); got != tt.want {
				t.Errorf("Overdue: got %v, want %v", got, tt.want)
			}
		})
	}
}
