// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	t.Run("shows help with --help flag", func(t *testing.T) {
		if err := Run(context.Background(), []string{"--help"}); err != nil {
			t.Errorf("expected no error with --help, got %v", err)
		}
	})

	t.Run("shows version with -v flag", func(t *testing.T) {
		if err := Run(context.Background(), []string{"-v"}); err != nil {
			t.Errorf("expected no error with -v, got %v", err)
		}
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		err := Run(context.Background(), []string{"frobnicate"})
		if err == nil || !strings.Contains(err.Error(), "unknown command") {
			t.Errorf("expected unknown command error, got %v", err)
		}
	})
}

func TestAddCompleteDeleteCycle(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "database")

	run := func(args ...string) error {
		return Run(ctx, append([]string{"-file", path}, args...))
	}

	if err := run("add", "-name", "first task", "-tags", "a,b"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := run("add", "-name", "second task"); err != nil {
		t.Fatalf("add: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "| first task | a, b | false |") {
		t.Errorf("first task missing from file:\n%s", data)
	}

	if err := run("complete", "0"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "true") {
		t.Errorf("no task marked complete:\n%s", data)
	}

	if err := run("delete", "0"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Count(string(data), "\n")
	if lines != 1 {
		t.Errorf("got %d lines after delete, want 1:\n%s", lines, data)
	}

	if err := run("list", "-all"); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestCompleteRejectsBadID(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "database")

	for _, args := range [][]string{
		{"-file", path, "complete"},
		{"-file", path, "complete", "x"},
		{"-file", path, "complete", "-1"},
		{"-file", path, "delete", "1", "2"},
	} {
		if err := Run(ctx, args); err == nil {
			t.Errorf("Run(%v): expected error", args)
		}
	}
}

func TestAddRequiresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database")
	err := Run(context.Background(), []string{"-file", path, "add"})
	if err == nil || !strings.Contains(err.Error(), "name") {
		t.Errorf("expected missing name error, got %v", err)
	}
}

func TestAddRejectsBadDeadline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database")
	err := Run(context.Background(), []string{"-file", path, "add", "-name", "x", "-deadline", "whenever"})
	if err == nil {
		t.Error("expected deadline parse error")
	}
}

func TestExistingFileArgumentListsIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database")
	if err := os.WriteFile(path, []byte("| Task |  | false |  |\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Run(context.Background(), []string{path}); err != nil {
		t.Errorf("listing by path: %v", err)
	}
}
