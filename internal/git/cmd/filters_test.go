package cmd_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/git-churn/internal/git/cmd"
)

func TestLogFiltersToArgs(t *testing.T) {
	filters := cmd.LogFilters{
		Since:  "2024-03-01",
		Author: "alice",
	}

	expected := []string{"--author", "alice", "--since", "2024-03-01"}
	if diff := cmp.Diff(expected, filters.ToArgs()); diff != "" {
		t.Errorf("args are wrong:\n%s", diff)
	}
}

func TestLogFiltersEmpty(t *testing.T) {
	args := cmd.LogFilters{}.ToArgs()
	if len(args) != 0 {
		t.Errorf("expected no args but got %v", args)
	}
}

func TestScanLines(t *testing.T) {
	r := strings.NewReader("1\t2\ta.go\n\n3\t4\tb.go\n")

	seq, finish := cmd.ScanLines(r)
	lines := slices.Collect(seq)
	if err := finish(); err != nil {
		t.Fatalf("error scanning lines: %v", err)
	}

	expected := []string{"1\t2\ta.go", "", "3\t4\tb.go"}
	if diff := cmp.Diff(expected, lines); diff != "" {
		t.Errorf("lines are wrong:\n%s", diff)
	}
}

func TestScanNullDelimited(t *testing.T) {
	r := strings.NewReader(
		"\n5\t2\ta.go\x000\t0\t\x00a.rb\x00a.js\x00\x00\n1\t1\tb.go\x00",
	)

	seq, finish := cmd.ScanNullDelimited(r)
	fields := slices.Collect(seq)
	if err := finish(); err != nil {
		t.Fatalf("error scanning fields: %v", err)
	}

	expected := []string{
		"5\t2\ta.go",
		"0\t0\t",
		"a.rb",
		"a.js",
		"",
		"1\t1\tb.go",
	}
	if diff := cmp.Diff(expected, fields); diff != "" {
		t.Errorf("fields are wrong:\n%s", diff)
	}
}
