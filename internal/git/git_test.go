package git_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/git-churn/internal/git"
	"github.com/sinclairtarget/git-churn/internal/git/cmd"
	"github.com/sinclairtarget/git-churn/internal/linestats"
	"github.com/sinclairtarget/git-churn/internal/repotest"
)

func changeRecords(t *testing.T, opts git.ParseOpts) []linestats.ChangeRecord {
	t.Helper()

	records, closer, err := git.ChangeRecords(
		context.Background(),
		nil,
		nil,
		cmd.LogFilters{Author: repotest.Author},
		opts,
	)
	if err != nil {
		t.Fatalf("ChangeRecords() returned error: %v", err)
	}

	got := collect(t, records)

	err = closer()
	if err != nil {
		t.Fatalf("error closing git log: %v", err)
	}

	return got
}

// Git quotes paths like these unless given -z.
func TestChangeRecordsSpecialPaths(t *testing.T) {
	repo := repotest.New(t)
	repo.Commit("add files", map[string]string{
		"résumé.md":         "one\ntwo\n",
		"src/app.js":        "x\n",
		"with \"quote\".go": "package main\n",
	})

	expected := []linestats.ChangeRecord{
		{
			Added:   linestats.Lines(2),
			Removed: linestats.Lines(0),
			Path:    "résumé.md",
		},
		{
			Added:   linestats.Lines(1),
			Removed: linestats.Lines(0),
			Path:    "src/app.js",
		},
		{
			Added:   linestats.Lines(1),
			Removed: linestats.Lines(0),
			Path:    "with \"quote\".go",
		},
	}
	if diff := cmp.Diff(expected, changeRecords(t, git.ParseOpts{})); diff != "" {
		t.Errorf("records are wrong:\n%s", diff)
	}
}

func TestChangeRecordsRenames(t *testing.T) {
	repo := repotest.New(t)
	repo.Commit("add util", map[string]string{
		"src/util.rb": "a\nb\nc\n",
	})
	repo.Git("mv", "src/util.rb", "src/util.js")
	repo.Git("commit", "-q", "-m", "port util")

	records := changeRecords(t, git.ParseOpts{})
	if len(records) != 2 {
		t.Fatalf("expected 2 records but got %d: %v", len(records), records)
	}
	if records[0].Path != "src/util.rb => src/util.js" {
		t.Errorf("expected raw rename path but got \"%s\"", records[0].Path)
	}

	expected := []linestats.ChangeRecord{
		{
			Added:   linestats.Lines(0),
			Removed: linestats.Lines(0),
			Path:    "src/util.js",
		},
		{
			Added:   linestats.Lines(3),
			Removed: linestats.Lines(0),
			Path:    "src/util.rb",
		},
	}
	records = changeRecords(t, git.ParseOpts{ResolveRenames: true})
	if diff := cmp.Diff(expected, records); diff != "" {
		t.Errorf("records are wrong:\n%s", diff)
	}
}
