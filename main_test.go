package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/git-churn/internal/config"
)

func TestLoadConfigWithoutGit(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() returned error: %v", err)
	}

	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("config is wrong:\n%s", diff)
	}
}

func TestLoadConfigFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "churn.yaml")
	err := os.WriteFile(path, []byte("author: bob\nformat: short\n"), 0o644)
	if err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() returned error: %v", err)
	}

	expected := config.Default()
	expected.Author = "bob"
	expected.Format = "short"
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("config is wrong:\n%s", diff)
	}
}
