package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/git-churn/internal/config"
)

func writeConfig(t *testing.T, dir string, contents string) string {
	t.Helper()

	path := filepath.Join(dir, config.FileName)
	err := os.WriteFile(path, []byte(contents), 0o644)
	if err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("config is wrong:\n%s", diff)
	}
}

func TestLoadMergesWithDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "author: alice\nsince: 2024-03-01\n")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	expected := config.Config{
		Author: "alice",
		Since:  "2024-03-01",
		Format: "long",
		Color:  "auto",
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("config is wrong:\n%s", diff)
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := config.LoadFromPath(path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error but got %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"bad format":     "format: xml\n",
		"bad color":      "color: sometimes\n",
		"negative days":  "days: -2\n",
		"since and days": "since: 2024-03-01\ndays: 7\n",
		"bad since":      "since: March\n",
		"bad yaml":       "author: [\n",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), contents)

			_, err := config.LoadFromPath(path)
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig but got %v", err)
			}
		})
	}
}

func TestStart(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)

	start, err := config.Config{Days: 7}.Start(now)
	if err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	expected := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	if !start.Equal(expected) {
		t.Errorf("expected start %v but got %v", expected, start)
	}

	start, err = config.Config{Since: "2023-12-25"}.Start(now)
	if err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	expected = time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)
	if !start.Equal(expected) {
		t.Errorf("expected start %v but got %v", expected, start)
	}

	start, err = config.Config{}.Start(now)
	if err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	if !start.IsZero() {
		t.Errorf("expected zero start but got %v", start)
	}
}
