// Helpers for running tests against a throwaway git repository.
package repotest

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// Name every commit in a test repository is authored under.
const Author = "alice"

type Repo struct {
	Dir string
	t   testing.TB
}

// Creates an empty repository in a temporary directory and changes the working
// directory to it for the rest of the test.
//
// Skips the test if git isn't installed.
func New(t testing.TB) *Repo {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}

	dir := t.TempDir()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}

	err = os.Chdir(dir)
	if err != nil {
		t.Fatalf("error changing working directory to test repo: %v", err)
	}
	t.Cleanup(func() {
		os.Chdir(wd)
	})

	r := &Repo{Dir: dir, t: t}
	r.Git("init", "-q")
	r.Git("config", "user.name", Author)
	r.Git("config", "user.email", Author+"@example.com")
	r.Git("config", "commit.gpgsign", "false")
	r.Git("config", "core.quotePath", "true")

	return r
}

// Runs git in the repository, failing the test if it exits non-zero.
func (r *Repo) Git(args ...string) string {
	r.t.Helper()

	c := exec.Command("git", args...)
	c.Dir = r.Dir

	out, err := c.CombinedOutput()
	if err != nil {
		r.t.Fatalf(
			"git %s failed: %v\n%s",
			strings.Join(args, " "),
			err,
			out,
		)
	}

	return string(out)
}

// Writes out the given files, keyed by slash-separated path, and commits them.
func (r *Repo) Commit(message string, files map[string]string) {
	r.t.Helper()

	for path, contents := range files {
		full := filepath.Join(r.Dir, filepath.FromSlash(path))

		err := os.MkdirAll(filepath.Dir(full), 0o755)
		if err != nil {
			r.t.Fatalf("could not create directory for %s: %v", path, err)
		}

		err = os.WriteFile(full, []byte(contents), 0o644)
		if err != nil {
			r.t.Fatalf("could not write %s: %v", path, err)
		}
	}

	r.Git("add", "-A")
	r.Git("commit", "-q", "-m", message)
}
