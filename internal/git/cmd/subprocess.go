package cmd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"os/exec"
	"strings"
)

type SubprocessErr struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (err SubprocessErr) Error() string {
	if err.Stderr != "" {
		return fmt.Sprintf(
			"Git subprocess exited with code %d. Error output:\n%s",
			err.ExitCode,
			err.Stderr,
		)
	}

	return fmt.Sprintf("Git subprocess exited with code %d", err.ExitCode)
}

func (err SubprocessErr) Unwrap() error {
	return err.Err
}

type Subprocess struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr io.ReadCloser
}

func (s Subprocess) StdoutText() (string, error) {
	b, err := io.ReadAll(s.stdout)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(b)), nil
}

// Returns a single-use iterator over the output of git log -z, split on NULs.
func (s Subprocess) StdoutNullDelimitedLines() (iter.Seq[string], func() error) {
	return ScanNullDelimited(s.stdout)
}

// Returns a single-use iterator over the lines read from r.
//
// The returned function reports any error hit while scanning and should be
// called once iteration is over.
func ScanLines(r io.Reader) (iter.Seq[string], func() error) {
	return scan(r, bufio.ScanLines)
}

// Returns a single-use iterator over the NUL-delimited fields read from r.
//
// Leading newlines are dropped from each field. Git prints one between the
// (empty) commit format and the --numstat data.
func ScanNullDelimited(r io.Reader) (iter.Seq[string], func() error) {
	fields, finish := scan(r, scanNulls)

	seq := func(yield func(string) bool) {
		for field := range fields {
			if !yield(strings.TrimLeft(field, "\n")) {
				return
			}
		}
	}

	return seq, finish
}

func scanNulls(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexByte(data, '\x00'); i >= 0 {
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil // Scan more
}

func scan(r io.Reader, split bufio.SplitFunc) (iter.Seq[string], func() error) {
	var iterErr error

	seq := func(yield func(string) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Split(split)

		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}

		iterErr = scanner.Err()
	}

	finish := func() error {
		if iterErr != nil {
			iterErr = fmt.Errorf("error while scanning: %w", iterErr)
		}

		return iterErr
	}

	return seq, finish
}

func (s Subprocess) Wait() error {
	logger().Debug("waiting for subprocess...")

	stderr, err := io.ReadAll(s.stderr)
	if err != nil {
		return fmt.Errorf("could not read stderr: %w", err)
	}

	err = s.cmd.Wait()
	logger().Debug(
		"subprocess exited",
		"code",
		s.cmd.ProcessState.ExitCode(),
	)

	if err != nil {
		return SubprocessErr{
			ExitCode: s.cmd.ProcessState.ExitCode(),
			Stderr:   strings.TrimSpace(string(stderr)),
			Err:      err,
		}
	}

	return nil
}

func run(ctx context.Context, args []string) (*Subprocess, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	logger().Debug("running subprocess", "cmd", cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdout pipe: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stderr pipe: %w", err)
	}

	err = cmd.Start()
	if err != nil {
		return nil, fmt.Errorf("failed to start subprocess: %w", err)
	}

	return &Subprocess{
		cmd:    cmd,
		stdout: stdout,
		stderr: stderr,
	}, nil
}
