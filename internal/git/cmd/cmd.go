/*
* Handles invoking Git as a subprocess.
 */
package cmd

import (
	"context"
	"fmt"
	"slices"
)

// An empty tformat suppresses the commit header entirely, leaving only the
// --numstat data.
const numstatFormat = "--pretty=tformat:"

// Runs git log, printing only numstat data for each commit.
//
// Output is NUL-delimited (-z) so that paths come through unquoted.
func RunLog(
	ctx context.Context,
	revs []string,
	pathspecs []string,
	filters LogFilters,
) (*Subprocess, error) {
	baseArgs := []string{
		"log",
		numstatFormat,
		"-z",
		"--numstat",
		"--no-show-signature",
	}

	filterArgs := filters.ToArgs()

	var args []string
	if len(pathspecs) > 0 {
		args = slices.Concat(
			baseArgs,
			filterArgs,
			revs,
			[]string{"--"},
			pathspecs,
		)
	} else {
		args = slices.Concat(baseArgs, filterArgs, revs)
	}

	subprocess, err := run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("failed to run git log: %w", err)
	}

	return subprocess, nil
}

func RunRevParseTopLevel(ctx context.Context) (*Subprocess, error) {
	var args = []string{"rev-parse", "--show-toplevel"}

	subprocess, err := run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("failed to run git rev-parse: %w", err)
	}

	return subprocess, nil
}

// Runs git config --get with the given args
func RunConfigGet(ctx context.Context, args []string) (*Subprocess, error) {
	baseArgs := []string{"config", "--get"}

	subprocess, err := run(ctx, slices.Concat(baseArgs, args))
	if err != nil {
		return nil, fmt.Errorf("failed to run git config: %w", err)
	}

	return subprocess, nil
}
