/*
* Wraps access to data needed from Git.
*
* We invoke Git directly as a subprocess and parse the output rather than using
* git2go/libgit2.
 */
package git

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/sinclairtarget/git-churn/internal/git/cmd"
	"github.com/sinclairtarget/git-churn/internal/linestats"
)

// Returns an iterator over the files changed by commits identified by the
// given revisions and paths.
//
// Also returns a closer() function for cleanup and an error when encountered.
func ChangeRecords(
	ctx context.Context,
	revs []string,
	pathspecs []string,
	filters cmd.LogFilters,
	opts ParseOpts,
) (
	iter.Seq2[linestats.ChangeRecord, error],
	func() error,
	error,
) {
	subprocess, err := cmd.RunLog(ctx, revs, pathspecs, filters)
	if err != nil {
		return nil, nil, err
	}

	fields, finish := subprocess.StdoutNullDelimitedLines()
	records := ParseNumstat(NumstatLines(fields), opts)

	closer := func() error {
		err := finish()
		if err != nil {
			return err
		}

		return subprocess.Wait()
	}
	return records, closer, nil
}

// Returns the absolute path of the top-level directory of the working tree.
func GetRoot() (_ string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("failed to get Git root directory: %w", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subprocess, err := cmd.RunRevParseTopLevel(ctx)
	if err != nil {
		return "", err
	}

	root, err := subprocess.StdoutText()
	if err != nil {
		return "", err
	}

	err = subprocess.Wait()
	if err != nil {
		return "", err
	}

	return root, nil
}

// Looks up user.name in the git config. Returns the empty string if the value
// isn't set.
func UserName() (string, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subprocess, err := cmd.RunConfigGet(ctx, []string{"user.name"})
	if err != nil {
		return "", err
	}

	name, err := subprocess.StdoutText()
	if err != nil {
		return "", err
	}

	err = subprocess.Wait()
	if err != nil {
		var subprocessErr cmd.SubprocessErr
		if errors.As(err, &subprocessErr) {
			logger().Debug(
				"user.name not present in git config",
				"exitcode",
				subprocessErr.ExitCode,
			)
			return "", nil
		}

		return "", err
	}

	return name, nil
}
