package subcommands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sinclairtarget/git-churn/internal/git"
	"github.com/sinclairtarget/git-churn/internal/git/cmd"
)

// Just prints out the numstat lines from git log that a report would consume.
func Dump(
	w io.Writer,
	revs []string,
	pathspecs []string,
	filters cmd.LogFilters,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"dump\": %w", err)
		}
	}()

	logger().Debug(
		"called dump()",
		"revs",
		revs,
		"pathspecs",
		pathspecs,
		"filters",
		filters,
	)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subprocess, err := cmd.RunLog(ctx, revs, pathspecs, filters)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	fields, finish := subprocess.StdoutNullDelimitedLines()
	for line := range git.NumstatLines(fields) {
		fmt.Fprintln(bw, line)
	}

	err = bw.Flush()
	if err != nil {
		return err
	}

	err = finish()
	if err != nil {
		return err
	}

	err = subprocess.Wait()
	if err != nil {
		return err
	}

	elapsed := time.Now().Sub(start)
	logger().Debug("finished dump", "duration_ms", elapsed.Milliseconds())

	return nil
}
