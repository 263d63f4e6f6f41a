package subcommands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/sinclairtarget/git-churn/internal/format"
	"github.com/sinclairtarget/git-churn/internal/git"
	"github.com/sinclairtarget/git-churn/internal/git/cmd"
	"github.com/sinclairtarget/git-churn/internal/linestats"
	"github.com/sinclairtarget/git-churn/internal/render"
)

type ReportOpts struct {
	Revs      []string
	Pathspecs []string
	Author    string
	Start     time.Time // Zero to count every commit
	Until     string
	Format    render.Format
	Renames   bool

	// If set, numstat lines are read from here instead of from git log. The
	// lines are assumed to already be limited to Author and Start.
	Input io.Reader
}

// Summarizes the lines an author added and removed by file type.
func Report(w io.Writer, opts ReportOpts) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"report\": %w", err)
		}
	}()

	logger().Debug(
		"called report()",
		"revs",
		opts.Revs,
		"pathspecs",
		opts.Pathspecs,
		"author",
		opts.Author,
		"start",
		opts.Start,
		"until",
		opts.Until,
		"format",
		opts.Format,
		"renames",
		opts.Renames,
		"stdin",
		opts.Input != nil,
	)

	if opts.Author == "" {
		return errors.New("no author given and user.name is not set in git config")
	}

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	parseOpts := git.ParseOpts{ResolveRenames: opts.Renames}

	var records iter.Seq2[linestats.ChangeRecord, error]
	var closer func() error

	if opts.Input != nil {
		lines, finish := cmd.ScanLines(opts.Input)
		records = git.ParseNumstat(lines, parseOpts)
		closer = finish
	} else {
		filters := cmd.LogFilters{
			Author: opts.Author,
			Since:  format.Date(opts.Start),
			Until:  opts.Until,
		}

		records, closer, err = git.ChangeRecords(
			ctx,
			opts.Revs,
			opts.Pathspecs,
			filters,
			parseOpts,
		)
		if err != nil {
			return err
		}
	}

	agg := linestats.NewAggregator()
	err = ingest(agg, records, closer, cancel)
	if err != nil {
		return err
	}

	report := agg.Report(opts.Author, opts.Start)

	bw := bufio.NewWriter(w)
	err = render.Write(bw, opts.Format, report)
	if err != nil {
		return err
	}

	err = bw.Flush()
	if err != nil {
		return err
	}

	elapsed := time.Now().Sub(start)
	logger().Debug("finished report", "duration_ms", elapsed.Milliseconds())

	return nil
}

// Sums every record and then calls closer, even if summing fails partway.
//
// On failure cancel is called before closer, and both errors are returned.
func ingest(
	agg *linestats.Aggregator,
	records iter.Seq2[linestats.ChangeRecord, error],
	closer func() error,
	cancel context.CancelFunc,
) error {
	err := agg.IngestAll(records)
	if err != nil {
		cancel()
	}

	return errors.Join(err, closer())
}
