package linestats

import (
	"time"
)

// Row name for the grand totals.
const AllRow = "all"

type Row struct {
	Name    string
	Added   int
	Removed int
}

// Lines added minus lines removed. May be negative.
func (r Row) Net() int {
	return r.Added - r.Removed
}

func (r Row) IsZero() bool {
	return r.Added == 0 && r.Removed == 0
}

// Read-only summary of an Aggregator for one author.
type Report struct {
	Author string
	Since  time.Time // Zero if counting from the first commit

	All   Row
	Types []Row // Types with any activity, in SuffixTable order
	Other Row

	UnknownExtensions []string
}

func (r Report) HasSince() bool {
	return !r.Since.IsZero()
}

// Builds a report from the current totals. Calling Report repeatedly without
// ingesting in between gives equal reports.
func (a *Aggregator) Report(author string, since time.Time) Report {
	report := Report{
		Author: author,
		Since:  since,
		All: Row{
			Name:    AllRow,
			Added:   a.totalAdded,
			Removed: a.totalRemoved,
		},
		Types:             []Row{},
		Other:             a.row(Other),
		UnknownExtensions: a.UnknownExtensions(),
	}

	for _, entry := range SuffixTable {
		row := a.row(entry.Type)
		if !row.IsZero() {
			report.Types = append(report.Types, row)
		}
	}

	return report
}

func (a *Aggregator) row(t FileType) Row {
	return Row{
		Name:    string(t),
		Added:   a.added[t],
		Removed: a.removed[t],
	}
}
