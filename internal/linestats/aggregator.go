// Sums lines added and removed per file type.
package linestats

import (
	"fmt"
	"iter"
	"slices"
)

// Running totals over a stream of change records.
//
// The zero value is not ready to use; call NewAggregator. An Aggregator is
// not safe for concurrent use.
type Aggregator struct {
	added        map[FileType]int
	removed      map[FileType]int
	totalAdded   int
	totalRemoved int

	unknownExts []string
	seenExts    map[string]bool
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		added:    map[FileType]int{},
		removed:  map[FileType]int{},
		seenExts: map[string]bool{},
	}
}

func (a *Aggregator) Ingest(record ChangeRecord) {
	class := Classify(record.Path)

	if class.HasExtension && !a.seenExts[class.Extension] {
		a.seenExts[class.Extension] = true
		a.unknownExts = append(a.unknownExts, class.Extension)
	}

	a.totalAdded += increment(a.added, class.Type, record.Added)
	a.totalRemoved += increment(a.removed, class.Type, record.Removed)
}

// Only nonzero counts create an entry for the type. Returns the amount added.
func increment(m map[FileType]int, t FileType, c Count) int {
	if !c.Known || c.Lines == 0 {
		return 0
	}

	m[t] += c.Lines
	return c.Lines
}

// Parses and ingests one line of git log --numstat output. Blank lines are
// skipped.
//
// A malformed line is rejected with an error wrapping ErrMalformedRecord and
// leaves the totals untouched.
func (a *Aggregator) IngestLine(line string) error {
	if IsBlank(line) {
		return nil
	}

	record, err := ParseRecord(line)
	if err != nil {
		return err
	}

	a.Ingest(record)
	return nil
}

func (a *Aggregator) IngestAll(records iter.Seq2[ChangeRecord, error]) error {
	for record, err := range records {
		if err != nil {
			return fmt.Errorf("error iterating change records: %w", err)
		}

		a.Ingest(record)
	}

	return nil
}

// Lines added to files of the given type. The second return value is false if
// no nonzero count was ever seen for the type.
func (a *Aggregator) Added(t FileType) (int, bool) {
	n, ok := a.added[t]
	return n, ok
}

func (a *Aggregator) Removed(t FileType) (int, bool) {
	n, ok := a.removed[t]
	return n, ok
}

func (a *Aggregator) TotalAdded() int {
	return a.totalAdded
}

func (a *Aggregator) TotalRemoved() int {
	return a.totalRemoved
}

// Extensions of files that matched no known type, in the order first seen.
func (a *Aggregator) UnknownExtensions() []string {
	return slices.Clone(a.unknownExts)
}
