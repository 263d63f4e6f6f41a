package linestats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedRecord = errors.New("malformed numstat record")

// Number of lines added or removed in one file diff.
//
// Git reports no count at all for binary files, in which case Known is false.
type Count struct {
	Lines int
	Known bool
}

func Lines(n int) Count {
	return Count{Lines: n, Known: true}
}

// Parses one count field from git log --numstat.
//
// An empty field or git's "-" binary marker yields an unknown count. Anything
// else that isn't an integer counts as zero.
func ParseCount(s string) Count {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return Count{}
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Lines(0)
	}

	return Lines(n)
}

// A single file changed in a single commit.
type ChangeRecord struct {
	Added   Count
	Removed Count
	Path    string
}

func (r ChangeRecord) String() string {
	return fmt.Sprintf(
		"{ path:\"%s\" added:%s removed:%s }",
		r.Path,
		r.Added,
		r.Removed,
	)
}

func (c Count) String() string {
	if !c.Known {
		return "-"
	}

	return strconv.Itoa(c.Lines)
}

// Parses a line of the form "added\tremoved\tpath".
func ParseRecord(line string) (ChangeRecord, error) {
	parts := strings.Split(line, "\t")
	if len(parts) != 3 {
		return ChangeRecord{}, fmt.Errorf(
			"%w: expected 3 tab-separated fields but got %d in \"%s\"",
			ErrMalformedRecord,
			len(parts),
			line,
		)
	}

	return ChangeRecord{
		Added:   ParseCount(parts[0]),
		Removed: ParseCount(parts[1]),
		Path:    parts[2],
	}, nil
}

// Blank lines separate commits in numstat output and carry no record.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
