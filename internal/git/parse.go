package git

import (
	"fmt"
	"iter"
	"regexp"
	"strings"

	"github.com/sinclairtarget/git-churn/internal/linestats"
)

var fileRenameRegexp *regexp.Regexp

func init() {
	fileRenameRegexp = regexp.MustCompile(`{(.*) => (.*)}`)
}

// Splits a path from git log --numstat on "/", while ignoring "/" surrounded
// by "{" and "}".
func splitPath(path string) []string {
	parts := []string{}
	var b strings.Builder
	var inBrackets bool

	for _, c := range path {
		if c == '/' && !inBrackets {
			parts = append(parts, b.String())
			b.Reset()
			continue
		}

		if c == '{' {
			inBrackets = true
		} else if c == '}' {
			inBrackets = false
		}

		b.WriteRune(c)
	}

	if b.Len() > 0 {
		parts = append(parts, b.String())
	}

	return parts
}

// Returns the path a file ends up at given the path printed by git log
// --numstat.
//
// When a file is moved the path looks like foo/{bar => bim}/baz.txt or, for a
// move across unrelated directories, foo/bar.txt => bim/baz.txt.
func RenameDest(path string) (string, error) {
	if !strings.Contains(path, "=>") {
		return path, nil
	}

	if !strings.Contains(path, "}") {
		// Simple case
		parts := strings.Split(path, " => ")
		if len(parts) != 2 {
			return "", fmt.Errorf("error parsing rename from \"%s\"", path)
		}

		return parts[1], nil
	}

	var dst strings.Builder

	parts := splitPath(path)
	for i, part := range parts {
		last := i == len(parts)-1

		if strings.Contains(part, "=>") {
			matches := fileRenameRegexp.FindStringSubmatch(part)
			if matches == nil || len(matches) != 3 {
				return "", fmt.Errorf(
					"error parsing rename from \"%s\" in path \"%s\"",
					part,
					path,
				)
			}

			dst.WriteString(matches[2])
			if !last && matches[2] != "" {
				dst.WriteRune('/')
			}
		} else {
			dst.WriteString(part)
			if !last {
				dst.WriteRune('/')
			}
		}
	}

	return dst.String(), nil
}

// Turns the NUL-delimited fields printed by git log --numstat -z back into
// numstat lines.
//
// A moved file is printed as "added\tremoved\t" followed by the old and new
// paths in fields of their own. These come out as a single line with the path
// "old => new".
func NumstatLines(fields iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		var header string
		var paths []string

		for field := range fields {
			if header != "" {
				paths = append(paths, field)
				if len(paths) < 2 {
					continue
				}

				line := header + paths[0] + " => " + paths[1]
				header = ""
				paths = nil

				if !yield(line) {
					return
				}
				continue
			}

			if isRenameHeader(field) {
				header = field
				continue
			}

			if !yield(field) {
				return
			}
		}

		if header != "" {
			// Output ended partway through a rename
			yield(header + strings.Join(paths, ""))
		}
	}
}

func isRenameHeader(field string) bool {
	return strings.Count(field, "\t") == 2 && strings.HasSuffix(field, "\t")
}

type ParseOpts struct {
	// Classify moved files by where they end up rather than by the raw
	// "{old => new}" path git prints.
	ResolveRenames bool
}

// Turns an iterator over lines from git log --numstat into an iterator of
// change records.
//
// Blank lines are skipped. A line that isn't a numstat record ends iteration
// with an error.
func ParseNumstat(
	lines iter.Seq[string],
	opts ParseOpts,
) iter.Seq2[linestats.ChangeRecord, error] {
	return func(yield func(linestats.ChangeRecord, error) bool) {
		lineNum := 0

		for line := range lines {
			lineNum += 1

			if linestats.IsBlank(line) {
				continue
			}

			record, err := linestats.ParseRecord(line)
			if err != nil {
				yield(
					record,
					fmt.Errorf("error parsing line %d: %w", lineNum, err),
				)
				return
			}

			if opts.ResolveRenames {
				dst, err := RenameDest(record.Path)
				if err != nil {
					yield(
						record,
						fmt.Errorf("error parsing line %d: %w", lineNum, err),
					)
					return
				}

				if dst != record.Path {
					logger().Debug(
						"resolved rename",
						"path",
						record.Path,
						"dst",
						dst,
					)
					record.Path = dst
				}
			}

			if !yield(record, nil) {
				return
			}
		}
	}
}
