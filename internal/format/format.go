/*
* Utility functions for formatting output.
 */
package format

import (
	"strings"
	"time"
)

const beginningOfTime = "the beginning of time"

// Formats t as YYYY-MM-DD, or the empty string if t is the zero time.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.DateOnly)
}

// Describes the start of a reporting window for a human reader.
func Since(t time.Time) string {
	if t.IsZero() {
		return beginningOfTime
	}

	return Date(t)
}

// Formats extensions as a glob list, e.g. "*.wasm, *.lock".
func Extensions(exts []string) string {
	globs := make([]string, len(exts))
	for i, ext := range exts {
		globs[i] = "*." + ext
	}

	return strings.Join(globs, ", ")
}
