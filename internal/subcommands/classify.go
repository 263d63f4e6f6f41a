package subcommands

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sinclairtarget/git-churn/internal/linestats"
)

// Prints the file type each path would be counted under, plus the extension
// that would be reported as unknown, if any.
func Classify(w io.Writer, paths []string) error {
	bw := bufio.NewWriter(w)

	for _, path := range paths {
		class := linestats.Classify(path)
		if class.HasExtension {
			fmt.Fprintf(bw, "%s\t%s\t*.%s\n", path, class.Type, class.Extension)
		} else {
			fmt.Fprintf(bw, "%s\t%s\n", path, class.Type)
		}
	}

	err := bw.Flush()
	if err != nil {
		return fmt.Errorf("error running \"classify\": %w", err)
	}

	return nil
}
