// Writes a linestats.Report in one of several output formats.
package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sinclairtarget/git-churn/internal/format"
	"github.com/sinclairtarget/git-churn/internal/linestats"
)

type Format string

const (
	Short Format = "short" // One tab-separated summary line
	Long  Format = "long"  // Header plus a tab-separated table by type
	JSON  Format = "json"
	YAML  Format = "yaml"
	Table Format = "table" // Aligned table for reading in a terminal
)

var Formats = []Format{Short, Long, JSON, YAML, Table}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}

	return "", fmt.Errorf("unrecognized output format \"%s\"", s)
}

func Write(w io.Writer, f Format, report linestats.Report) error {
	switch f {
	case Short:
		return WriteShort(w, report)
	case Long:
		return WriteLong(w, report)
	case JSON:
		return WriteJSON(w, report)
	case YAML:
		return WriteYAML(w, report)
	case Table:
		return WriteTable(w, report)
	default:
		return fmt.Errorf("unrecognized output format \"%s\"", f)
	}
}

// Writes date, author, added, removed, and net on one line.
func WriteShort(w io.Writer, report linestats.Report) error {
	_, err := fmt.Fprintf(
		w,
		"%s\t%s\t%d\t%d\t%d\n",
		format.Date(report.Since),
		report.Author,
		report.All.Added,
		report.All.Removed,
		report.All.Net(),
	)
	return err
}

func WriteLong(w io.Writer, report linestats.Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(
		bw,
		"Changes by %s since %s:\n",
		report.Author,
		format.Since(report.Since),
	)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Type\tAdded\tRemoved\tTotal")
	fmt.Fprintln(bw, "----\t-----\t-------\t-----")

	writeRow(bw, report.All)
	for _, row := range report.Types {
		writeRow(bw, row)
	}

	if !report.Other.IsZero() {
		writeRow(bw, report.Other)

		if len(report.UnknownExtensions) > 0 {
			fmt.Fprintf(
				bw,
				"\n%s: %s\n",
				linestats.Other,
				format.Extensions(report.UnknownExtensions),
			)
		}
	}

	fmt.Fprintln(bw)

	return bw.Flush()
}

func writeRow(w io.Writer, row linestats.Row) {
	fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", row.Name, row.Added, row.Removed, row.Net())
}

// Serialized shape of a report. Net values are spelled out so consumers don't
// have to compute them.
type document struct {
	Author            string        `json:"author" yaml:"author"`
	Since             string        `json:"since,omitempty" yaml:"since,omitempty"`
	All               documentRow   `json:"all" yaml:"all"`
	Types             []documentRow `json:"types" yaml:"types"`
	Other             documentRow   `json:"other" yaml:"other"`
	UnknownExtensions []string      `json:"unknown_extensions" yaml:"unknown_extensions"`
}

type documentRow struct {
	Type    string `json:"type" yaml:"type"`
	Added   int    `json:"added" yaml:"added"`
	Removed int    `json:"removed" yaml:"removed"`
	Net     int    `json:"net" yaml:"net"`
}

func toDocumentRow(row linestats.Row) documentRow {
	return documentRow{
		Type:    row.Name,
		Added:   row.Added,
		Removed: row.Removed,
		Net:     row.Net(),
	}
}

func toDocument(report linestats.Report) document {
	doc := document{
		Author:            report.Author,
		Since:             format.Date(report.Since),
		All:               toDocumentRow(report.All),
		Types:             make([]documentRow, 0, len(report.Types)),
		Other:             toDocumentRow(report.Other),
		UnknownExtensions: []string{},
	}

	for _, row := range report.Types {
		doc.Types = append(doc.Types, toDocumentRow(row))
	}

	doc.UnknownExtensions = append(doc.UnknownExtensions, report.UnknownExtensions...)
	return doc
}

func WriteJSON(w io.Writer, report linestats.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(toDocument(report))
	if err != nil {
		return fmt.Errorf("error encoding report as JSON: %w", err)
	}

	return nil
}

func WriteYAML(w io.Writer, report linestats.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err := enc.Encode(toDocument(report))
	if err != nil {
		return fmt.Errorf("error encoding report as YAML: %w", err)
	}

	return enc.Close()
}
