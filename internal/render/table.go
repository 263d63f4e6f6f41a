package render

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/sinclairtarget/git-churn/internal/format"
	"github.com/sinclairtarget/git-churn/internal/linestats"
	"github.com/sinclairtarget/git-churn/internal/pretty"
)

// Writes the same rows as the long format, aligned for a terminal, with
// thousands separators and the net column colored by sign.
func WriteTable(w io.Writer, report linestats.Report) error {
	_, err := fmt.Fprintf(
		w,
		"Changes by %s since %s:\n\n",
		report.Author,
		format.Since(report.Since),
	)
	if err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false

	tbl.AppendHeader(table.Row{"Type", "Added", "Removed", "Total"})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	for _, row := range report.Types {
		tbl.AppendRow(tableRow(row))
	}

	if !report.Other.IsZero() {
		tbl.AppendRow(tableRow(report.Other))
	}

	tbl.AppendFooter(tableRow(report.All))

	if !report.Other.IsZero() && len(report.UnknownExtensions) > 0 {
		tbl.SetCaption(
			"%s%s: %s%s",
			pretty.Dim(),
			linestats.Other,
			format.Extensions(report.UnknownExtensions),
			pretty.Reset(),
		)
	}

	tbl.Render()
	return nil
}

func tableRow(row linestats.Row) table.Row {
	net := row.Net()

	return table.Row{
		row.Name,
		humanize.Comma(int64(row.Added)),
		humanize.Comma(int64(row.Removed)),
		pretty.Signed(net, humanize.Comma(int64(net))),
	}
}
