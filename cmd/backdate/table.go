package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"backdate/internal/process"
)

func renderSummary(out io.Writer, summary *process.Summary) {
	if summary.DryRun {
		fmt.Fprintln(out, "Dry run: nothing was modified.")
	}

	dirs := make([]string, 0, len(summary.PerDirectory))
	for dir := range summary.PerDirectory {
		dirs = append(dirs, dir)
	}
	collate.New(language.Und).SortStrings(dirs)

	rows := make([][]string, 0, len(dirs))
	for _, dir := range dirs {
		rows = append(rows, []string{dir, strconv.Itoa(summary.PerDirectory[dir])})
	}
	if len(rows) > 0 {
		fmt.Fprintln(out, renderTable(
			[]string{"Directory", "Stamped"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
	}

	fmt.Fprintf(out, "Processed %d media files across %d groups (%d complete, %d skipped, %d tag failures, %d sidecars removed)\n",
		summary.Processed, summary.Groups, summary.Complete, len(summary.Skipped), summary.TagFailures, summary.SidecarsRemoved)

	for _, skipped := range summary.Skipped {
		fmt.Fprintf(out, "  unpaired: %s/%s (%s)\n", skipped.Dir, skipped.Key, skipped.Reason)
	}
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
