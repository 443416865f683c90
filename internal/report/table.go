// Package report renders tabular previews of datasets for the CLI output
// surface. Presentation only; transforms never depend on it.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/goanonym/internal/dataset"
)

// RenderTable writes the first limit rows of the dataset as an aligned text
// table with a colored header. limit <= 0 renders every row.
func RenderTable(w io.Writer, ds *dataset.Dataset, limit int) error {
	if len(ds.Columns) == 0 {
		_, err := fmt.Fprintln(w, "(empty dataset)")
		return err
	}

	rows := ds.Rows
	truncated := false
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
		truncated = true
	}

	// Column widths from header and visible cells.
	widths := make([]int, len(ds.Columns))
	for i, col := range ds.Columns {
		widths[i] = runewidth.StringWidth(col)
	}
	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(ds.Columns))
		for i, col := range ds.Columns {
			s := cellString(row[col])
			cells[r][i] = s
			if w := runewidth.StringWidth(s); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Header row, padded before coloring so escape codes don't skew widths.
	header := make([]string, len(ds.Columns))
	for i, col := range ds.Columns {
		header[i] = color.Bold.Sprint(pad(col, widths[i]))
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | ")); err != nil {
		return err
	}

	sep := make([]string, len(ds.Columns))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "|-%s-|\n", strings.Join(sep, "-|-")); err != nil {
		return err
	}

	for _, row := range cells {
		padded := make([]string, len(row))
		for i, s := range row {
			padded[i] = pad(s, widths[i])
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | ")); err != nil {
			return err
		}
	}

	if truncated {
		if _, err := fmt.Fprintf(w, "(%d of %d rows)\n", len(rows), ds.Len()); err != nil {
			return err
		}
	}

	return nil
}

// pad right-pads s to the given display width.
func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

// cellString renders a single cell value.
func cellString(v interface{}) string {
	s, ok := dataset.ToString(v)
	if !ok {
		return "NULL"
	}
	return s
}
