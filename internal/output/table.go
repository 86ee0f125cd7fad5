package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/brackx/internal/engine"
	"github.com/phyten/brackx/internal/termcolor"
	"github.com/phyten/brackx/internal/textutil"
)

// WriteTable renders items as a column-aligned table. Alignment uses
// display widths so wide characters in file names do not break columns.
func WriteTable(w io.Writer, items []engine.Item, sel FieldSelection, color bool, profile termcolor.Profile) error {
	headers := Headers(sel.Fields)
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, RowValues(it, sel.Fields))
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = textutil.VisibleWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := textutil.VisibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	headerCells := make([]string, len(headers))
	for i, h := range headers {
		cell := termcolor.Apply(termcolor.HeaderStyle(), h, color)
		headerCells[i] = textutil.PadRight(cell, widths[i])
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(headerCells, "  "), " ")); err != nil {
		return err
	}

	for ri, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if sel.Fields[i].Key == "status" {
				cell = termcolor.Apply(termcolor.StatusStyle(items[ri].Status, profile), cell, color)
			}
			cells[i] = textutil.PadRight(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteTSV renders items as tab-separated values with a header row.
func WriteTSV(w io.Writer, items []engine.Item, sel FieldSelection) error {
	if _, err := fmt.Fprintln(w, strings.Join(Headers(sel.Fields), "\t")); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := fmt.Fprintln(w, strings.Join(RowValues(it, sel.Fields), "\t")); err != nil {
			return err
		}
	}
	return nil
}
