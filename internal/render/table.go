package render

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableOptions control one table rendering pass.
type TableOptions struct {
	// RowNumbers prepends a right-aligned index column.
	RowNumbers bool
	// StartIndex is the 1-based number shown for the first data row;
	// the pager sets it to the viewport's top row.
	StartIndex int
	// MaxTableWidth caps the rendered line length (terminal width).
	// 0 disables the cap.
	MaxTableWidth int
}

// Table renders headers and data rows as a bordered grid. It is pure
// composition over the formatter: no state survives a call, so the pager
// can re-render every accepted move with fresh window contents.
func Table(header []string, rows [][]string, f *Formatter, opts TableOptions) string {
	t := table.NewWriter()
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)

	if opts.MaxTableWidth > 0 {
		t.SetAllowedRowLength(opts.MaxTableWidth)
	}

	headerCells := f.FormatHeader(header)
	headerRow := make(table.Row, 0, len(headerCells)+1)
	if opts.RowNumbers {
		indexHeader := f.Mapper.IndexStyle(CellContext{Header: true}).Render("#")
		headerRow = append(headerRow, indexHeader)
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	}
	for _, c := range headerCells {
		headerRow = append(headerRow, c)
	}
	t.AppendHeader(headerRow)

	start := opts.StartIndex
	if start < 1 {
		start = 1
	}
	for i, fields := range rows {
		even := (start+i)%2 == 0
		cells := f.FormatRow(fields, even)
		row := make(table.Row, 0, len(cells)+1)
		if opts.RowNumbers {
			idx := f.Mapper.IndexStyle(CellContext{RowEven: even}).Render(strconv.Itoa(start + i))
			row = append(row, idx)
		}
		for _, c := range cells {
			row = append(row, c)
		}
		t.AppendRow(row)
	}

	return t.Render()
}
