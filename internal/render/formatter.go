package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/leapstack-labs/csvpeek/pkg/classify"
)

// truncationMarker replaces the tail of an over-wide cell. One display
// cell wide, so a truncated cell occupies exactly the width limit.
const truncationMarker = "…"

// Truncate cuts s to at most limit display cells, ending in the
// truncation marker when a cut was needed. limit 0 disables truncation.
// Widths are measured in display cells, not bytes, so multi-byte and
// double-width text stays aligned. Truncation is idempotent: output never
// exceeds the limit, so a second pass is a no-op.
func Truncate(s string, limit int) string {
	if limit <= 0 || runewidth.StringWidth(s) <= limit {
		return s
	}
	return runewidth.Truncate(s, limit, truncationMarker)
}

// Formatter shapes raw rows to the header's column count, classifies each
// field, and styles it. One Formatter serves a whole file; it accumulates
// the count of excess fields dropped from over-long rows as a diagnostic.
type Formatter struct {
	Classifier classify.Classifier
	Mapper     Mapper
	WidthLimit int

	columns int
	dropped int
}

// NewFormatter creates a Formatter for a table with the given column count.
func NewFormatter(columns int, classifier classify.Classifier, mapper Mapper, widthLimit int) *Formatter {
	return &Formatter{
		Classifier: classifier,
		Mapper:     mapper,
		WidthLimit: widthLimit,
		columns:    columns,
	}
}

// Columns returns the fixed column count rows are shaped to.
func (f *Formatter) Columns() int { return f.columns }

// DroppedFields returns how many excess fields were cut from rows longer
// than the header. Surfaced once as a diagnostic, never per row.
func (f *Formatter) DroppedFields() int { return f.dropped }

// Fit pads a short row with empty fields and cuts a long one down to the
// column count, counting what was cut.
func (f *Formatter) Fit(fields []string) []string {
	switch {
	case len(fields) == f.columns:
		return fields
	case len(fields) < f.columns:
		padded := make([]string, f.columns)
		copy(padded, fields)
		return padded
	default:
		f.dropped += len(fields) - f.columns
		return fields[:f.columns]
	}
}

// FormatRow produces the styled cell strings for one data row. Cells are
// fitted to the column count, truncated to the width limit, classified,
// and colored for the row's parity.
func (f *Formatter) FormatRow(fields []string, even bool) []string {
	fields = f.Fit(fields)
	ctx := CellContext{RowEven: even}
	cells := make([]string, len(fields))
	for i, raw := range fields {
		tag := f.Classifier.Classify(raw)
		cells[i] = f.Mapper.Style(tag, ctx).Render(Truncate(raw, f.WidthLimit))
	}
	return cells
}

// FormatHeader produces the styled header cells.
func (f *Formatter) FormatHeader(fields []string) []string {
	fields = f.Fit(fields)
	style := f.Mapper.Style(classify.TypeText, CellContext{Header: true})
	cells := make([]string, len(fields))
	for i, raw := range fields {
		cells[i] = style.Render(Truncate(raw, f.WidthLimit))
	}
	return cells
}
