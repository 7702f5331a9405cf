// Package render turns classified rows into styled, bordered table text.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/csvpeek/pkg/classify"
)

// Palette maps cell types and table roles to display colors. It is built
// once at startup and never mutated afterwards.
type Palette struct {
	Text    lipgloss.Color
	Date    lipgloss.Color
	Float   lipgloss.Color
	Integer lipgloss.Color
	Boolean lipgloss.Color
	Empty   lipgloss.Color

	Header   lipgloss.Color
	RowIndex lipgloss.Color

	BackgroundEven lipgloss.Color
	BackgroundOdd  lipgloss.Color
}

// DefaultPalette returns the built-in color scheme.
func DefaultPalette() Palette {
	return Palette{
		Text:           lipgloss.Color("#BAC2DE"),
		Date:           lipgloss.Color("#FAB387"),
		Float:          lipgloss.Color("#89B4FA"),
		Integer:        lipgloss.Color("#A6E3A1"),
		Boolean:        lipgloss.Color("#F9E2AF"),
		Empty:          lipgloss.Color("#585B70"),
		Header:         lipgloss.Color("#CBA6F7"),
		RowIndex:       lipgloss.Color("#94E2D5"),
		BackgroundEven: lipgloss.Color("#1E1E2E"),
		BackgroundOdd:  lipgloss.Color("#313244"),
	}
}

// ForType returns the foreground color for a cell type.
func (p Palette) ForType(tag classify.Type) lipgloss.Color {
	switch tag {
	case classify.TypeDate:
		return p.Date
	case classify.TypeFloat:
		return p.Float
	case classify.TypeInteger:
		return p.Integer
	case classify.TypeBoolean:
		return p.Boolean
	case classify.TypeEmpty:
		return p.Empty
	default:
		return p.Text
	}
}

// CellContext carries the positional facts that influence a cell's color.
type CellContext struct {
	Header  bool
	RowEven bool
}

// Mapper resolves a cell's style from its type and context. Header context
// always wins over the type color; zebra striping only ever adds a
// background. Mapping never fails: the palette is complete by construction.
type Mapper struct {
	Palette Palette
	Zebra   bool
}

// Style returns the lipgloss style for a cell.
func (m Mapper) Style(tag classify.Type, ctx CellContext) lipgloss.Style {
	s := lipgloss.NewStyle()
	if ctx.Header {
		return s.Foreground(m.Palette.Header).Bold(true)
	}
	s = s.Foreground(m.Palette.ForType(tag))
	if m.Zebra {
		s = s.Background(m.background(ctx.RowEven))
	}
	return s
}

// IndexStyle returns the style for the row-index column.
func (m Mapper) IndexStyle(ctx CellContext) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(m.Palette.RowIndex)
	if m.Zebra && !ctx.Header {
		s = s.Background(m.background(ctx.RowEven))
	}
	return s
}

func (m Mapper) background(even bool) lipgloss.Color {
	if even {
		return m.Palette.BackgroundEven
	}
	return m.Palette.BackgroundOdd
}
