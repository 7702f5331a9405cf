package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used outside the data table.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds the style set. With color disabled every style is a
// no-op so rendered text passes through unchanged.
func NewStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:   plain,
			Label:   plain,
			Value:   plain,
			Muted:   plain,
			Warning: plain,
			Error:   plain,
		}
	}
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CBA6F7")),
		Label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#94E2D5")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("#BAC2DE")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#585B70")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	}
}
