package pager

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/csvpeek/internal/render"
)

// frameOverhead is the number of terminal lines not available for data
// rows: table top border, header row, header separator, bottom border,
// and the status line.
const frameOverhead = 5

// Model is the bubbletea model wrapping the viewport machine. Update is
// the only writer of pager state; View returns a frame cached on the last
// accepted transition, so rejected moves cost nothing.
type Model struct {
	machine   *Machine
	formatter *render.Formatter
	header    []string
	keys      KeyMap
	opts      render.TableOptions

	statusStyle lipgloss.Style

	width  int
	frame  string
	frames int // accepted render passes, used by tests
}

// FitHeight converts a terminal height into the number of data rows a
// pager window of that size can show.
func FitHeight(terminalHeight int) int {
	if h := terminalHeight - frameOverhead; h > 0 {
		return h
	}
	return 1
}

// NewModel creates the pager model. The machine should be sized for a
// provisional height; the first WindowSizeMsg re-fits it to the terminal.
func NewModel(machine *Machine, formatter *render.Formatter, header []string, opts render.TableOptions) Model {
	m := Model{
		machine:     machine,
		formatter:   formatter,
		header:      header,
		keys:        DefaultKeyMap(),
		opts:        opts,
		statusStyle: lipgloss.NewStyle().Reverse(true),
	}
	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := msg.Height - frameOverhead
		if height < 1 {
			height = 1
		}
		m.machine.Resize(height)
		m.rebuild()
		return m, nil

	case tea.KeyMsg:
		ev, ok := m.eventFor(msg)
		if !ok {
			return m, nil
		}
		if ev == EventQuit {
			m.machine.Apply(EventQuit)
			return m, tea.Quit
		}
		if m.machine.Apply(ev) {
			m.rebuild()
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.machine.State() == StateClosed {
		return ""
	}
	return m.frame + "\n" + m.statusStyle.Render(m.status())
}

// eventFor maps a key press to a pager event.
func (m Model) eventFor(msg tea.KeyMsg) (Event, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return EventQuit, true
	case key.Matches(msg, m.keys.Down):
		return EventDown, true
	case key.Matches(msg, m.keys.Up):
		return EventUp, true
	case key.Matches(msg, m.keys.MultiDown):
		return EventMultiDown, true
	case key.Matches(msg, m.keys.MultiUp):
		return EventMultiUp, true
	case key.Matches(msg, m.keys.PageDown):
		return EventPageDown, true
	case key.Matches(msg, m.keys.PageUp):
		return EventPageUp, true
	case key.Matches(msg, m.keys.HalfDown):
		return EventHalfDown, true
	case key.Matches(msg, m.keys.HalfUp):
		return EventHalfUp, true
	case key.Matches(msg, m.keys.Home):
		return EventHome, true
	case key.Matches(msg, m.keys.End):
		return EventEnd, true
	}
	return 0, false
}

// rebuild re-renders the visible window into the cached frame. Column
// widths come from the window alone, so they may shift while scrolling;
// stabilizing them would need a full pre-scan and defeat lazy loading.
func (m *Model) rebuild() {
	vp := m.machine.Viewport()
	opts := m.opts
	opts.StartIndex = vp.Top + 1
	opts.MaxTableWidth = m.width
	m.frame = render.Table(m.header, m.machine.Window(), m.formatter, opts)
	m.frames++
}

// status builds the one-line status bar.
func (m Model) status() string {
	vp := m.machine.Viewport()

	last := vp.Top + vp.Height
	if last > vp.Total {
		last = vp.Total
	}
	first := vp.Top + 1
	if vp.Total == 0 {
		first = 0
	}

	total := fmt.Sprintf("%d", vp.Total)
	if m.machine.State() != StateExhausted {
		total += "+"
	}

	percent := 100
	if vp.Total > 0 {
		percent = last * 100 / vp.Total
	}

	return fmt.Sprintf(" rows %d-%d of %s (%d%%)  ↑↓ scroll · space/b page · d/u half · g/G ends · q quit ",
		first, last, total, percent)
}

// Run starts the pager on the terminal's alternate screen and blocks
// until the user quits. The screen is restored on any exit path,
// including errors.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("pager failed: %w", err)
	}
	return nil
}
