// Package pager implements the interactive scrolling viewer.
//
// The viewport state machine is kept separate from terminal I/O: Machine
// applies scroll events against a lazy row source, and the bubbletea model
// in model.go only translates key presses to events and redraws accepted
// transitions. The machine is fully testable without a terminal.
package pager

import (
	"github.com/leapstack-labs/csvpeek/internal/source"
)

// State is the pager lifecycle phase.
type State int

// Pager states.
const (
	// StateLoading means the total row count is still a lower bound.
	StateLoading State = iota
	// StateReady means stable browsing with rows still unread.
	StateReady
	// StateExhausted means the end of the source was reached and the
	// total is exact.
	StateExhausted
	// StateClosed is terminal; no further events are accepted.
	StateClosed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateExhausted:
		return "exhausted"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Event is a scroll or control input.
type Event int

// Pager events, one per key action.
const (
	EventDown Event = iota
	EventUp
	EventMultiDown
	EventMultiUp
	EventPageDown
	EventPageUp
	EventHalfDown
	EventHalfUp
	EventHome
	EventEnd
	EventQuit
)

// Viewport is the visible window over the row sequence.
type Viewport struct {
	// Top is the index of the first visible row.
	Top int
	// Height is the number of visible data rows.
	Height int
	// Total is the row count known so far; exact once the source is
	// exhausted, a lower bound before that.
	Total int
	// SingleStep and MultiStep are the configured scroll distances.
	SingleStep int
	MultiStep  int
}

// desiredTop returns the unclamped target row for an event. Pure: the
// whole key table lives here.
func (v Viewport) desiredTop(ev Event) int {
	switch ev {
	case EventDown:
		return v.Top + v.SingleStep
	case EventUp:
		return v.Top - v.SingleStep
	case EventMultiDown:
		return v.Top + v.MultiStep
	case EventMultiUp:
		return v.Top - v.MultiStep
	case EventPageDown:
		return v.Top + v.Height
	case EventPageUp:
		return v.Top - v.Height
	case EventHalfDown:
		return v.Top + v.Height/2
	case EventHalfUp:
		return v.Top - v.Height/2
	case EventHome:
		return 0
	case EventEnd:
		return v.Total - v.Height
	default:
		return v.Top
	}
}

// clamp bounds a target top row to [0, max(0, Total-Height)].
func (v Viewport) clamp(top int) int {
	max := v.Total - v.Height
	if max < 0 {
		max = 0
	}
	if top > max {
		top = max
	}
	if top < 0 {
		top = 0
	}
	return top
}

// Machine drives the viewport against a lazy row source. It is the single
// writer of the viewport state; scrolling happens only in Apply, never
// from background work.
type Machine struct {
	vp    Viewport
	state State
	src   source.Rows
}

// NewMachine creates a machine showing the first window of the source.
func NewMachine(src source.Rows, height, singleStep, multiStep int) *Machine {
	if height < 1 {
		height = 1
	}
	if singleStep < 1 {
		singleStep = 1
	}
	if multiStep < 1 {
		multiStep = 1
	}
	m := &Machine{
		vp: Viewport{
			Height:     height,
			SingleStep: singleStep,
			MultiStep:  multiStep,
		},
		state: StateLoading,
		src:   src,
	}
	m.fill(height)
	return m
}

// Viewport returns the current viewport state.
func (m *Machine) Viewport() Viewport { return m.vp }

// State returns the current lifecycle state.
func (m *Machine) State() State { return m.state }

// Apply handles one event. It returns true when the event produced a
// visible change (so the caller should redraw) and false for rejected
// no-op moves, which must not trigger a render.
func (m *Machine) Apply(ev Event) bool {
	if m.state == StateClosed {
		return false
	}
	if ev == EventQuit {
		m.state = StateClosed
		return true
	}

	if ev == EventEnd {
		// Jumping to the end needs the exact total.
		m.fill(m.src.ReadToEnd())
	}
	desired := m.vp.desiredTop(ev)

	// A downward move past the known frontier pulls more rows before
	// the clamp, so scrolling never refuses a move the file could
	// satisfy.
	if need := desired + m.vp.Height; need > m.vp.Total && !m.src.Exhausted() {
		m.fill(need)
	}

	top := m.vp.clamp(desired)
	if top == m.vp.Top {
		return false
	}
	m.vp.Top = top
	return true
}

// Resize changes the viewport height, clamping the top row to keep it in
// bounds. The caller always redraws after a resize.
func (m *Machine) Resize(height int) {
	if height < 1 {
		height = 1
	}
	m.vp.Height = height
	m.fill(m.vp.Top + height)
	m.vp.Top = m.vp.clamp(m.vp.Top)
}

// Window returns the currently visible rows.
func (m *Machine) Window() [][]string {
	rows := make([][]string, 0, m.vp.Height)
	for i := m.vp.Top; i < m.vp.Top+m.vp.Height; i++ {
		row, ok := m.src.RowAt(i)
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	return rows
}

// fill reads forward until n rows are known or the source ends, then
// refreshes the total and the lifecycle state.
func (m *Machine) fill(n int) {
	if !m.src.Exhausted() && m.src.KnownRowCount() < n {
		m.src.RowAt(n - 1)
	}
	m.vp.Total = m.src.KnownRowCount()
	if m.state == StateClosed {
		return
	}
	if m.src.Exhausted() {
		m.state = StateExhausted
	} else if m.state == StateLoading {
		m.state = StateReady
	}
}
