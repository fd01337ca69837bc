// Package datepicker implements an embeddable date-selection widget: a text
// input that reveals a calendar dialog while focused and collapses back to a
// plain input otherwise.
//
// The core is a pure state machine (State and its gesture transitions) plus
// a grid generator (internal/calendar). Model wraps both into a Bubble Tea
// component; hosts that bring their own event loop can drive the state
// machine directly.
package datepicker

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"datepick/internal/calendar"
)

// Model is the Bubble Tea component. It follows value semantics: Update
// returns a new Model, and the embedded State snapshot is replaced wholesale
// on every transition.
type Model struct {
	opts  Options
	state State
	input textinput.Model

	// The selection is owned by the host and passed back in via
	// SetSelected; the widget only tracks it for rendering.
	selected    time.Time
	hasSelected bool

	// Screen position of the widget's top-left cell, for mouse hit-testing.
	offX, offY int

	prevGlyph, nextGlyph string
}

// New builds a picker from opts. Zero-valued display fields fall back to
// the documented defaults (see DefaultOptions).
func New(opts Options) Model {
	opts = opts.normalized()

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 32
	ti.Width = gridWidth - 2

	return Model{
		opts:      opts,
		state:     NewState(),
		input:     ti,
		prevGlyph: "◀",
		nextGlyph: "▶",
	}
}

// WithToday pre-seeds the snapshot with a known current date, making the
// startup now lookup a no-op.
func (m Model) WithToday(now time.Time) Model {
	m.state = NewStateWithToday(now)
	return m
}

// WithArrowGlyphs overrides the month-navigation arrows (e.g. "<" and ">"
// for ASCII-only terminals).
func (m Model) WithArrowGlyphs(prev, next string) Model {
	m.prevGlyph, m.nextGlyph = prev, next
	return m
}

// SetOffset tells the picker where the host placed it on screen so mouse
// coordinates can be translated into widget-local ones.
func (m Model) SetOffset(x, y int) Model {
	m.offX, m.offY = x, y
	return m
}

// SetSelected feeds the host-owned selection back into the widget.
func (m Model) SetSelected(date time.Time) Model {
	m.selected = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	m.hasSelected = true
	m.input.SetValue(m.opts.Formatter(m.selected))
	return m
}

// ClearSelected removes the selection and empties the input.
func (m Model) ClearSelected() Model {
	m.selected = time.Time{}
	m.hasSelected = false
	m.input.SetValue("")
	return m
}

// Selected returns the selection the widget is currently rendering.
func (m Model) Selected() (time.Time, bool) { return m.selected, m.hasSelected }

// State returns the latest snapshot.
func (m Model) State() State { return m.state }

// SetState re-supplies a snapshot stored by the host.
func (m Model) SetState(st State) Model {
	m.state = st
	return m
}

// Height reports how many terminal rows the widget currently occupies.
func (m Model) Height() int {
	if !m.state.DialogOpen() {
		return 1
	}
	return firstWeekRow + m.weekRows() + 1
}

// Init schedules the one-shot current-date lookup.
func (m Model) Init() tea.Cmd { return ScheduleNowLookup() }

// Focus gives the input logical focus, snapping the displayed month to the
// selection when configured to.
func (m Model) Focus() (Model, tea.Cmd) {
	blink := m.input.Focus()
	next, cmd := m.apply(m.state.FocusInput(m.opts, m.selected, m.hasSelected))
	return next, tea.Batch(blink, cmd)
}

// Blur drops input focus.
func (m Model) Blur() (Model, tea.Cmd) {
	m.input.Blur()
	return m.apply(m.state.BlurInput())
}

// Focused reports whether the text input holds logical focus.
func (m Model) Focused() bool { return m.state.InputFocused() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case nowResolvedMsg:
		return m.apply(m.state.ResolveNow(msg.now))
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) View() string {
	out := renderInputLine(gridWidth, m.input.View())
	if m.state.DialogOpen() {
		out += "\n" + RenderDialog(m.opts, m.state, m.selected, m.hasSelected, m.prevGlyph, m.nextGlyph)
	}
	return out
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.state.InputFocused() {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEnter:
		st, date, ok := m.state.CommitInput(m.input.Value())
		next, stateCmd := m.apply(st)
		next, changeCmd := next.commit(date, ok)
		return next, tea.Batch(stateCmd, changeCmd)
	case tea.KeyEsc:
		return m.Blur()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateMouse reproduces the mousedown/mouseup ordering contract: a press
// inside the dialog marks it focused so the input blurring mid-drag can't
// close it; the matching release decides what was activated.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	x, y := msg.X-m.offX, msg.Y-m.offY

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if y == 0 && x >= 0 && x < gridWidth {
			return m.Focus()
		}
		if m.inDialog(x, y) {
			return m.apply(m.state.MouseDownDialog())
		}
		if m.state.DialogOpen() {
			return m.Blur()
		}
	case tea.MouseActionRelease:
		if m.inDialog(x, y) {
			return m.release(x, y)
		}
	}
	return m, nil
}

func (m Model) release(x, y int) (Model, tea.Cmd) {
	switch {
	case y == titleRow:
		if x <= 1 {
			return m.apply(m.state.PrevMonth())
		}
		if x >= gridWidth-2 {
			return m.apply(m.state.NextMonth())
		}
		return m.apply(m.state.PressTitle())

	case y >= firstWeekRow && y < firstWeekRow+m.weekRows():
		title, ok := m.state.TitleDate()
		if !ok {
			break
		}
		cells := calendar.Generate(m.opts.FirstDayOfWeek, title.Month(), title.Year())
		col := x / cellWidth
		if col > 6 {
			col = 6
		}
		idx := (y-firstWeekRow)*7 + col
		if idx >= len(cells) {
			break
		}
		st, date := m.state.PressDay(cells[idx])
		if !st.InputFocused() {
			m.input.Blur()
		}
		next, stateCmd := m.apply(st)
		next, changeCmd := next.commit(date, true)
		return next, tea.Batch(stateCmd, changeCmd)
	}

	// Header row, footer, or a gap: the dialog background.
	return m.apply(m.state.MouseUpDialog())
}

// inDialog reports whether widget-local (x, y) falls inside the open dialog.
func (m Model) inDialog(x, y int) bool {
	if !m.state.DialogOpen() {
		return false
	}
	return x >= 0 && x < gridWidth && y >= titleRow && y <= firstWeekRow+m.weekRows()
}

// weekRows is the number of week rows in the displayed grid (4 to 6), or 0
// before a month is shown.
func (m Model) weekRows() int {
	title, ok := m.state.TitleDate()
	if !ok {
		return 0
	}
	return len(calendar.Generate(m.opts.FirstDayOfWeek, title.Month(), title.Year())) / 7
}

// apply installs a new snapshot, notifies the host callback and emits the
// snapshot as a message.
func (m Model) apply(next State) (Model, tea.Cmd) {
	m.state = next
	if m.opts.OnStateChange != nil {
		m.opts.OnStateChange(next)
	}
	return m, func() tea.Msg { return StateChangedMsg{State: next} }
}

// commit records a selection change and notifies the host. ok=false clears.
func (m Model) commit(date time.Time, ok bool) (Model, tea.Cmd) {
	if ok {
		m = m.SetSelected(date)
	} else {
		m = m.ClearSelected()
	}
	if m.opts.OnChange != nil {
		m.opts.OnChange(date, ok)
	}
	return m, func() tea.Msg { return DateChangedMsg{Date: date, Ok: ok} }
}
