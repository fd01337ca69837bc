package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"datepick/internal/datepicker"
	"datepick/internal/store"
)

// Where the host places the widget on screen: a header line and a blank
// line above it, indented two columns. The picker needs the same offsets
// for mouse hit-testing.
const (
	pickerOffsetX = 2
	pickerOffsetY = 2
)

type pickSavedMsg struct {
	err error
}

// appModel is the demo host. It owns the selected date and the stored state
// snapshot; the widget only reports transitions.
type appModel struct {
	st     *store.Store
	picker datepicker.Model

	width  int
	height int

	lastPick time.Time
	hasPick  bool
	saveErr  error

	// Latest snapshot, re-supplied to the widget on the next render.
	snapshot datepicker.State
}

func newAppModel(st *store.Store, picker datepicker.Model) appModel {
	return appModel{st: st, picker: picker, snapshot: picker.State()}
}

func (m appModel) Init() tea.Cmd { return m.picker.Init() }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case datepicker.StateChangedMsg:
		m.snapshot = msg.State
		m.picker = m.picker.SetState(m.snapshot)
		return m, nil

	case datepicker.DateChangedMsg:
		m.lastPick, m.hasPick = msg.Date, msg.Ok
		return m, persistPick(m.st, msg.Date, msg.Ok)

	case pickSavedMsg:
		m.saveErr = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !m.picker.Focused() {
				return m, tea.Quit
			}
		case "tab":
			var cmd tea.Cmd
			if m.picker.Focused() {
				m.picker, cmd = m.picker.Blur()
			} else {
				m.picker, cmd = m.picker.Focus()
			}
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render("datepick")
	widget := lipgloss.NewStyle().MarginLeft(pickerOffsetX).Render(m.picker.View())

	status := "no date picked"
	if m.hasPick {
		status = "picked " + m.lastPick.Format("2006-01-02")
	}
	if m.saveErr != nil {
		status = fmt.Sprintf("%s (save failed: %v)", status, m.saveErr)
	}
	statusLine := lipgloss.NewStyle().Faint(true).MarginLeft(pickerOffsetX).Render(status)
	hint := lipgloss.NewStyle().Faint(true).MarginLeft(pickerOffsetX).Render("tab: focus  enter: commit  q: quit")

	return header + "\n\n" + widget + "\n\n" + statusLine + "\n" + hint
}

// persistPick writes the committed selection off the update path.
func persistPick(st *store.Store, date time.Time, ok bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return pickSavedMsg{err: st.SaveLastPick(ctx, date, ok)}
	}
}

// Run wires the widget into a terminal program. When no initial date is
// given, the previously persisted pick (if any) seeds the selection.
func Run(ctx context.Context, dbPath string, opts datepicker.Options, initial time.Time, hasInitial bool, today time.Time, hasToday bool) error {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference()

	st, err := store.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if !hasInitial {
		if last, ok, err := st.LoadLastPick(ctx); err == nil && ok {
			initial, hasInitial = last, true
		}
	}

	picker := datepicker.New(opts).
		WithArrowGlyphs(glyphPrevArrow(), glyphNextArrow()).
		SetOffset(pickerOffsetX, pickerOffsetY)
	if hasToday {
		picker = picker.WithToday(today)
	}
	if hasInitial {
		picker = picker.SetSelected(initial)
	}

	m := newAppModel(st, picker)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
