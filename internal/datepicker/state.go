package datepicker

import (
	"time"

	"datepick/internal/calendar"
)

// Event tags which gesture most recently produced a State snapshot.
// Diagnostic only: nothing in the widget branches on it.
type Event int

const (
	EventNone Event = iota
	EventFocusInput
	EventBlurInput
	EventMouseDownDialog
	EventMouseUpDialog
	EventPressTitle
	EventPrevMonth
	EventNextMonth
	EventPressDay
	EventInputChanged
	EventNowResolved
)

func (e Event) String() string {
	switch e {
	case EventFocusInput:
		return "focus-input"
	case EventBlurInput:
		return "blur-input"
	case EventMouseDownDialog:
		return "mousedown-dialog"
	case EventMouseUpDialog:
		return "mouseup-dialog"
	case EventPressTitle:
		return "press-title"
	case EventPrevMonth:
		return "prev-month"
	case EventNextMonth:
		return "next-month"
	case EventPressDay:
		return "press-day"
	case EventInputChanged:
		return "input-changed"
	case EventNowResolved:
		return "now-resolved"
	default:
		return "none"
	}
}

// State is an immutable snapshot of the widget's focus and navigation state.
// Every transition returns a fresh value; the host stores the latest one and
// feeds it back in on the next render. The zero value is a valid initial
// state with nothing focused and no month displayed yet.
//
// Invariant: titleDate, once set, is always midnight UTC on the 1st of its
// month. The dialog is shown iff inputFocused || dialogFocused.
type State struct {
	inputFocused  bool
	dialogFocused bool
	lastEvent     Event
	today         time.Time // zero until the now lookup resolves
	titleDate     time.Time // zero until initialized
}

// NewState returns the empty initial state.
func NewState() State { return State{} }

// NewStateWithToday returns an initial state pre-seeded with a known "now",
// so the async now lookup becomes a no-op.
func NewStateWithToday(now time.Time) State {
	return State{today: now, titleDate: calendar.FirstOfMonth(now)}
}

func (s State) InputFocused() bool  { return s.inputFocused }
func (s State) DialogFocused() bool { return s.dialogFocused }
func (s State) LastEvent() Event    { return s.lastEvent }

// DialogOpen reports whether the calendar dialog should be rendered.
func (s State) DialogOpen() bool { return s.inputFocused || s.dialogFocused }

// Today returns the cached real-world date, if the now lookup has resolved.
func (s State) Today() (time.Time, bool) { return s.today, !s.today.IsZero() }

// TitleDate returns the first-of-month date whose grid is displayed.
func (s State) TitleDate() (time.Time, bool) { return s.titleDate, !s.titleDate.IsZero() }

// FocusInput marks the text input focused. When snap-to-selection is on and
// a date is currently selected, the displayed month jumps to that date's.
func (s State) FocusInput(opts Options, selected time.Time, hasSelected bool) State {
	s.inputFocused = true
	s.lastEvent = EventFocusInput
	if opts.SnapToSelection && hasSelected {
		s.titleDate = calendar.FirstOfMonth(selected)
	}
	return s
}

// BlurInput unconditionally clears input focus. Idempotent.
func (s State) BlurInput() State {
	s.inputFocused = false
	s.lastEvent = EventBlurInput
	return s
}

// MouseDownDialog records that a press started inside the dialog, keeping it
// logically focused while the pointer interaction is in flight.
func (s State) MouseDownDialog() State {
	s.dialogFocused = true
	s.lastEvent = EventMouseDownDialog
	return s
}

// MouseUpDialog completes a press on the dialog background: the dialog
// releases focus and hands it back to the input, so the dialog stays open.
func (s State) MouseUpDialog() State {
	s.dialogFocused = false
	s.inputFocused = true
	s.lastEvent = EventMouseUpDialog
	return s
}

// PressTitle returns focus to the input without changing the month.
func (s State) PressTitle() State {
	s.dialogFocused = false
	s.lastEvent = EventPressTitle
	return s
}

// PrevMonth shifts the displayed month back by one.
func (s State) PrevMonth() State {
	if !s.titleDate.IsZero() {
		s.titleDate = calendar.AddMonths(s.titleDate, -1)
	}
	s.dialogFocused = false
	s.lastEvent = EventPrevMonth
	return s
}

// NextMonth shifts the displayed month forward by one.
func (s State) NextMonth() State {
	if !s.titleDate.IsZero() {
		s.titleDate = calendar.AddMonths(s.titleDate, 1)
	}
	s.dialogFocused = false
	s.lastEvent = EventNextMonth
	return s
}

// PressDay activates a day cell of the displayed grid and returns the
// clicked date. A current-month cell commits the pick and closes the dialog;
// a previous- or next-month cell also navigates the displayed month to the
// clicked date's month, leaving the dialog open via input focus.
func (s State) PressDay(cell calendar.Cell) (State, time.Time) {
	date := CellDate(s.titleDate, cell)
	switch cell.Type {
	case calendar.MonthPrevious, calendar.MonthNext:
		s.titleDate = calendar.FirstOfMonth(date)
		s.dialogFocused = false
	default:
		s.dialogFocused = false
		s.inputFocused = false
	}
	s.lastEvent = EventPressDay
	return s, date
}

// CommitInput interprets the raw input text as a date. Unparseable or empty
// text clears the selection (ok=false) rather than reporting an error.
func (s State) CommitInput(raw string) (_ State, date time.Time, ok bool) {
	s.lastEvent = EventInputChanged
	date, ok = ParseInput(raw)
	return s, date, ok
}

// ResolveNow feeds in the one-shot "current date" lookup. It only fills
// fields that are still unset: a today seeded via NewStateWithToday wins,
// and an already-displayed month is never moved out from under the user.
func (s State) ResolveNow(now time.Time) State {
	s.lastEvent = EventNowResolved
	if !s.today.IsZero() {
		return s
	}
	s.today = now
	if s.titleDate.IsZero() {
		s.titleDate = calendar.FirstOfMonth(now)
	}
	return s
}

// CellDate resolves a grid cell to a concrete date within the month grid
// anchored at title (a first-of-month date).
func CellDate(title time.Time, cell calendar.Cell) time.Time {
	base := title
	switch cell.Type {
	case calendar.MonthPrevious:
		base = calendar.AddMonths(title, -1)
	case calendar.MonthNext:
		base = calendar.AddMonths(title, 1)
	}
	return time.Date(base.Year(), base.Month(), cell.Day, 0, 0, 0, 0, time.UTC)
}
