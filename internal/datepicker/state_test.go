package datepicker

import (
	"testing"
	"time"

	"datepick/internal/calendar"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestZeroStateIsClosed(t *testing.T) {
	st := NewState()
	if st.InputFocused() || st.DialogFocused() || st.DialogOpen() {
		t.Fatalf("zero state should have nothing focused: %+v", st)
	}
	if _, ok := st.Today(); ok {
		t.Fatalf("zero state should have no today")
	}
	if _, ok := st.TitleDate(); ok {
		t.Fatalf("zero state should have no title date")
	}
	if st.LastEvent() != EventNone {
		t.Fatalf("last event = %v, want none", st.LastEvent())
	}
}

func TestFocusThenPressCurrentDayEmits(t *testing.T) {
	opts := DefaultOptions()
	st := NewState().ResolveNow(date(2023, time.September, 1))
	st = st.FocusInput(opts, time.Time{}, false)
	if !st.DialogOpen() {
		t.Fatalf("dialog should open on input focus")
	}

	st, picked := st.PressDay(calendar.Cell{Day: 15, Type: calendar.MonthCurrent})
	if st.InputFocused() || st.DialogFocused() {
		t.Fatalf("press on a current-month day should drop both focus flags: %+v", st)
	}
	if want := date(2023, time.September, 15); !picked.Equal(want) {
		t.Fatalf("picked %v, want %v", picked, want)
	}
	if st.LastEvent() != EventPressDay {
		t.Fatalf("last event = %v, want press-day", st.LastEvent())
	}
}

func TestBlurIsIdempotent(t *testing.T) {
	opts := DefaultOptions()
	once := NewState().FocusInput(opts, time.Time{}, false).BlurInput()
	twice := once.BlurInput()
	if once != twice {
		t.Fatalf("blurring twice diverged: %+v vs %+v", once, twice)
	}
}

func TestPressBoundaryDaysNavigateAndEmit(t *testing.T) {
	st := NewStateWithToday(date(2023, time.September, 10))

	prev, picked := st.PressDay(calendar.Cell{Day: 27, Type: calendar.MonthPrevious})
	if want := date(2023, time.August, 27); !picked.Equal(want) {
		t.Fatalf("previous cell picked %v, want %v", picked, want)
	}
	if title, _ := prev.TitleDate(); !title.Equal(date(2023, time.August, 1)) {
		t.Fatalf("previous cell moved title to %v, want August 1", title)
	}

	next, picked := st.PressDay(calendar.Cell{Day: 4, Type: calendar.MonthNext})
	if want := date(2023, time.October, 4); !picked.Equal(want) {
		t.Fatalf("next cell picked %v, want %v", picked, want)
	}
	if title, _ := next.TitleDate(); !title.Equal(date(2023, time.October, 1)) {
		t.Fatalf("next cell moved title to %v, want October 1", title)
	}
}

func TestMonthArrows(t *testing.T) {
	st := NewStateWithToday(date(2024, time.January, 15))
	st = st.MouseDownDialog()

	back := st.PrevMonth()
	if title, _ := back.TitleDate(); !title.Equal(date(2023, time.December, 1)) {
		t.Fatalf("prev arrow: title %v, want December 2023", title)
	}
	if back.DialogFocused() {
		t.Fatalf("prev arrow should release dialog focus")
	}

	fwd := st.NextMonth()
	if title, _ := fwd.TitleDate(); !title.Equal(date(2024, time.February, 1)) {
		t.Fatalf("next arrow: title %v, want February 2024", title)
	}
}

func TestMouseDownUpContract(t *testing.T) {
	opts := DefaultOptions()
	st := NewState().FocusInput(opts, time.Time{}, false)

	st = st.MouseDownDialog()
	if !st.DialogFocused() {
		t.Fatalf("mousedown should mark the dialog focused")
	}

	// The input blurring mid-press must not close the dialog.
	st = st.BlurInput()
	if !st.DialogOpen() {
		t.Fatalf("dialog should stay open while dialog-focused")
	}

	st = st.MouseUpDialog()
	if st.DialogFocused() {
		t.Fatalf("mouseup should release dialog focus")
	}
	if !st.InputFocused() {
		t.Fatalf("mouseup on background should return focus to the input")
	}
}

func TestPressTitleReturnsFocusToInput(t *testing.T) {
	opts := DefaultOptions()
	st := NewState().FocusInput(opts, time.Time{}, false).MouseDownDialog().PressTitle()
	if st.DialogFocused() {
		t.Fatalf("title press should release dialog focus")
	}
	if !st.DialogOpen() {
		t.Fatalf("title press should keep the dialog open via input focus")
	}
}

func TestFocusSnapsToSelection(t *testing.T) {
	opts := DefaultOptions()
	sel := date(2021, time.March, 14)

	st := NewStateWithToday(date(2023, time.September, 10)).FocusInput(opts, sel, true)
	if title, _ := st.TitleDate(); !title.Equal(date(2021, time.March, 1)) {
		t.Fatalf("snap on: title %v, want March 2021", title)
	}

	opts.SnapToSelection = false
	st = NewStateWithToday(date(2023, time.September, 10)).FocusInput(opts, sel, true)
	if title, _ := st.TitleDate(); !title.Equal(date(2023, time.September, 1)) {
		t.Fatalf("snap off: title %v, want September 2023", title)
	}
}

func TestResolveNowFillsOnlyUnset(t *testing.T) {
	seeded := NewStateWithToday(date(2023, time.September, 10))
	after := seeded.ResolveNow(date(2024, time.June, 1))
	if today, _ := after.Today(); !today.Equal(date(2023, time.September, 10)) {
		t.Fatalf("resolution clobbered a seeded today: %v", today)
	}
	if title, _ := after.TitleDate(); !title.Equal(date(2023, time.September, 1)) {
		t.Fatalf("resolution clobbered a seeded title: %v", title)
	}

	// A month already chosen by the user survives a late resolution.
	opts := DefaultOptions()
	st := NewState().FocusInput(opts, date(2021, time.March, 14), true)
	st = st.ResolveNow(date(2024, time.June, 1))
	if title, _ := st.TitleDate(); !title.Equal(date(2021, time.March, 1)) {
		t.Fatalf("late resolution moved the displayed month: %v", title)
	}
	if today, ok := st.Today(); !ok || !today.Equal(date(2024, time.June, 1)) {
		t.Fatalf("late resolution should still fill today: %v ok=%v", today, ok)
	}
}

func TestTitleDateAlwaysFirstOfMonth(t *testing.T) {
	opts := DefaultOptions()
	st := NewState().ResolveNow(date(2023, time.September, 19))
	st = st.FocusInput(opts, date(2022, time.July, 31), true)
	st = st.PrevMonth().NextMonth().NextMonth()
	st, _ = st.PressDay(calendar.Cell{Day: 30, Type: calendar.MonthPrevious})

	title, ok := st.TitleDate()
	if !ok {
		t.Fatalf("title should be set")
	}
	if title.Day() != 1 || title.Hour() != 0 {
		t.Fatalf("title %v is not a first-of-month midnight", title)
	}
}

func TestCommitInput(t *testing.T) {
	st := NewState()
	st, picked, ok := st.CommitInput("2023-09-15")
	if !ok || !picked.Equal(date(2023, time.September, 15)) {
		t.Fatalf("commit = %v ok=%v, want 2023-09-15", picked, ok)
	}
	if st.LastEvent() != EventInputChanged {
		t.Fatalf("last event = %v, want input-changed", st.LastEvent())
	}

	if _, _, ok := st.CommitInput("not a date"); ok {
		t.Fatalf("garbage input should clear, not parse")
	}
	if _, _, ok := st.CommitInput("   "); ok {
		t.Fatalf("blank input should clear")
	}
}

func TestCellDate(t *testing.T) {
	title := date(2024, time.January, 1)
	cases := []struct {
		cell calendar.Cell
		want time.Time
	}{
		{calendar.Cell{Day: 31, Type: calendar.MonthPrevious}, date(2023, time.December, 31)},
		{calendar.Cell{Day: 15, Type: calendar.MonthCurrent}, date(2024, time.January, 15)},
		{calendar.Cell{Day: 3, Type: calendar.MonthNext}, date(2024, time.February, 3)},
	}
	for _, c := range cases {
		if got := CellDate(title, c.cell); !got.Equal(c.want) {
			t.Fatalf("CellDate(%v) = %v, want %v", c.cell, got, c.want)
		}
	}
}
