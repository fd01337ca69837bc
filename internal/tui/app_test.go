package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"datepick/internal/datepicker"
	"datepick/internal/store"
)

func newTestApp(t *testing.T) appModel {
	t.Helper()
	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "state.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	picker := datepicker.New(datepicker.DefaultOptions()).
		WithToday(time.Date(2023, time.September, 15, 0, 0, 0, 0, time.UTC)).
		SetOffset(pickerOffsetX, pickerOffsetY)
	return newAppModel(st, picker)
}

func TestTabTogglesFocus(t *testing.T) {
	m := newTestApp(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(appModel)
	if !m.picker.Focused() {
		t.Fatalf("tab should focus the picker")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(appModel)
	if m.picker.Focused() {
		t.Fatalf("tab should blur a focused picker")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestApp(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("q should quit while the input is blurred")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(appModel)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatalf("q should type into a focused input, not quit")
		}
	}
}

func TestDateChangePersists(t *testing.T) {
	m := newTestApp(t)
	picked := time.Date(2023, time.September, 15, 0, 0, 0, 0, time.UTC)

	next, cmd := m.Update(datepicker.DateChangedMsg{Date: picked, Ok: true})
	m = next.(appModel)
	if !m.hasPick || !m.lastPick.Equal(picked) {
		t.Fatalf("host did not record the pick: %v ok=%v", m.lastPick, m.hasPick)
	}
	if cmd == nil {
		t.Fatalf("expected a persistence command")
	}
	saved, ok := cmd().(pickSavedMsg)
	if !ok {
		t.Fatalf("expected pickSavedMsg")
	}
	if saved.err != nil {
		t.Fatalf("persist failed: %v", saved.err)
	}

	got, ok, err := m.st.LoadLastPick(context.Background())
	if err != nil || !ok || !got.Equal(picked) {
		t.Fatalf("stored pick = %v ok=%v err=%v, want %v", got, ok, err, picked)
	}
}

func TestStateChangesAreStored(t *testing.T) {
	m := newTestApp(t)

	snap := datepicker.NewStateWithToday(time.Date(2023, time.September, 15, 0, 0, 0, 0, time.UTC))
	snap = snap.MouseDownDialog()

	next, _ := m.Update(datepicker.StateChangedMsg{State: snap})
	m = next.(appModel)
	if m.snapshot != snap {
		t.Fatalf("host should store the latest snapshot")
	}
	if m.picker.State() != snap {
		t.Fatalf("host should re-supply the snapshot to the widget")
	}
}
