package datepicker

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DateChangedMsg is emitted when the user commits a selection. Ok=false
// means the selection was cleared.
type DateChangedMsg struct {
	Date time.Time
	Ok   bool
}

// StateChangedMsg carries the new snapshot after every transition, for hosts
// that prefer reacting to messages over the Options callbacks.
type StateChangedMsg struct {
	State State
}

type nowResolvedMsg struct {
	now time.Time
}

// ScheduleNowLookup is the one-shot startup effect that reads the current
// date. Model.Init issues it; hosts embedding only the state machine can run
// it themselves and feed the message back through Update.
func ScheduleNowLookup() tea.Cmd {
	return func() tea.Msg {
		return nowResolvedMsg{now: time.Now().UTC()}
	}
}
