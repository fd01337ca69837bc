package datepicker

import (
	"strings"
	"time"
)

// Layouts accepted when interpreting raw input text as a date. Tried in
// order; the first match wins.
var inputLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseInput interprets raw input-field text as a date, normalized to
// midnight UTC. Empty or unparseable text is treated as "no date" (ok=false),
// never as an error.
func ParseInput(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
