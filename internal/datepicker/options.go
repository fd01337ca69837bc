package datepicker

import "time"

// DefaultDayNames are the English weekday abbreviations, indexed by
// time.Weekday (Sunday first).
var DefaultDayNames = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Options configures a picker for its lifetime. The host supplies it once;
// the widget never mutates it.
type Options struct {
	// OnChange is invoked whenever the user commits a selection: clicking a
	// day cell, or submitting the input's text. ok=false means the selection
	// was cleared (empty or unparseable input).
	OnChange func(date time.Time, ok bool)

	// OnStateChange is invoked with the new snapshot on every transition.
	// The host is responsible for storing it.
	OnStateChange func(State)

	// DayNames maps each weekday to its column label, indexed by
	// time.Weekday (Sunday == 0).
	DayNames [7]string

	// FirstDayOfWeek is the weekday shown in the leftmost grid column.
	FirstDayOfWeek time.Weekday

	// SnapToSelection makes focusing the input jump the displayed month to
	// the currently selected date's month.
	SnapToSelection bool

	// Formatter renders the selected date into the input field.
	Formatter func(time.Time) string
	// TitleFormatter renders the dialog header (month + year).
	TitleFormatter func(time.Time) string
	// FullDateFormatter renders the dialog footer (weekday + full date).
	FullDateFormatter func(time.Time) string
}

// DefaultOptions returns the documented defaults: English day abbreviations,
// Sunday-first weeks, snap-to-selection on, ISO input format, "January 2006"
// titles and "Monday, January 2, 2006" footers.
func DefaultOptions() Options {
	return Options{
		DayNames:          DefaultDayNames,
		FirstDayOfWeek:    time.Sunday,
		SnapToSelection:   true,
		Formatter:         DefaultFormatter,
		TitleFormatter:    DefaultTitleFormatter,
		FullDateFormatter: DefaultFullDateFormatter,
	}
}

func DefaultFormatter(t time.Time) string         { return t.Format("2006-01-02") }
func DefaultTitleFormatter(t time.Time) string    { return t.Format("January 2006") }
func DefaultFullDateFormatter(t time.Time) string { return t.Format("Monday, January 2, 2006") }

// normalized fills zero-valued display fields with their defaults so a
// caller-built Options literal doesn't need to spell out every formatter.
func (o Options) normalized() Options {
	if o.DayNames == ([7]string{}) {
		o.DayNames = DefaultDayNames
	}
	if o.Formatter == nil {
		o.Formatter = DefaultFormatter
	}
	if o.TitleFormatter == nil {
		o.TitleFormatter = DefaultTitleFormatter
	}
	if o.FullDateFormatter == nil {
		o.FullDateFormatter = DefaultFullDateFormatter
	}
	return o
}
