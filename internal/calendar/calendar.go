// Package calendar computes the day grids shown by month-view widgets.
//
// A grid always covers complete weeks: the days of the displayed month plus
// enough leading days from the previous month and trailing days from the
// next month to fill every row. Cells are tagged with which of the three
// months they belong to so renderers can dim the boundary days.
package calendar

import "time"

// MonthType classifies a grid cell relative to the displayed month.
type MonthType int

const (
	MonthPrevious MonthType = iota
	MonthCurrent
	MonthNext
)

func (t MonthType) String() string {
	switch t {
	case MonthPrevious:
		return "previous"
	case MonthNext:
		return "next"
	default:
		return "current"
	}
}

// Cell is a single day slot in a month grid.
type Cell struct {
	Day  int
	Type MonthType
}

// Generate returns the ordered day cells for the given month, starting each
// week on firstDay. The result length is always a multiple of 7:
// leading cells come from the previous month, trailing cells from the next.
func Generate(firstDay time.Weekday, month time.Month, year int) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// Cyclic distance from the week's first column to the 1st of the month.
	offset := (int(first.Weekday()) - int(firstDay) + 7) % 7

	// Day 0 of this month is the last day of the previous one; time.Date
	// normalizes the January -> December rollover for us.
	prevLen := time.Date(year, month, 0, 0, 0, 0, 0, time.UTC).Day()
	n := DaysInMonth(year, month)

	cells := make([]Cell, 0, 42)
	for d := prevLen - offset + 1; d <= prevLen; d++ {
		cells = append(cells, Cell{Day: d, Type: MonthPrevious})
	}
	for d := 1; d <= n; d++ {
		cells = append(cells, Cell{Day: d, Type: MonthCurrent})
	}
	for d := 1; len(cells)%7 != 0; d++ {
		cells = append(cells, Cell{Day: d, Type: MonthNext})
	}
	return cells
}

// Weeks partitions a grid into rows of exactly seven cells.
func Weeks(cells []Cell) [][]Cell {
	weeks := make([][]Cell, 0, len(cells)/7)
	for i := 0; i+7 <= len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

// RotateDayNames reorders weekday labels (indexed by time.Weekday, Sunday
// first) so the label for firstDay lands in column zero. The rotation uses
// the same cyclic offset as Generate, keeping labels aligned to grid columns.
func RotateDayNames(names [7]string, firstDay time.Weekday) [7]string {
	var out [7]string
	for i := 0; i < 7; i++ {
		out[i] = names[(int(firstDay)+i)%7]
	}
	return out
}

// DaysInMonth reports the number of days in the given month, accounting for
// leap years. Day 0 of the next month is the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstOfMonth normalizes t to midnight UTC on the 1st of its month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths shifts t by n months, anchored to the 1st so that AddDate's
// day-overflow normalization can never skip a short month.
func AddMonths(t time.Time, n int) time.Time {
	return FirstOfMonth(t).AddDate(0, n, 0)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
