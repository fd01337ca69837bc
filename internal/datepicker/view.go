package datepicker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"datepick/internal/calendar"
)

const (
	// Each day cell is two digits plus one separator column.
	cellWidth = 3
	gridWidth = cellWidth*7 - 1

	titleRow     = 1
	headerRow    = 2
	firstWeekRow = 3
)

// RenderDialog draws the calendar dialog as a pure function of its inputs.
// It returns "" unless the state says the dialog is open. Row layout (used
// by the Model's mouse hit-testing): title bar, day-name header, W week
// rows, footer.
func RenderDialog(opts Options, st State, selected time.Time, hasSelected bool, prevGlyph, nextGlyph string) string {
	if !st.DialogOpen() {
		return ""
	}
	opts = opts.normalized()

	title, hasTitle := st.TitleDate()
	lines := make([]string, 0, 9)
	lines = append(lines, renderTitleBar(opts, title, hasTitle, prevGlyph, nextGlyph))
	lines = append(lines, renderDayHeader(opts))

	if hasTitle {
		cells := calendar.Generate(opts.FirstDayOfWeek, title.Month(), title.Year())
		for _, week := range calendar.Weeks(cells) {
			row := make([]string, 0, 7)
			for _, c := range week {
				row = append(row, renderCell(st, title, c, selected, hasSelected))
			}
			lines = append(lines, strings.Join(row, " "))
		}
	}

	lines = append(lines, renderFooter(opts, st, selected, hasSelected))
	return strings.Join(lines, "\n")
}

func renderTitleBar(opts Options, title time.Time, hasTitle bool, prevGlyph, nextGlyph string) string {
	label := ""
	if hasTitle {
		label = opts.TitleFormatter(title)
	}
	prev := styleArrow().Render(prevGlyph)
	next := styleArrow().Render(nextGlyph)
	inner := gridWidth - xansi.StringWidth(prev) - xansi.StringWidth(next)
	mid := lipgloss.PlaceHorizontal(inner, lipgloss.Center, styleTitle().Render(label))
	return prev + mid + next
}

func renderDayHeader(opts Options) string {
	names := calendar.RotateDayNames(opts.DayNames, opts.FirstDayOfWeek)
	cols := make([]string, 0, 7)
	for _, n := range names {
		cols = append(cols, fmt.Sprintf("%2s", n))
	}
	return styleDayHeader().Render(strings.Join(cols, " "))
}

func renderCell(st State, title time.Time, c calendar.Cell, selected time.Time, hasSelected bool) string {
	text := fmt.Sprintf("%2d", c.Day)
	if c.Type != calendar.MonthCurrent {
		return styleDayOutside().Render(text)
	}

	date := CellDate(title, c)
	if hasSelected && calendar.SameDay(date, selected) {
		return styleDaySelected().Render(text)
	}
	if today, ok := st.Today(); ok && calendar.SameDay(date, today) {
		return styleDayToday().Render(text)
	}
	return styleDay().Render(text)
}

func renderFooter(opts Options, st State, selected time.Time, hasSelected bool) string {
	switch {
	case hasSelected:
		return styleFooter().Render(opts.FullDateFormatter(selected))
	default:
		if today, ok := st.Today(); ok {
			return styleFooter().Render(opts.FullDateFormatter(today))
		}
	}
	return ""
}

// renderInputLine keeps the text input to a single visual line of exactly
// width columns. Cursor styling can make the raw view overflow, so the line
// is cut ANSI-aware and styling is terminated to prevent bleed.
func renderInputLine(width int, inputView string) string {
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		width,
		lipgloss.Left,
		" "+inputView,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > width {
		line = xansi.Cut(line, 0, width) + "\x1b[0m"
	}
	return line
}
