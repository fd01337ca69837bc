package datepicker

import "github.com/charmbracelet/lipgloss"

// The widget must remain readable on both light and dark terminal
// backgrounds, so every color is an AdaptiveColor pair.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted    = ac("240", "243")
	colorAccent   = ac("27", "62") // blue
	colorInputBg  = ac("254", "234")
	colorOutside  = ac("250", "240") // previous/next-month days
	colorToday    = ac("28", "42")   // green
	colorSelBg    = ac("#e9e9e9", "#262626")
	colorSelFg    = ac("235", "255")
	colorTitleFg  = ac("235", "252")
	colorFooterFg = ac("240", "245")
)

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorTitleFg).Bold(true)
}

func styleArrow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
}

func styleDayHeader() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
}

func styleDay() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Previous/next-month cells are dimmed and never carry today/selected marks.
func styleDayOutside() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorOutside)
}

func styleDayToday() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorToday).Bold(true)
}

func styleDaySelected() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorSelBg).Foreground(colorSelFg).Bold(true)
}

func styleFooter() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorFooterFg)
}
