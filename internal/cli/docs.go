package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const usageDoc = `# datepick

A terminal date picker: a text input that opens a calendar dialog while
focused.

## Interaction

- **tab** focuses the input and opens the calendar; **esc** closes it.
- Type a date (e.g. ` + "`2023-09-15`" + `) and press **enter** to commit it.
  Text that doesn't parse as a date clears the selection.
- Click a day to pick it. Days from the previous or next month pick the
  date *and* turn the calendar to that month.
- Click the arrows next to the month title to navigate.

## Configuration

- ` + "`--date`" + ` starts with a selection; ` + "`--first-day`" + ` sets the first weekday
  of each row; ` + "`--no-snap`" + ` keeps the displayed month where it was when the
  input regains focus.
- The last committed pick is stored in the state file (` + "`--db`" + `,
  default ` + "`~/.datepick.sqlite`" + `) and becomes the next run's selection.

## Environment

- ` + "`DATEPICK_THEME=light|dark`" + ` forces the palette; ` + "`NO_COLOR`" + ` disables color.
- ` + "`DATEPICK_GLYPHS=ascii`" + ` swaps the arrow glyphs for ` + "`<`" + ` and ` + "`>`" + `.
`

func newDocsCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Print usage documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := renderDocs(usageDoc, width)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "wrap width")
	return cmd
}

func renderDocs(md string, width int) (string, error) {
	style := "dark"
	if !lipgloss.HasDarkBackground() {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		// Avoid WithAutoStyle(): it can block waiting on terminal queries.
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("docs renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render docs: %w", err)
	}
	return out, nil
}
