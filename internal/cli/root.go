// Package cli wires the date picker into a command-line entry point.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"datepick/internal/datepicker"
	"datepick/internal/tui"
)

func NewRootCmd() *cobra.Command {
	var (
		dbPath   string
		dateStr  string
		todayStr string
		firstDay string
		noSnap   bool
	)

	cmd := &cobra.Command{
		Use:          "datepick",
		Short:        "Terminal date picker",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick a date interactively
  datepick

  # Start from a given selection, weeks beginning on Monday
  datepick --date 2023-09-15 --first-day monday
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := datepicker.DefaultOptions()
			opts.SnapToSelection = !noSnap
			if firstDay != "" {
				wd, err := parseWeekday(firstDay)
				if err != nil {
					return err
				}
				opts.FirstDayOfWeek = wd
			}

			var (
				initial, today       time.Time
				hasInitial, hasToday bool
			)
			if dateStr != "" {
				t, ok := datepicker.ParseInput(dateStr)
				if !ok {
					return fmt.Errorf("unrecognized --date %q (want e.g. 2006-01-02)", dateStr)
				}
				initial, hasInitial = t, true
			}
			if todayStr != "" {
				t, ok := datepicker.ParseInput(todayStr)
				if !ok {
					return fmt.Errorf("unrecognized --today %q (want e.g. 2006-01-02)", todayStr)
				}
				today, hasToday = t, true
			}

			path := dbPath
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("resolve home dir: %w", err)
				}
				path = filepath.Join(home, ".datepick.sqlite")
			}

			return tui.Run(cmd.Context(), path, opts, initial, hasInitial, today, hasToday)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "state file path (default ~/.datepick.sqlite)")
	cmd.Flags().StringVar(&dateStr, "date", "", "initial selected date")
	cmd.Flags().StringVar(&todayStr, "today", "", "override the current-date lookup (demos, tests)")
	cmd.Flags().StringVar(&firstDay, "first-day", "", "first day of the week (default sunday)")
	cmd.Flags().BoolVar(&noSnap, "no-snap", false, "don't jump to the selected date's month on focus")

	cmd.AddCommand(newDocsCmd())
	return cmd
}

func parseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday", "sun", "su":
		return time.Sunday, nil
	case "monday", "mon", "mo":
		return time.Monday, nil
	case "tuesday", "tue", "tu":
		return time.Tuesday, nil
	case "wednesday", "wed", "we":
		return time.Wednesday, nil
	case "thursday", "thu", "th":
		return time.Thursday, nil
	case "friday", "fri", "fr":
		return time.Friday, nil
	case "saturday", "sat", "sa":
		return time.Saturday, nil
	}
	return 0, fmt.Errorf("unrecognized weekday %q", s)
}
