package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocinante/internal/event"
)

func (a *App) showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [calendar-file]",
		Short: "Show the calendar grouped by day",
		Long: `Display the events of a calendar file grouped by day.

Without an argument the configured calendar path is used.`,
		Example: `  rocinante show
  rocinante show meetings.ics`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			events, err := loadEvents(a.calendarPath(args))
			if err != nil {
				return err
			}

			if len(events) == 0 {
				fmt.Println("No events in the calendar.")
				return nil
			}

			printEvents(events)
			return nil
		},
	}

	return cmd
}

// printEvents prints events grouped by day in chronological order, moved
// events highlighted.
func printEvents(events []event.Event) {
	ordered := slices.Clone(events)
	slices.SortStableFunc(ordered, func(a, b event.Event) int {
		return a.Start.Compare(b.Start)
	})

	var currentDate string
	for _, ev := range ordered {
		date := ev.Start.Format("2006-01-02")
		if date != currentDate {
			if currentDate != "" {
				fmt.Println()
			}
			fmt.Printf("%s\n", formatHeader(fmt.Sprintf("=== %s (%s) ===", date, ev.Start.Format("Monday"))))
			currentDate = date
		}

		line := fmt.Sprintf("  %s  %s", event.FormatTimeRange(ev.Start, ev.End), truncate(ev.Title, termWidth()-28))
		if ev.Extended.Rescheduled {
			fmt.Println(formatMoved(line + "  (moved)"))
		} else {
			fmt.Println(line)
		}
	}
}

// truncate shortens s to at most width runes, appending an ellipsis.
func truncate(s string, width int) string {
	if width < 4 {
		width = 4
	}
	if len(s) <= width {
		return s
	}
	return strings.TrimSpace(s[:width-3]) + "..."
}
