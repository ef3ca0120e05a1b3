package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocinante/internal/dateutil"
	"github.com/javiermolinar/rocinante/internal/event"
	"github.com/javiermolinar/rocinante/internal/scheduler"
)

func (a *App) rescheduleCmd() *cobra.Command {
	var (
		promptText    string
		selectIDs     []string
		priority      string
		startDate     string
		endDate       string
		mode          string
		slotMinutes   int
		breakMinutes  int
		businessStart int
		businessEnd   int
		output        string
	)

	cmd := &cobra.Command{
		Use:   "reschedule [calendar-file]",
		Short: "Automatically re-place events into free slots",
		Long: `Re-place a chosen set of events into free slots.

Events named by --select are moved; everything else stays put and blocks
placement. Without --select every event is a candidate. The engine walks
the date range day by day and commits each event into the first slot that
fits; an event that fits nowhere keeps its original time.

The result is printed as a diff. Use --output to also write the new
calendar to a file (.ics or .json by extension).`,
		Example: `  rocinante reschedule meetings.ics --select=a1,b2 --prompt="tomorrow morning"
  rocinante reschedule --select=a1 --priority=deadline --start=today --end=friday
  rocinante reschedule week.json --mode=week --output=week-new.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			events, err := loadEvents(a.calendarPath(args))
			if err != nil {
				return err
			}

			dateRange, err := dateutil.NewDateRange(startDate, endDate, now)
			if err != nil {
				return err
			}
			if endDate == "" {
				dateRange.End = dateRange.Start.AddDate(0, 0, a.config.Schedule.HorizonDays)
			}

			overlay := a.config.Overlay()
			overlay.DateRange = &dateRange
			overlay.AI = &scheduler.AIPreferences{
				Prompt:      promptText,
				Priority:    scheduler.Policy(priority),
				SelectedIDs: selectIDs,
			}
			if cmd.Flags().Changed("mode") {
				m := scheduler.Mode(mode)
				overlay.Mode = &m
			}
			if cmd.Flags().Changed("slot") {
				overlay.SlotDuration = &slotMinutes
			}
			if cmd.Flags().Changed("break") {
				overlay.BreakBetweenEvents = &breakMinutes
			}
			if cmd.Flags().Changed("business-start") || cmd.Flags().Changed("business-end") {
				hours := scheduler.BusinessHours{StartHour: businessStart, EndHour: businessEnd}
				overlay.BusinessHours = &hours
			}

			engine := scheduler.New()
			result, err := engine.Reschedule(context.Background(), events, overlay)
			if err != nil {
				return fmt.Errorf("rescheduling: %w", err)
			}

			printDiff(events, result)

			if output != "" {
				if err := saveEvents(output, result); err != nil {
					return err
				}
				fmt.Printf("\nWrote %d events to %s\n", len(result), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&promptText, "prompt", "", `Free-text instruction, e.g. "tomorrow morning, back-to-back"`)
	cmd.Flags().StringSliceVar(&selectIDs, "select", nil, "Event ids to reschedule (default: all events)")
	cmd.Flags().StringVar(&priority, "priority", "duration", "Ordering policy: deadline, duration or custom")
	cmd.Flags().StringVar(&startDate, "start", "", "Search range start (YYYY-MM-DD or relative, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "Search range end (defaults to start + horizon_days)")
	cmd.Flags().StringVar(&mode, "mode", "", `Search mode: "day" or "week"`)
	cmd.Flags().IntVar(&slotMinutes, "slot", 0, "Slot length in minutes")
	cmd.Flags().IntVar(&breakMinutes, "break", 0, "Break between events in minutes")
	cmd.Flags().IntVar(&businessStart, "business-start", 9, "Business hours start (0-23)")
	cmd.Flags().IntVar(&businessEnd, "business-end", 17, "Business hours end (0-23)")
	cmd.Flags().StringVar(&output, "output", "", "Write the new calendar to this file")

	return cmd
}

// printDiff prints the rescheduled calendar and a summary of what moved.
func printDiff(before, after []event.Event) {
	printEvents(after)

	var moved, kept int
	fmt.Println()
	for _, ev := range after {
		if !ev.Extended.Rescheduled {
			continue
		}
		moved++
		if ev.Extended.OriginalStart != nil && ev.Extended.OriginalEnd != nil {
			fmt.Printf("%s %s: %s -> %s\n",
				formatMoved("moved"),
				ev.Title,
				formatMuted(event.FormatTimeRange(*ev.Extended.OriginalStart, *ev.Extended.OriginalEnd)),
				event.FormatTimeRange(ev.Start, ev.End),
			)
		}
	}

	for _, ev := range after {
		if ev.Extended.Rescheduled {
			continue
		}
		for _, old := range before {
			if old.ID == ev.ID && old.Start.Equal(ev.Start) && old.End.Equal(ev.End) {
				kept++
				break
			}
		}
	}

	if moved == 0 {
		fmt.Println(formatWarn("no events were moved"))
	} else {
		fmt.Printf("%d moved, %d unchanged\n", moved, kept)
	}
}
