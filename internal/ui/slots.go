package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocinante/internal/dateutil"
	"github.com/javiermolinar/rocinante/internal/event"
	"github.com/javiermolinar/rocinante/internal/prompt"
	"github.com/javiermolinar/rocinante/internal/scheduler"
)

func (a *App) slotsCmd() *cobra.Command {
	var (
		date       string
		promptText string
		duration   int
		file       string
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List free slots for a day",
		Long: `List the candidate slots of a day that could host an event.

Slots are generated from the configured business hours and slot length.
A prompt like "in the evening" narrows the time window for this listing
only. When a calendar file is given, slots colliding with its events
(including the configured break padding) are filtered out.`,
		Example: `  rocinante slots --date=tomorrow
  rocinante slots --date=2025-03-10 --duration=60 --calendar=meetings.ics
  rocinante slots --prompt="late afternoon"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			now := time.Now()

			day, err := dateutil.ParseRelative(date, now)
			if err != nil {
				return err
			}

			prefs := a.preferences(now)
			if duration <= 0 {
				duration = prefs.SlotDuration
			}

			var existing []event.Event
			if file != "" {
				existing, err = loadEvents(file)
				if err != nil {
					return err
				}
			}

			hint := prompt.Parse(promptText, now)

			var free int
			need := time.Duration(duration) * time.Minute
			fmt.Printf("%s\n", formatHeader(fmt.Sprintf("Free %d-minute placements on %s", duration, day.Format("2006-01-02"))))
			for _, slot := range scheduler.Slots(day, prefs, hint) {
				if !scheduler.Fits(slot, need, existing, prefs, hint) {
					continue
				}
				free++
				fmt.Printf("  %s\n", formatSlot(event.FormatTimeRange(slot.Start, slot.Start.Add(need))))
			}

			if free == 0 {
				fmt.Println(formatWarn("  no free placements inside the scheduling window"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to inspect (YYYY-MM-DD or relative, defaults to today)")
	cmd.Flags().StringVar(&promptText, "prompt", "", "Free-text instruction narrowing the time window")
	cmd.Flags().IntVar(&duration, "duration", 0, "Event duration in minutes (defaults to the slot length)")
	cmd.Flags().StringVar(&file, "calendar", "", "Calendar file whose events block slots")

	return cmd
}

// preferences builds the complete preference set from the configured
// defaults for one-off commands.
func (a *App) preferences(now time.Time) scheduler.Preferences {
	prefs := scheduler.Default(now)
	prefs.BusinessHours = scheduler.BusinessHours{
		StartHour: a.config.Schedule.BusinessStartHour,
		EndHour:   a.config.Schedule.BusinessEndHour,
	}
	prefs.SlotDuration = a.config.Schedule.SlotMinutes
	prefs.BreakBetweenEvents = a.config.Schedule.BreakMinutes
	prefs.Mode = scheduler.Mode(a.config.Schedule.Mode)
	return prefs
}
