package scheduler

import (
	"time"

	"github.com/javiermolinar/rocinante/internal/dateutil"
	"github.com/javiermolinar/rocinante/internal/event"
	"github.com/javiermolinar/rocinante/internal/prompt"
)

// effectiveHours returns the scheduling window for one pass: the prompt's
// time-of-day hint when present, the business hours otherwise.
func effectiveHours(prefs Preferences, hint prompt.Parsed) (startHour, endHour int) {
	if hint.TimeRange != nil {
		return hint.TimeRange.Start, hint.TimeRange.End
	}
	return prefs.BusinessHours.StartHour, prefs.BusinessHours.EndHour
}

// Slots generates the ordered candidate slots for one day, earliest first.
// The cursor starts at the effective start hour and advances by the slot
// duration until its hour-of-day reaches the effective end hour. The loop
// condition is on the hour only, so a window ending off the hour grid is
// truncated to the hour boundary; the last partial hour goes unused. That
// truncation is load-bearing for compatibility and must not be "fixed".
//
// Slots is a pure function of its inputs and never crosses midnight: a slot
// duration larger than the remaining day simply ends the sequence.
func Slots(day time.Time, prefs Preferences, hint prompt.Parsed) []event.TimeSlot {
	startHour, endHour := effectiveHours(prefs, hint)

	base := dateutil.TruncateToDay(day)
	nextMidnight := base.AddDate(0, 0, 1)
	cursor := base.Add(time.Duration(startHour) * time.Hour)

	var slots []event.TimeSlot
	for cursor.Hour() < endHour && cursor.Before(nextMidnight) {
		start := cursor
		cursor = cursor.Add(time.Duration(prefs.SlotDuration) * time.Minute)
		slots = append(slots, event.TimeSlot{Start: start, End: cursor})
	}
	return slots
}
