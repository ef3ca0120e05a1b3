package scheduler

import (
	"time"

	"github.com/javiermolinar/rocinante/internal/event"
	"github.com/javiermolinar/rocinante/internal/prompt"
)

// Fits reports whether a slot may host an event of the given duration
// without colliding with any of the existing events.
//
// The placement is rejected when it would start before the effective start
// hour or end at or past the effective end hour (hour granularity, matching
// the slot generator's truncation). The earlier variant of this check read
// the raw business hours here, which made a prompt window like "evening"
// unplaceable; the effective hours are used on both sides now.
//
// The occupied interval is expanded by the configured break on both ends,
// and the expanded interval must not overlap any existing event under the
// symmetric four-case test in event.Overlaps. The legacy three-case check
// missed an existing event fully containing the expanded interval; that
// variant is deliberately not reproduced.
func Fits(slot event.TimeSlot, duration time.Duration, existing []event.Event, prefs Preferences, hint prompt.Parsed) bool {
	startHour, endHour := effectiveHours(prefs, hint)

	end := slot.Start.Add(duration)
	if slot.Start.Hour() < startHour || end.Hour() >= endHour {
		return false
	}

	breakPad := time.Duration(prefs.BreakBetweenEvents) * time.Minute
	paddedStart := slot.Start.Add(-breakPad)
	paddedEnd := end.Add(breakPad)

	for _, ev := range existing {
		if event.Overlaps(paddedStart, paddedEnd, ev.Start, ev.End) {
			return false
		}
	}
	return true
}
