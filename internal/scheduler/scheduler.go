// Package scheduler implements the automatic rescheduling engine: it
// re-places a chosen subset of calendar events into free slots according to
// the user's preferences and an optional free-text instruction.
//
// The engine is a greedy first-fit placer, not an optimizer. Each call
// operates on its own copied working set over an immutable snapshot of
// events and preferences, so there is no shared state across invocations;
// overlapping calls on the same calendar must be serialized by the caller.
package scheduler

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/javiermolinar/rocinante/internal/dateutil"
	"github.com/javiermolinar/rocinante/internal/event"
	"github.com/javiermolinar/rocinante/internal/prompt"
)

// Engine places selected events into free slots.
type Engine struct {
	now func() time.Time
}

// New creates an Engine using the system clock.
func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock creates an Engine with a fixed clock. Intended for tests and
// for replaying a pass deterministically.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Reschedule re-places the selected events and returns a full replacement
// sequence. The input slice is never mutated; callers re-render from the
// returned slice and may diff Rescheduled flags to highlight moves.
//
// Events whose id appears in the overlay's AI SelectedIDs are candidates
// for moving; with no explicit selection every event is a candidate. The
// complement never moves and always acts as an obstacle. A candidate that
// fits nowhere inside the date range is retained at its original time
// unmarked; that is a soft failure, not an error. Reschedule only fails on
// malformed preferences or context cancellation, and on failure the caller
// keeps its prior event list: there is no partially applied result.
func (e *Engine) Reschedule(ctx context.Context, events []event.Event, overlay Overlay) ([]event.Event, error) {
	prefs := overlay.apply(Default(e.now()))
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	// No selection and no instruction means there is nothing the user asked
	// to change: hand back the calendar as-is.
	if len(prefs.AI.SelectedIDs) == 0 && prefs.AI.Prompt == "" {
		return slices.Clone(events), nil
	}

	var hint prompt.Parsed
	if prefs.AI.Prompt != "" {
		hint = prompt.Parse(prefs.AI.Prompt, e.now())
	}

	candidates, fixed := partition(events, prefs.AI.SelectedIDs)
	ordered := order(candidates, prefs.AI.Priority)

	firstDay := dateutil.TruncateToDay(prefs.DateRange.Start)
	lastDay := dateutil.TruncateToDay(prefs.DateRange.End)
	if prefs.Mode == ModeDay {
		lastDay = firstDay
	}

	// processed accumulates moved and retained candidates alike; both block
	// later placements, together with every fixed event.
	processed := make([]event.Event, 0, len(ordered))
	for _, ev := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		obstacles := make([]event.Event, 0, len(processed)+len(fixed))
		obstacles = append(obstacles, processed...)
		obstacles = append(obstacles, fixed...)

		moved, ok := place(ev, firstDay, lastDay, obstacles, prefs, hint)
		if ok {
			processed = append(processed, moved)
		} else {
			processed = append(processed, ev)
		}
	}

	out := make([]event.Event, 0, len(processed)+len(fixed))
	out = append(out, processed...)
	out = append(out, fixed...)
	return out, nil
}

// partition splits events into rescheduling candidates and fixed events.
// An empty selection selects everything.
func partition(events []event.Event, selectedIDs []string) (candidates, fixed []event.Event) {
	if len(selectedIDs) == 0 {
		return slices.Clone(events), nil
	}

	selected := make(map[string]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = struct{}{}
	}

	for _, ev := range events {
		if _, ok := selected[ev.ID]; ok {
			candidates = append(candidates, ev)
		} else {
			fixed = append(fixed, ev)
		}
	}
	return candidates, fixed
}

// order sorts candidates by placement policy without touching the input
// slice. Deadline policy goes earliest deadline first, events without one
// last. Every other policy, custom and unrecognized ones included, goes
// longest duration first so the hardest-to-place events get the emptiest
// calendar.
func order(candidates []event.Event, policy Policy) []event.Event {
	ordered := slices.Clone(candidates)
	if policy == PolicyDeadline {
		slices.SortStableFunc(ordered, func(a, b event.Event) int {
			return compareDeadline(a.Extended.Deadline, b.Extended.Deadline)
		})
		return ordered
	}
	slices.SortStableFunc(ordered, func(a, b event.Event) int {
		return cmp.Compare(b.Duration(), a.Duration())
	})
	return ordered
}

// compareDeadline orders two optional deadlines ascending, treating a
// missing deadline as infinitely late.
func compareDeadline(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}

// place walks candidate days from firstDay to lastDay inclusive and commits
// ev into the first slot that fits. It reports whether a fit was found.
func place(ev event.Event, firstDay, lastDay time.Time, obstacles []event.Event, prefs Preferences, hint prompt.Parsed) (event.Event, bool) {
	duration := ev.Duration()
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		for _, slot := range Slots(day, prefs, hint) {
			if Fits(slot, duration, obstacles, prefs, hint) {
				return ev.MovedTo(slot.Start), true
			}
		}
	}
	return event.Event{}, false
}
