// Package event defines the calendar domain types for rocinante.
package event

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors.
var (
	ErrEmptyID        = errors.New("event id cannot be empty")
	ErrEmptyTitle     = errors.New("event title cannot be empty")
	ErrEndBeforeStart = errors.New("event end must be after start")
)

// Extended holds the optional attributes attached to an event. The JSON
// shape matches the calendar widget's extendedProps payload, so event lists
// can round-trip through the UI layer unchanged.
type Extended struct {
	// Time is the display label for the event's range, e.g. "09:00 AM - 10:00 AM".
	Time string `json:"time,omitempty"`
	// Deadline is the instant the event must be finished by, if any.
	Deadline *time.Time `json:"deadline,omitempty"`
	// Rescheduled is set when the engine has moved the event.
	Rescheduled bool `json:"rescheduled,omitempty"`
	// OriginalStart and OriginalEnd record the event's timing before its
	// first reschedule. They are written once and never overwritten.
	OriginalStart *time.Time `json:"originalStart,omitempty"`
	OriginalEnd   *time.Time `json:"originalEnd,omitempty"`
	// Priority is an optional numeric priority supplied by the UI.
	Priority *int `json:"priority,omitempty"`
}

// Event represents a single calendar entry. Events are passed around by
// value; the scheduling engine never mutates a caller's slice in place.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Extended Extended  `json:"extendedProps"`
}

// New creates an Event with validation.
func New(id, title string, start, end time.Time) (Event, error) {
	if id == "" {
		return Event{}, ErrEmptyID
	}
	if title == "" {
		return Event{}, ErrEmptyTitle
	}
	if !end.After(start) {
		return Event{}, fmt.Errorf("%w: start %v, end %v", ErrEndBeforeStart, start, end)
	}
	return Event{
		ID:       id,
		Title:    title,
		Start:    start,
		End:      end,
		Extended: Extended{Time: FormatTimeRange(start, end)},
	}, nil
}

// Duration returns the event's length.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// OverlapsWith reports whether the half-open intervals [e.Start, e.End) and
// [other.Start, other.End) intersect.
func (e Event) OverlapsWith(other Event) bool {
	return Overlaps(e.Start, e.End, other.Start, other.End)
}

// MovedTo returns a copy of e placed at [start, start+duration). The copy is
// stamped as rescheduled, keeps its first-ever original timing, and gets a
// fresh display label.
func (e Event) MovedTo(start time.Time) Event {
	duration := e.Duration()
	moved := e
	moved.Start = start
	moved.End = start.Add(duration)
	moved.Extended.Rescheduled = true
	if moved.Extended.OriginalStart == nil {
		origStart, origEnd := e.Start, e.End
		moved.Extended.OriginalStart = &origStart
		moved.Extended.OriginalEnd = &origEnd
	}
	moved.Extended.Time = FormatTimeRange(moved.Start, moved.End)
	return moved
}

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// intersect. This is the symmetric four-case test: it also catches an
// interval fully contained inside the other.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// FormatTimeRange renders a 12-hour clock display label for a time range,
// matching the calendar widget's own formatting.
func FormatTimeRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("03:04 PM"), end.Format("03:04 PM"))
}

// TimeSlot is a candidate placement produced by the slot generator. Slots
// are transient: created and discarded within one scheduling pass.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}
