// Package ics converts between iCalendar payloads and rocinante events.
// It covers plain timed VEVENTs only: recurrence rules, overrides, and
// all-day entries are outside what the rescheduling engine works with and
// are skipped on import.
package ics

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/javiermolinar/rocinante/internal/event"
)

// ErrEmptyPayload is returned when the ICS body contains no data.
var ErrEmptyPayload = errors.New("empty ICS payload")

const prodID = "-//rocinante//calendar//EN"

// Parse reads a VCALENDAR payload into a list of events. VEVENTs without a
// usable start/end, all-day entries, and recurring entries are skipped
// rather than failing the whole import. A VEVENT without a UID gets a
// generated one so the engine has a stable identifier to select by.
func Parse(body []byte) ([]event.Event, error) {
	if len(body) == 0 {
		return nil, ErrEmptyPayload
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	var events []event.Event
	for _, ve := range cal.Events() {
		ev, ok := parseVEvent(ve)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseVEvent(ve *ical.VEvent) (event.Event, bool) {
	// Skip recurring entries; the engine schedules concrete instances only.
	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		return event.Event{}, false
	}

	// All-day entries carry a DATE value instead of a DATE-TIME.
	if p := ve.GetProperty(ical.ComponentPropertyDtStart); p != nil {
		if params := p.ICalParameters; params != nil {
			if vs, ok := params["VALUE"]; ok && len(vs) > 0 && vs[0] == "DATE" {
				return event.Event{}, false
			}
		}
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return event.Event{}, false
	}
	end, err := ve.GetEndAt()
	if err != nil || !end.After(start) {
		return event.Event{}, false
	}

	id := ""
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		id = p.Value
	}
	if id == "" {
		id = uuid.NewString()
	}

	title := "(untitled)"
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil && p.Value != "" {
		title = p.Value
	}

	ev, err := event.New(id, title, start, end)
	if err != nil {
		return event.Event{}, false
	}
	return ev, true
}

// Render serializes events into a VCALENDAR payload.
func Render(events []event.Event) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetMethod(ical.MethodPublish)

	now := time.Now()
	for _, ev := range events {
		ve := cal.AddEvent(ev.ID)
		ve.SetDtStampTime(now)
		ve.SetStartAt(ev.Start)
		ve.SetEndAt(ev.End)
		ve.SetSummary(ev.Title)
	}

	return []byte(cal.Serialize()), nil
}
