package ics

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// mkCalendar joins iCalendar content lines with the CRLF line endings the
// format requires.
func mkCalendar(lines ...string) []byte {
	all := append([]string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//test//EN"}, lines...)
	all = append(all, "END:VCALENDAR")
	return []byte(strings.Join(all, "\r\n") + "\r\n")
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(nil)
	if !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("got %v, want ErrEmptyPayload", err)
	}
}

func TestParse_TimedEvent(t *testing.T) {
	body := mkCalendar(
		"BEGIN:VEVENT",
		"UID:abc-123",
		"DTSTAMP:20250106T080000Z",
		"DTSTART:20250106T090000Z",
		"DTEND:20250106T100000Z",
		"SUMMARY:Deep work",
		"END:VEVENT",
	)

	events, err := Parse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	ev := events[0]
	if ev.ID != "abc-123" {
		t.Errorf("got id %q, want %q", ev.ID, "abc-123")
	}
	if ev.Title != "Deep work" {
		t.Errorf("got title %q, want %q", ev.Title, "Deep work")
	}
	wantStart := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	if !ev.Start.Equal(wantStart) {
		t.Errorf("got start %v, want %v", ev.Start, wantStart)
	}
	if ev.Duration() != time.Hour {
		t.Errorf("got duration %v, want 1h", ev.Duration())
	}
}

func TestParse_SkipsNonSchedulableEntries(t *testing.T) {
	body := mkCalendar(
		"BEGIN:VEVENT",
		"UID:recurring",
		"DTSTAMP:20250106T080000Z",
		"DTSTART:20250106T090000Z",
		"DTEND:20250106T100000Z",
		"RRULE:FREQ=WEEKLY",
		"SUMMARY:Standup",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:allday",
		"DTSTAMP:20250106T080000Z",
		"DTSTART;VALUE=DATE:20250106",
		"DTEND;VALUE=DATE:20250107",
		"SUMMARY:Holiday",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:keep",
		"DTSTAMP:20250106T080000Z",
		"DTSTART:20250106T140000Z",
		"DTEND:20250106T150000Z",
		"SUMMARY:Review",
		"END:VEVENT",
	)

	events, err := Parse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want only the plain timed one", len(events))
	}
	if events[0].ID != "keep" {
		t.Errorf("got id %q, want %q", events[0].ID, "keep")
	}
}

func TestParse_MissingUIDAndSummary(t *testing.T) {
	body := mkCalendar(
		"BEGIN:VEVENT",
		"UID:",
		"DTSTAMP:20250106T080000Z",
		"DTSTART:20250106T090000Z",
		"DTEND:20250106T093000Z",
		"END:VEVENT",
	)

	events, err := Parse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].ID == "" {
		t.Error("expected a generated id for a VEVENT without a UID")
	}
	if events[0].Title != "(untitled)" {
		t.Errorf("got title %q, want %q", events[0].Title, "(untitled)")
	}
}

func TestParse_SkipsInvalidTiming(t *testing.T) {
	body := mkCalendar(
		"BEGIN:VEVENT",
		"UID:no-end",
		"DTSTAMP:20250106T080000Z",
		"DTSTART:20250106T090000Z",
		"SUMMARY:Dangling",
		"END:VEVENT",
	)

	events, err := Parse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	body := mkCalendar(
		"BEGIN:VEVENT",
		"UID:rt-1",
		"DTSTAMP:20250106T080000Z",
		"DTSTART:20250106T090000Z",
		"DTEND:20250106T103000Z",
		"SUMMARY:Writing",
		"END:VEVENT",
	)
	original, err := Parse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rendered, err := Render(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := Parse(rendered)
	if err != nil {
		t.Fatalf("reparsing rendered output: %v", err)
	}

	if len(got) != len(original) {
		t.Fatalf("got %d events, want %d", len(got), len(original))
	}
	for i := range original {
		if got[i].ID != original[i].ID || got[i].Title != original[i].Title {
			t.Errorf("event %d: got %q/%q, want %q/%q",
				i, got[i].ID, got[i].Title, original[i].ID, original[i].Title)
		}
		if !got[i].Start.Equal(original[i].Start) || !got[i].End.Equal(original[i].End) {
			t.Errorf("event %d: timing changed across the round trip", i)
		}
	}
}
