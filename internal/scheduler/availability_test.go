package scheduler

import (
	"testing"
	"time"

	"github.com/javiermolinar/rocinante/internal/event"
	"github.com/javiermolinar/rocinante/internal/prompt"
)

func mkEvent(t *testing.T, id string, start, end time.Time) event.Event {
	t.Helper()
	ev, err := event.New(id, "Event "+id, start, end)
	if err != nil {
		t.Fatalf("creating event %s: %v", id, err)
	}
	return ev
}

func slotAt(start time.Time, minutes int) event.TimeSlot {
	return event.TimeSlot{Start: start, End: start.Add(time.Duration(minutes) * time.Minute)}
}

func TestFits_BusinessHours(t *testing.T) {
	prefs := testPrefs() // 9-17, break 15

	tests := []struct {
		name     string
		start    time.Time
		duration time.Duration
		want     bool
	}{
		{"inside window", hm(9, 0), time.Hour, true},
		{"starts before window", hm(8, 0), time.Hour, false},
		{"ends exactly at window end", hm(16, 0), time.Hour, false},
		{"ends past window end", hm(16, 30), time.Hour, false},
		{"ends just inside window", hm(15, 30), time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fits(slotAt(tt.start, 30), tt.duration, nil, prefs, prompt.Parsed{})
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFits_HintWindowAppliesToBothSides(t *testing.T) {
	// The prompt window must govern the containment check as well as slot
	// generation; an evening placement is valid even though it sits outside
	// the 9-17 business hours.
	prefs := testPrefs()
	hint := prompt.Parse("in the evening", testDay)

	if !Fits(slotAt(hm(17, 0), 30), time.Hour, nil, prefs, hint) {
		t.Error("expected 17:00 to fit inside the evening window")
	}
	if Fits(slotAt(hm(9, 0), 30), time.Hour, nil, prefs, hint) {
		t.Error("expected 09:00 to be rejected when the evening window is active")
	}
}

func TestFits_BreakExpansion(t *testing.T) {
	prefs := testPrefs() // break 15
	existing := []event.Event{mkEvent(t, "busy", hm(11, 0), hm(12, 0))}

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"same slot", hm(11, 0), false},
		{"immediately after, inside break padding", hm(12, 0), false},
		{"first start clearing the break", hm(12, 15), true},
		{"before, clear of the padding", hm(9, 0), true},
		{"before, ends inside break padding", hm(10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fits(slotAt(tt.start, 30), time.Hour, existing, prefs, prompt.Parsed{})
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFits_OverlapCases(t *testing.T) {
	prefs := testPrefs()
	prefs.BreakBetweenEvents = 0
	existing := []event.Event{mkEvent(t, "busy", hm(11, 0), hm(13, 0))}

	tests := []struct {
		name     string
		start    time.Time
		duration time.Duration
		want     bool
	}{
		{"candidate start inside event", hm(12, 0), time.Hour, false},
		{"candidate end inside event", hm(10, 30), time.Hour, false},
		{"candidate contains event", hm(10, 0), 4 * time.Hour, false},
		// The case the narrower legacy check treated asymmetrically: the
		// existing event fully contains the candidate interval.
		{"event contains candidate", hm(11, 30), time.Hour, false},
		{"adjacent before", hm(10, 0), time.Hour, true},
		{"adjacent after", hm(13, 0), time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fits(slotAt(tt.start, 30), tt.duration, existing, prefs, prompt.Parsed{})
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFits_ZeroBreakAdjacency(t *testing.T) {
	// With no break configured, half-open intervals let events sit
	// back-to-back.
	prefs := testPrefs()
	prefs.BreakBetweenEvents = 0
	existing := []event.Event{mkEvent(t, "busy", hm(9, 0), hm(10, 0))}

	if !Fits(slotAt(hm(10, 0), 30), time.Hour, existing, prefs, prompt.Parsed{}) {
		t.Error("expected an adjacent placement to fit with zero break")
	}
}
