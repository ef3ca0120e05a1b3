package scheduler

import (
	"testing"
	"time"

	"github.com/javiermolinar/rocinante/internal/prompt"
)

// Monday, January 6, 2025.
var testDay = time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local)

func hm(h, m int) time.Time {
	return time.Date(2025, 1, 6, h, m, 0, 0, time.Local)
}

func testPrefs() Preferences {
	return Default(testDay)
}

func TestSlots_DefaultDay(t *testing.T) {
	slots := Slots(testDay, testPrefs(), prompt.Parsed{})

	// 9-17 in 30-minute steps.
	if len(slots) != 16 {
		t.Fatalf("got %d slots, want 16", len(slots))
	}
	if !slots[0].Start.Equal(hm(9, 0)) || !slots[0].End.Equal(hm(9, 30)) {
		t.Errorf("first slot: got %v-%v, want 09:00-09:30", slots[0].Start, slots[0].End)
	}
	if !slots[15].Start.Equal(hm(16, 30)) || !slots[15].End.Equal(hm(17, 0)) {
		t.Errorf("last slot: got %v-%v, want 16:30-17:00", slots[15].Start, slots[15].End)
	}

	for i := 1; i < len(slots); i++ {
		if !slots[i].Start.Equal(slots[i-1].End) {
			t.Errorf("slot %d does not start where slot %d ends", i, i-1)
		}
	}
}

func TestSlots_HourTruncation(t *testing.T) {
	// 45-minute slots in a 9-10 window: the cursor at 09:45 still has hour 9,
	// so a slot reaching past the end hour is emitted. The loop condition is
	// on the hour only; this truncation behavior is deliberate.
	prefs := testPrefs()
	prefs.BusinessHours = BusinessHours{StartHour: 9, EndHour: 10}
	prefs.SlotDuration = 45

	slots := Slots(testDay, prefs, prompt.Parsed{})
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	if !slots[1].Start.Equal(hm(9, 45)) || !slots[1].End.Equal(hm(10, 30)) {
		t.Errorf("second slot: got %v-%v, want 09:45-10:30", slots[1].Start, slots[1].End)
	}
}

func TestSlots_HintOverridesBusinessHours(t *testing.T) {
	hint := prompt.Parse("in the evening", testDay)

	slots := Slots(testDay, testPrefs(), hint)
	// 17-21 in 30-minute steps.
	if len(slots) != 8 {
		t.Fatalf("got %d slots, want 8", len(slots))
	}
	if !slots[0].Start.Equal(hm(17, 0)) {
		t.Errorf("first slot: got %v, want 17:00", slots[0].Start)
	}
	if !slots[7].End.Equal(hm(21, 0)) {
		t.Errorf("last slot end: got %v, want 21:00", slots[7].End)
	}
}

func TestSlots_NeverCrossMidnight(t *testing.T) {
	// 4-hour slots in a 9-23 window would wrap the cursor's hour past
	// midnight and never reach 23; the sequence must still be finite and
	// stay on the requested day.
	prefs := testPrefs()
	prefs.BusinessHours = BusinessHours{StartHour: 9, EndHour: 23}
	prefs.SlotDuration = 240

	slots := Slots(testDay, prefs, prompt.Parsed{})
	if len(slots) != 4 {
		t.Fatalf("got %d slots, want 4", len(slots))
	}
	for _, s := range slots {
		if s.Start.Day() != testDay.Day() {
			t.Errorf("slot %v starts outside the requested day", s.Start)
		}
	}
}

func TestSlots_Restartable(t *testing.T) {
	first := Slots(testDay, testPrefs(), prompt.Parsed{})
	second := Slots(testDay, testPrefs(), prompt.Parsed{})

	if len(first) != len(second) {
		t.Fatalf("got %d and %d slots across calls", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) {
			t.Errorf("slot %d differs across calls", i)
		}
	}
}
