package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/rocinante/internal/dateutil"
)

// Validation errors. Malformed preferences fail fast, before any slot
// search begins: the search loop would otherwise be empty or never
// terminate.
var (
	ErrInvalidSlotDuration  = errors.New("slot duration must be positive")
	ErrNegativeBreak        = errors.New("break between events cannot be negative")
	ErrInvalidBusinessHours = errors.New("business hours end must be after start")
	ErrInvalidDateRange     = errors.New("date range end must not be before start")
	ErrInvalidMode          = errors.New(`mode must be "day" or "week"`)
)

// Mode controls how far the engine searches for free slots.
type Mode string

// Mode values. Day mode restricts the candidate search to the first day of
// the date range; week mode walks the whole range.
const (
	ModeDay  Mode = "day"
	ModeWeek Mode = "week"
)

// Policy selects how events are ordered before placement.
type Policy string

// Policy values. Anything other than PolicyDeadline, including
// PolicyCustom and unrecognized strings, orders by descending duration.
const (
	PolicyDeadline Policy = "deadline"
	PolicyDuration Policy = "duration"
	PolicyCustom   Policy = "custom"
)

// BusinessHours is the daily scheduling window in whole hours (0-23).
type BusinessHours struct {
	StartHour int
	EndHour   int
}

// EnergyLevels rates the user's energy per part of day.
type EnergyLevels struct {
	Morning   int
	Afternoon int
	Evening   int
}

// Workload holds workload hints collected from the preferences form.
// These fields are accepted but not consulted by the matching engine.
type Workload struct {
	MaxHoursPerDay     int
	PreferredTimeOfDay string
	EnergyLevels       *EnergyLevels
}

// RequiredBreaks asks for a break of Duration minutes after every After
// minutes of meetings.
type RequiredBreaks struct {
	After    int
	Duration int
}

// BlockedTime marks a recurring window (Day is a weekday, hours 0-23)
// that should never host events.
type BlockedTime struct {
	Day   time.Weekday
	Start int
	End   int
}

// Constraints holds additional constraint hints from the preferences form.
// Like Workload, these are accepted but not consulted by the matching
// engine.
type Constraints struct {
	MaxConsecutiveMeetings int
	RequiredBreaks         *RequiredBreaks
	BlockedTimes           []BlockedTime
}

// AIPreferences carries the user's rescheduling request: the free-text
// prompt, the ordering policy, and the explicit set of event ids selected
// for rescheduling. An empty SelectedIDs set means every event is a
// candidate.
type AIPreferences struct {
	Prompt      string
	Priority    Policy
	CustomOrder []string
	SelectedIDs []string
}

// Preferences is the complete configuration for one scheduling pass.
// Obtain one by applying an Overlay to Default; the engine validates it
// before searching.
type Preferences struct {
	BusinessHours      BusinessHours
	SlotDuration       int // minutes, > 0
	BreakBetweenEvents int // minutes, >= 0
	Mode               Mode
	DateRange          dateutil.DateRange
	Workload           *Workload
	Constraints        *Constraints
	AI                 AIPreferences
}

// Default returns the baseline preferences: business hours 9-17, 30-minute
// slots, 15-minute breaks, day mode, and a 7-day horizon starting on the
// day of now. Each call builds a fresh value so concurrent scheduling
// passes with different preferences cannot interfere.
func Default(now time.Time) Preferences {
	today := dateutil.TruncateToDay(now)
	return Preferences{
		BusinessHours:      BusinessHours{StartHour: 9, EndHour: 17},
		SlotDuration:       30,
		BreakBetweenEvents: 15,
		Mode:               ModeDay,
		DateRange:          dateutil.DateRange{Start: today, End: today.AddDate(0, 0, 7)},
	}
}

// Overlay is a partial preference set supplied by the caller. Nil sections
// fall back to the defaults wholesale; a present section replaces the
// default section entirely. This mirrors the shallow merge the calendar UI
// has always done, so callers that set BusinessHours must set both hours.
type Overlay struct {
	BusinessHours      *BusinessHours
	SlotDuration       *int
	BreakBetweenEvents *int
	Mode               *Mode
	DateRange          *dateutil.DateRange
	Workload           *Workload
	Constraints        *Constraints
	AI                 *AIPreferences
}

// apply overlays o on top of base and returns the merged preferences.
func (o Overlay) apply(base Preferences) Preferences {
	merged := base
	if o.BusinessHours != nil {
		merged.BusinessHours = *o.BusinessHours
	}
	if o.SlotDuration != nil {
		merged.SlotDuration = *o.SlotDuration
	}
	if o.BreakBetweenEvents != nil {
		merged.BreakBetweenEvents = *o.BreakBetweenEvents
	}
	if o.Mode != nil {
		merged.Mode = *o.Mode
	}
	if o.DateRange != nil {
		merged.DateRange = *o.DateRange
	}
	if o.Workload != nil {
		merged.Workload = o.Workload
	}
	if o.Constraints != nil {
		merged.Constraints = o.Constraints
	}
	if o.AI != nil {
		merged.AI = *o.AI
	}
	return merged
}

// Validate checks that a preference set can drive a terminating slot
// search.
func (p Preferences) Validate() error {
	if p.SlotDuration <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSlotDuration, p.SlotDuration)
	}
	if p.BreakBetweenEvents < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeBreak, p.BreakBetweenEvents)
	}
	if p.BusinessHours.StartHour < 0 || p.BusinessHours.EndHour > 24 ||
		p.BusinessHours.StartHour >= p.BusinessHours.EndHour {
		return fmt.Errorf("%w: got %d-%d", ErrInvalidBusinessHours,
			p.BusinessHours.StartHour, p.BusinessHours.EndHour)
	}
	if p.Mode != ModeDay && p.Mode != ModeWeek {
		return fmt.Errorf("%w: got %q", ErrInvalidMode, p.Mode)
	}
	if p.DateRange.End.Before(p.DateRange.Start) {
		return fmt.Errorf("%w: %s after %s", ErrInvalidDateRange,
			p.DateRange.Start.Format("2006-01-02"), p.DateRange.End.Format("2006-01-02"))
	}
	return nil
}
