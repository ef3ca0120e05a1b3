// Package dateutil provides calendar-date parsing and range utilities.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DateRange is an inclusive range of calendar days.
// Start and End are expected to be truncated to midnight.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a DateRange from two date strings.
// start can be empty (defaults to the day of relativeTo) or any form
// ParseRelative accepts. end can be empty (defaults to start) or any form
// ParseRelative accepts.
func NewDateRange(start, end string, relativeTo time.Time) (DateRange, error) {
	s, err := ParseRelative(start, relativeTo)
	if err != nil {
		return DateRange{}, err
	}

	e := s
	if end != "" {
		e, err = ParseRelative(end, relativeTo)
		if err != nil {
			return DateRange{}, err
		}
	}

	if e.Before(s) {
		return DateRange{}, ErrEndDateBeforeStart
	}

	return DateRange{Start: s, End: e}, nil
}

// Days returns the number of calendar days the range covers, inclusive.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Contains reports whether the day of t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	day := TruncateToDay(t)
	return !day.Before(r.Start) && !day.After(r.End)
}

// ParseRelative parses a date string that can be:
//   - empty or "today": the day of relativeTo
//   - "tomorrow"
//   - "next-week": same weekday, seven days out
//   - a weekday name ("monday".."sunday"): the next occurrence, always future
//   - "next-monday" .. "next-sunday": same as the bare weekday name
//   - an absolute date in YYYY-MM-DD format
//
// All inputs are case-insensitive. The result is truncated to midnight.
func ParseRelative(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "next-week":
		return today.AddDate(0, 0, 7), nil
	}

	if name, ok := strings.CutPrefix(input, "next-"); ok {
		if target, found := weekdayMap[name]; found {
			return NextWeekday(today, target), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}

	if target, ok := weekdayMap[input]; ok {
		return NextWeekday(today, target), nil
	}

	result, err := time.ParseInLocation("2006-01-02", input, relativeTo.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}

// NextWeekday returns the next occurrence of target strictly after today.
// If today already is the target weekday, the result is one week out.
func NextWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := int(target) - int(today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}

// TruncateToDay returns t with the time component set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
