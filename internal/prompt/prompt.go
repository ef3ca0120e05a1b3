// Package prompt turns a free-text scheduling instruction into structured
// hints. It is a fixed keyword matcher, not a language model: each category
// is an ordered list of phrases checked by case-insensitive substring, and
// the first match in table order wins. When a prompt contains conflicting
// phrases ("morning" and "evening"), table order decides, not input order.
// This is accepted ambiguity, kept for compatibility with the calendar UI
// that produced these prompts.
package prompt

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Grouping describes how the user wants events arranged.
type Grouping string

// Grouping values.
const (
	GroupTogether   Grouping = "together"
	GroupSpread     Grouping = "spread"
	GroupBackToBack Grouping = "back-to-back"
)

// Level is a two-valued tag used for energy and complexity hints.
type Level string

// Level values.
const (
	LevelHigh Level = "high"
	LevelLow  Level = "low"
)

// Unit is the unit of a break interval.
type Unit string

// Unit values.
const (
	UnitHour   Unit = "hour"
	UnitMinute Unit = "minute"
)

// TimeRange is a time-of-day window in whole hours.
type TimeRange struct {
	Start int
	End   int
}

// BreakPattern is a parsed "breaks every N ..." instruction.
type BreakPattern struct {
	Interval int
	Unit     Unit
}

// Parsed is the structured hint extracted from a prompt. All fields are
// optional and purely advisory: they are merged into live preferences for
// one scheduling pass and never persisted. A prompt with no recognized
// phrases yields the zero value, which is the common case, not an error.
type Parsed struct {
	TargetDate *time.Time
	TimeRange  *TimeRange
	Grouping   Grouping
	Energy     Level
	Complexity Level
	Break      *BreakPattern
}

// Empty reports whether no phrase matched.
func (p Parsed) Empty() bool {
	return p.TargetDate == nil && p.TimeRange == nil && p.Grouping == "" &&
		p.Energy == "" && p.Complexity == "" && p.Break == nil
}

// datePhrases maps phrases to target-date computations. Matching stops at
// the first hit, so "next week" shadows "next monday" when both appear.
// The weekday arithmetic keeps a quirk of the original calendar UI:
// "next monday" on a Monday resolves to today, as does "next friday" on a
// Friday.
var datePhrases = []struct {
	phrase string
	date   func(today time.Time) time.Time
}{
	{"tomorrow", func(today time.Time) time.Time {
		return today.AddDate(0, 0, 1)
	}},
	{"next week", func(today time.Time) time.Time {
		return today.AddDate(0, 0, 7)
	}},
	{"next monday", func(today time.Time) time.Time {
		return today.AddDate(0, 0, (8-int(today.Weekday()))%7)
	}},
	{"next friday", func(today time.Time) time.Time {
		return today.AddDate(0, 0, (5-int(today.Weekday())+7)%7)
	}},
}

// timePhrases maps phrases to time-of-day windows. Table order decides
// conflicts: "early morning" in a prompt hits the "morning" substring first
// and yields 9-12, not 6-9.
var timePhrases = []struct {
	phrase string
	window TimeRange
}{
	{"morning", TimeRange{Start: 9, End: 12}},
	{"afternoon", TimeRange{Start: 12, End: 17}},
	{"evening", TimeRange{Start: 17, End: 21}},
	{"early morning", TimeRange{Start: 6, End: 9}},
	{"late afternoon", TimeRange{Start: 15, End: 18}},
}

// groupPhrases are mutually exclusive; first match wins.
var groupPhrases = []struct {
	phrase   string
	grouping Grouping
}{
	{"together", GroupTogether},
	{"spread", GroupSpread},
	{"back-to-back", GroupBackToBack},
}

// breakPattern extracts instructions like "break every 2 hours" or
// "breaks after 45 min".
var breakPattern = regexp.MustCompile(`(?i)break(?:s)? (?:every|after) (\d+) (?:hour|hr|minute|min)s?`)

// Parse extracts structured hints from a free-text instruction. Dates are
// resolved relative to now. Parse never fails; unrecognized text simply
// yields an empty result.
func Parse(text string, now time.Time) Parsed {
	var result Parsed
	lower := strings.ToLower(text)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, p := range datePhrases {
		if strings.Contains(lower, p.phrase) {
			date := p.date(today)
			result.TargetDate = &date
			break
		}
	}

	for _, p := range timePhrases {
		if strings.Contains(lower, p.phrase) {
			window := p.window
			result.TimeRange = &window
			break
		}
	}

	for _, p := range groupPhrases {
		if strings.Contains(lower, p.phrase) {
			result.Grouping = p.grouping
			break
		}
	}

	if strings.Contains(lower, "high energy") {
		result.Energy = LevelHigh
	} else if strings.Contains(lower, "low energy") {
		result.Energy = LevelLow
	}

	if strings.Contains(lower, "complex") {
		result.Complexity = LevelHigh
	} else if strings.Contains(lower, "simple") {
		result.Complexity = LevelLow
	}

	if m := breakPattern.FindStringSubmatch(lower); m != nil {
		interval, err := strconv.Atoi(m[1])
		if err == nil {
			// The unit is hours only when the matched text literally says
			// "hour"; "2 hrs" falls through to minutes. Compatibility quirk.
			unit := UnitMinute
			if strings.Contains(m[0], "hour") {
				unit = UnitHour
			}
			result.Break = &BreakPattern{Interval: interval, Unit: unit}
		}
	}

	return result
}
