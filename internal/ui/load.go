package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/javiermolinar/rocinante/internal/event"
	"github.com/javiermolinar/rocinante/internal/ics"
)

// loadEvents reads a calendar file. The format is picked by extension:
// .ics for iCalendar, anything else is treated as the JSON event list the
// calendar widget exchanges.
func loadEvents(path string) ([]event.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading calendar file: %w", err)
	}

	if isICS(path) {
		events, err := ics.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return events, nil
	}

	var events []event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return events, nil
}

// saveEvents writes a calendar file, picking the format by extension.
func saveEvents(path string, events []event.Event) error {
	var data []byte
	var err error

	if isICS(path) {
		data, err = ics.Render(events)
	} else {
		data, err = json.MarshalIndent(events, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating calendar directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing calendar file: %w", err)
	}
	return nil
}

func isICS(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".ics")
}

// calendarPath resolves the calendar file: an explicit argument wins,
// otherwise the configured default is used.
func (a *App) calendarPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.config.Calendar.Path
}
