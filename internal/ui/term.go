package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Moved events: bold green so reschedules pop in the diff
	colorMoved = color.New(color.FgGreen, color.Bold)

	// Unmoved/retained events: dim grey
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Free slots: cyan
	colorSlot = color.New(color.FgCyan)

	// Warnings (events that could not be placed): yellow
	colorWarn = color.New(color.FgYellow)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatMoved formats text for a rescheduled event.
func formatMoved(s string) string {
	return colorMoved.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatSlot formats text for a free slot listing.
func formatSlot(s string) string {
	return colorSlot.Sprint(s)
}

// formatWarn formats text for soft-failure warnings.
func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}
