package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocinante/internal/config"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "rocinante",
		Short: "A time-blocking calendar with automatic rescheduling",
		Long: `Rocinante is a personal time-blocking calendar tool.

It reads a calendar file (.ics or .json), finds free slots inside your
business hours, and can automatically re-place a chosen set of events
according to your preferences and a short free-text instruction like
"move these to tomorrow morning, back-to-back".`,
	}

	if cfg.UI.NoColor {
		DisableColor()
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.slotsCmd())
	a.root.AddCommand(a.rescheduleCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("rocinante %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
