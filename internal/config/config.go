// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/rocinante/internal/scheduler"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Calendar CalendarConfig `toml:"calendar"`
	UI       UIConfig       `toml:"ui"`
}

// ScheduleConfig holds the default scheduling preferences applied to every
// pass unless overridden on the command line.
type ScheduleConfig struct {
	BusinessStartHour int    `toml:"business_start_hour"` // 0-23
	BusinessEndHour   int    `toml:"business_end_hour"`   // 0-23, after start
	SlotMinutes       int    `toml:"slot_minutes"`        // candidate slot length
	BreakMinutes      int    `toml:"break_minutes"`       // gap kept around events
	Mode              string `toml:"mode"`                // "day" or "week"
	HorizonDays       int    `toml:"horizon_days"`        // search range length
}

// CalendarConfig holds the default calendar file settings.
type CalendarConfig struct {
	Path string `toml:"path"` // .ics or .json calendar file
}

// UIConfig holds output settings.
type UIConfig struct {
	NoColor bool `toml:"no_color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			BusinessStartHour: 9,
			BusinessEndHour:   17,
			SlotMinutes:       30,
			BreakMinutes:      15,
			Mode:              "day",
			HorizonDays:       7,
		},
		Calendar: CalendarConfig{
			Path: defaultCalendarPath(),
		},
		UI: UIConfig{
			NoColor: false,
		},
	}
}

// defaultCalendarPath returns the default calendar file path.
func defaultCalendarPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "calendar.json"
	}
	return filepath.Join(home, ".local", "share", "rocinante", "calendar.json")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "rocinante", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Calendar.Path = expandPath(cfg.Calendar.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	setInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	setInt("ROCINANTE_BUSINESS_START_HOUR", &cfg.Schedule.BusinessStartHour)
	setInt("ROCINANTE_BUSINESS_END_HOUR", &cfg.Schedule.BusinessEndHour)
	setInt("ROCINANTE_SLOT_MINUTES", &cfg.Schedule.SlotMinutes)
	setInt("ROCINANTE_BREAK_MINUTES", &cfg.Schedule.BreakMinutes)
	setInt("ROCINANTE_HORIZON_DAYS", &cfg.Schedule.HorizonDays)

	if v := os.Getenv("ROCINANTE_MODE"); v != "" {
		cfg.Schedule.Mode = v
	}
	if v := os.Getenv("ROCINANTE_CALENDAR_PATH"); v != "" {
		cfg.Calendar.Path = v
	}
	if v := os.Getenv("ROCINANTE_NO_COLOR"); v != "" {
		cfg.UI.NoColor = v == "1" || strings.EqualFold(v, "true")
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Schedule.SlotMinutes <= 0 {
		return fmt.Errorf("slot_minutes must be positive, got %d", c.Schedule.SlotMinutes)
	}
	if c.Schedule.BreakMinutes < 0 {
		return fmt.Errorf("break_minutes cannot be negative, got %d", c.Schedule.BreakMinutes)
	}
	if c.Schedule.BusinessStartHour < 0 || c.Schedule.BusinessEndHour > 24 ||
		c.Schedule.BusinessStartHour >= c.Schedule.BusinessEndHour {
		return fmt.Errorf("business hours must satisfy 0 <= start < end <= 24, got %d-%d",
			c.Schedule.BusinessStartHour, c.Schedule.BusinessEndHour)
	}
	if c.Schedule.Mode != string(scheduler.ModeDay) && c.Schedule.Mode != string(scheduler.ModeWeek) {
		return fmt.Errorf("mode must be %q or %q, got %q", scheduler.ModeDay, scheduler.ModeWeek, c.Schedule.Mode)
	}
	if c.Schedule.HorizonDays <= 0 {
		return fmt.Errorf("horizon_days must be positive, got %d", c.Schedule.HorizonDays)
	}
	if c.Calendar.Path == "" {
		return errors.New("calendar path must be set")
	}
	return nil
}

// Overlay converts the configured defaults into a scheduler overlay. The
// command line layers its own flags on top of what this returns.
func (c *Config) Overlay() scheduler.Overlay {
	hours := scheduler.BusinessHours{
		StartHour: c.Schedule.BusinessStartHour,
		EndHour:   c.Schedule.BusinessEndHour,
	}
	mode := scheduler.Mode(c.Schedule.Mode)
	slot := c.Schedule.SlotMinutes
	brk := c.Schedule.BreakMinutes
	return scheduler.Overlay{
		BusinessHours:      &hours,
		SlotDuration:       &slot,
		BreakBetweenEvents: &brk,
		Mode:               &mode,
	}
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
