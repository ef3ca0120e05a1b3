package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocinante/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var initialize bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Print the configuration after defaults, the config file, and
environment overrides have been applied.

With --init, a config file with default values is written if none exists.`,
		Example: `  rocinante config
  rocinante config --init`,
		RunE: func(_ *cobra.Command, _ []string) error {
			configPath := config.DefaultConfigPath()
			fmt.Printf("Config file: %s\n\n", configPath)

			if initialize {
				if _, err := os.Stat(configPath); os.IsNotExist(err) {
					if err := config.Default().SaveTo(configPath); err != nil {
						return fmt.Errorf("saving config: %w", err)
					}
					fmt.Printf("Created %s\n\n", configPath)
				} else {
					fmt.Println("Config file already exists, leaving it alone.")
					fmt.Println()
				}
			}

			cfg, err := config.LoadFrom(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			printConfig(cfg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&initialize, "init", false, "Write a default config file if none exists")

	return cmd
}

func printConfig(cfg *config.Config) {
	fmt.Println(formatHeader("[schedule]"))
	fmt.Printf("  business hours: %02d:00 - %02d:00\n", cfg.Schedule.BusinessStartHour, cfg.Schedule.BusinessEndHour)
	fmt.Printf("  slot length:    %d min\n", cfg.Schedule.SlotMinutes)
	fmt.Printf("  break:          %d min\n", cfg.Schedule.BreakMinutes)
	fmt.Printf("  mode:           %s\n", cfg.Schedule.Mode)
	fmt.Printf("  horizon:        %d days\n", cfg.Schedule.HorizonDays)
	fmt.Println(formatHeader("[calendar]"))
	fmt.Printf("  path: %s\n", cfg.Calendar.Path)
	fmt.Println(formatHeader("[ui]"))
	fmt.Printf("  no_color: %v\n", cfg.UI.NoColor)
}
