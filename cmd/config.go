package cmd

import (
	"fmt"

	"github.com/White-On/transilien-bot/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage transilien configuration",
	Long:  "View or edit your saved board settings (station, destination, feed, accent color).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setStation, _ := cmd.Flags().GetString("set-station")
		if setStation != "" {
			cfg.StationID = setStation
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("✅ Default station saved as: %s\n", setStation)
			return nil
		}

		// If no flags are given, launch the interactive form
		return runConfigForm(cfg)
	},
}

func runConfigForm(cfg *config.AppConfig) error {
	if cfg.Source == "" {
		cfg.Source = defaultSource
	}
	if cfg.StationID == "" {
		cfg.StationID = defaultStation
	}
	if cfg.Destination == "" {
		cfg.Destination = defaultDestination
	}
	if cfg.AccentColor == "" {
		cfg.AccentColor = "33"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which departure feed do you want to use?").
				Options(
					huh.NewOption("SNCF open API (stop areas)", "sncf"),
					huh.NewOption("Île-de-France Mobilités PRIM (stop monitoring)", "prim"),
				).
				Value(&cfg.Source),

			huh.NewInput().
				Title("Station identifier").
				Description("A stop area like stop_area:SNCF:87386649, or a PRIM monitoring reference").
				Value(&cfg.StationID),

			huh.NewInput().
				Title("Destination to count trains for").
				Value(&cfg.Destination),

			huh.NewMultiSelect[string]().
				Title("Physical modes to exclude from the destination count").
				Options(
					huh.NewOption("Bus", "Bus"),
					huh.NewOption("Coach", "Coach"),
					huh.NewOption("Tramway", "Tramway"),
				).
				Value(&cfg.ExcludedModes),

			huh.NewSelect[string]().
				Title("Accent color").
				Options(
					huh.NewOption("SNCF Blue", "33"),
					huh.NewOption("Transilien Purple", "99"),
					huh.NewOption("RER Red", "196"),
					huh.NewOption("Banlieue Green", "40"),
				).
				Value(&cfg.AccentColor),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("✅ Configuration saved."))
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-station", "t", "", "Set the default station without opening the form")
}
