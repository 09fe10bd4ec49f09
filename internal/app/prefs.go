package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comfrt/comfrt/internal/config"
	"github.com/comfrt/comfrt/internal/output"
)

var (
	prefsFlagNoise    int
	prefsFlagLight    int
	prefsFlagSpace    int
	prefsFlagLocation string
	prefsFlagNeeds    string
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or update sensitivity preferences",
	Long: `Prefs shows your stored sensitivity preferences. The three scales run
1-5, where 5 means most sensitive (or, for spaciousness, strongest
preference for open space). Set any of them with flags:

  comfrt prefs set --noise 5 --light 2 --space 4`,
	RunE: runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update sensitivity preferences",
	RunE:  runPrefsSet,
}

func init() {
	prefsSetCmd.Flags().IntVar(&prefsFlagNoise, "noise", 0, "Noise sensitivity (1-5)")
	prefsSetCmd.Flags().IntVar(&prefsFlagLight, "light", 0, "Light sensitivity (1-5)")
	prefsSetCmd.Flags().IntVar(&prefsFlagSpace, "space", 0, "Spaciousness preference (1-5)")
	prefsSetCmd.Flags().StringVar(&prefsFlagLocation, "location", "", "Default search location")
	prefsSetCmd.Flags().StringVar(&prefsFlagNeeds, "needs", "", "Other sensory needs, free text")

	prefsCmd.AddCommand(prefsSetCmd)
	rootCmd.AddCommand(prefsCmd)
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	prefs, err := loadPreferences(db, cfg)
	if err != nil {
		return err
	}

	if flagJSON {
		return renderJSON(prefs)
	}

	fmt.Println(output.Section("Sensory Preferences"))
	fmt.Println()
	tbl := output.NewTable("Preference", "Value")
	tbl.AddRow("Noise sensitivity", scaleBar(prefs.NoiseSensitivity))
	tbl.AddRow("Light sensitivity", scaleBar(prefs.LightSensitivity))
	tbl.AddRow("Spaciousness", scaleBar(prefs.SpaciousnessPreference))
	if prefs.Location != "" {
		tbl.AddRow("Location", prefs.Location)
	}
	if prefs.OtherNeeds != "" {
		tbl.AddRow("Other needs", prefs.OtherNeeds)
	}
	tbl.Print()
	return nil
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	prefs, err := db.GetPreferences()
	if err != nil {
		return fmt.Errorf("loading preferences: %w", err)
	}

	if cmd.Flags().Changed("noise") {
		prefs.NoiseSensitivity = prefsFlagNoise
	}
	if cmd.Flags().Changed("light") {
		prefs.LightSensitivity = prefsFlagLight
	}
	if cmd.Flags().Changed("space") {
		prefs.SpaciousnessPreference = prefsFlagSpace
	}
	if cmd.Flags().Changed("location") {
		prefs.Location = prefsFlagLocation
	}
	if cmd.Flags().Changed("needs") {
		prefs.OtherNeeds = prefsFlagNeeds
	}

	if err := db.SavePreferences(prefs); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	fmt.Println("Preferences saved.")
	return nil
}

// scaleBar renders a 1-5 scale as filled dots: "●●●○○ (3/5)".
func scaleBar(value int) string {
	if value < 1 {
		value = 1
	}
	if value > 5 {
		value = 5
	}
	bar := ""
	for i := 1; i <= 5; i++ {
		if i <= value {
			bar += "●"
		} else {
			bar += "○"
		}
	}
	return fmt.Sprintf("%s (%d/5)", bar, value)
}
