// Package app contains the Cobra command tree for comfrt.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comfrt/comfrt/internal/config"
	"github.com/comfrt/comfrt/internal/output"
	"github.com/comfrt/comfrt/internal/store"
	"github.com/comfrt/comfrt/internal/venue"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "comfrt",
	Short: "Find calm, sensory-friendly venues",
	Long: `comfrt scores venues for sensory comfort. It combines venue attributes,
review sentiment, and your stored sensitivity preferences into a 0-100
comfort score, predicts the quietest times to visit, and filters results
through conversational follow-ups.

Run 'comfrt' with no arguments to see the available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor {
			output.SetNoColor(true)
		} else {
			output.AutoDetectColor()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("comfrt", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  score     Score venues for sensory comfort")
		fmt.Println("  analyze   Analyze review text for comfort signals")
		fmt.Println("  chat      Search and refine results conversationally")
		fmt.Println("  times     Predict the quietest times for a venue type")
		fmt.Println("  match     Match a venue against your sensory profile")
		fmt.Println("  outings   Plan and manage multi-stop outings")
		fmt.Println("  prefs     Show or update sensitivity preferences")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/comfrt/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}

// openStore opens the SQLite database under the configured data directory.
func openStore(cfg *config.Config) (*store.DB, error) {
	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// loadPreferences resolves the active preferences: stored ones when
// present, config fallbacks otherwise.
func loadPreferences(db *store.DB, cfg *config.Config) (venue.Preferences, error) {
	prefs, err := db.GetPreferences()
	if err != nil {
		return venue.Preferences{}, fmt.Errorf("loading preferences: %w", err)
	}
	if prefs.Location == "" {
		prefs.Location = cfg.Search.Location
	}
	if prefs.OtherNeeds == "" {
		prefs.OtherNeeds = cfg.Prefs.OtherNeeds
	}
	return prefs, nil
}
