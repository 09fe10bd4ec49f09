package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comfrt/comfrt/internal/config"
	"github.com/comfrt/comfrt/internal/output"
	"github.com/comfrt/comfrt/internal/reviews"
	"github.com/comfrt/comfrt/internal/sensory"
	"github.com/comfrt/comfrt/internal/venue"
)

var matchCmd = &cobra.Command{
	Use:   "match <venue.json>",
	Short: "Match a venue against your sensory profile",
	Long: `Match compares a venue's sensory profile (noise, lighting, space,
ambiance) against your stored sensitivity preferences and reports a
weighted overall match plus a per-category breakdown.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading venue: %w", err)
	}
	var v venue.Venue
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("parsing venue: %w", err)
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

	result := sensory.Calculate(&v, prefs)

	if flagJSON {
		return renderJSON(result)
	}

	fmt.Println(output.Section(fmt.Sprintf("Sensory Match: %s", v.Name)))
	fmt.Println()
	fmt.Printf(" Overall: %s\n", output.ScoreBar(result.Overall, 20))
	fmt.Println()

	tbl := output.NewTable("Category", "Match", "Score", "Notes")
	for _, cat := range reviews.Categories {
		cm, ok := result.Breakdown[cat]
		if !ok {
			continue
		}
		tbl.AddScored(cm.Score, cat, cm.Match, fmt.Sprintf("%d", cm.Score), cm.Description)
	}
	tbl.Print()
	return nil
}
