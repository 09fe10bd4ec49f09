package app

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comfrt/comfrt/internal/comfort"
	"github.com/comfrt/comfrt/internal/config"
	"github.com/comfrt/comfrt/internal/enrich"
	"github.com/comfrt/comfrt/internal/output"
	"github.com/comfrt/comfrt/internal/venue"
)

var (
	scoreFlagFile    string
	scoreFlagType    string
	scoreFlagLimit   int
	scoreFlagSeed    uint64
	scoreFlagVerbose bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score venues for sensory comfort",
	Long: `Score computes a 0-100 comfort score for each venue, using venue
attributes (noise level, ambiance, category, price) plus review sentiment
when reviews are attached. Venues come from a JSON file (--file) or the
built-in catalog (--type).`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreFlagFile, "file", "", "JSON file of venues to score")
	scoreCmd.Flags().StringVar(&scoreFlagType, "type", "restaurant", "Built-in catalog type: coffee, italian, japanese, casual, restaurant")
	scoreCmd.Flags().IntVar(&scoreFlagLimit, "limit", 0, "Show at most this many venues (0 = config default)")
	scoreCmd.Flags().Uint64Var(&scoreFlagSeed, "seed", 0, "Seed for recommendation phrasing (0 = random)")
	scoreCmd.Flags().BoolVar(&scoreFlagVerbose, "verbose", false, "Show the factor breakdown per venue")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	venues, err := loadVenues(scoreFlagFile, scoreFlagType)
	if err != nil {
		return err
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

	limit := scoreFlagLimit
	if limit == 0 {
		limit = cfg.Search.ResultLimit
	}

	enricher := enrich.New(prefs, enrichOptions(cfg, scoreFlagSeed)...)
	venues, err = enricher.EnhanceAll(cmd.Context(), venues, limit)
	if err != nil {
		return fmt.Errorf("scoring venues: %w", err)
	}

	if flagJSON {
		return renderJSON(venues)
	}
	renderVenues(venues, prefs, scoreFlagVerbose)
	return nil
}

// enrichOptions builds enricher options from config plus an optional seed.
func enrichOptions(cfg *config.Config, seed uint64) []enrich.Option {
	opts := []enrich.Option{
		enrich.WithBlendCap(cfg.Scoring.BlendCap),
		enrich.WithConcurrency(cfg.Scoring.Concurrency),
	}
	if seed != 0 {
		opts = append(opts, enrich.WithRand(rand.New(rand.NewPCG(seed, 0))))
	}
	return opts
}

// loadVenues reads venues from a JSON file, falling back to the built-in
// catalog.
func loadVenues(file, venueType string) ([]venue.Venue, error) {
	if file == "" {
		return demoVenues(venueType), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading venues: %w", err)
	}
	var venues []venue.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("parsing venues: %w", err)
	}
	return venues, nil
}

func renderJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderVenues(venues []venue.Venue, prefs venue.Preferences, verbose bool) {
	fmt.Println(output.Section("Comfort Scores"))
	fmt.Println()

	if len(venues) == 0 {
		fmt.Println(output.StyleMuted.Render(" No venues to score."))
		return
	}

	for i := range venues {
		v := &venues[i]
		fmt.Printf(" %s %s\n",
			output.StyleHeader.Render(v.Name),
			output.StyleMuted.Render(v.Price))
		fmt.Printf("   %s %s\n",
			output.ScoreBar(v.ComfortScore, 20),
			output.ScoreStyle(v.ComfortScore).Render(comfort.Label(v.ComfortScore)))
		if chips := output.Chips(v.ComfortAttributes); chips != "" {
			fmt.Printf("   %s\n", chips)
		}
		if v.RecommendationReason != "" {
			fmt.Printf("   %s\n", output.StyleMuted.Render(v.RecommendationReason))
		}
		if v.ReviewComfortSummary != "" {
			fmt.Printf("   %s\n", v.ReviewComfortSummary)
		}
		if verbose {
			renderFactors(v, prefs)
		}
		fmt.Println()
	}
}

func renderFactors(v *venue.Venue, prefs venue.Preferences) {
	result := comfort.Calculate(v, prefs)
	tbl := output.NewTable("Factor", "Impact")
	for _, f := range result.Factors {
		tbl.AddRow(f.Factor, fmt.Sprintf("%+.1f", f.Impact))
	}
	fmt.Print(indent(tbl.Render(), "   "))
}

func indent(s, prefix string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if line == "" {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
