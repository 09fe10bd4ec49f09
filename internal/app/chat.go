package app

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comfrt/comfrt/internal/config"
	"github.com/comfrt/comfrt/internal/enrich"
	"github.com/comfrt/comfrt/internal/followup"
	"github.com/comfrt/comfrt/internal/store"
	"github.com/comfrt/comfrt/internal/venue"
)

var (
	chatFlagSeed  uint64
	chatFlagFresh bool
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Search and refine results conversationally",
	Long: `Chat interprets a message against your previous search. Follow-ups
like "which ones have outdoor seating?" filter the previous results;
anything else starts a new search against the built-in catalog. Results
are kept so the next message can refine them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().Uint64Var(&chatFlagSeed, "seed", 0, "Seed for response phrasing (0 = random)")
	chatCmd.Flags().BoolVar(&chatFlagFresh, "fresh", false, "Ignore previous results and search anew")

	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")

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

	var previous *store.SearchResult
	if !chatFlagFresh {
		previous, err = db.GetLatestSearchResult()
		if err != nil {
			return fmt.Errorf("loading previous results: %w", err)
		}
	}

	hasResults := previous != nil && len(previous.Venues) > 0
	classification := followup.Classify(message, hasResults)

	if classification.IsFilter {
		return runChatFilter(message, classification, previous)
	}
	return runChatSearch(cmd, db, cfg, prefs, message)
}

// runChatFilter narrows the previous result set by the detected filters.
func runChatFilter(message string, c followup.Classification, previous *store.SearchResult) error {
	result := followup.Apply(previous.Venues, c.DetectedFilters)

	if flagJSON {
		return renderJSON(struct {
			Classification followup.Classification `json:"classification"`
			Result         followup.Result         `json:"result"`
			Message        string                  `json:"message"`
		}{c, result, followup.Response(result, len(previous.Venues))})
	}

	fmt.Println(" " + followup.Response(result, len(previous.Venues)))
	if len(result.Venues) > 0 {
		fmt.Println()
		renderVenues(result.Venues, venue.Preferences{}, false)
	}
	return nil
}

// runChatSearch scores a fresh catalog search and persists the result set
// for follow-ups.
func runChatSearch(cmd *cobra.Command, db *store.DB, cfg *config.Config, prefs venue.Preferences, message string) error {
	venues := demoVenues(detectVenueType(message))

	enricher := enrich.New(prefs, enrichOptions(cfg, chatFlagSeed)...)
	venues, err := enricher.EnhanceAll(cmd.Context(), venues, cfg.Search.ResultLimit)
	if err != nil {
		return fmt.Errorf("scoring venues: %w", err)
	}

	if _, err := db.SaveSearchResult(message, prefs.Location, venues); err != nil {
		return fmt.Errorf("saving results: %w", err)
	}
	// Only the recent history matters for follow-ups.
	if err := db.PruneSearchResults(20); err != nil {
		return fmt.Errorf("pruning results: %w", err)
	}

	if flagJSON {
		return renderJSON(struct {
			Message string        `json:"message"`
			Venues  []venue.Venue `json:"venues"`
		}{searchGreeting(chatFlagSeed), venues})
	}

	fmt.Println(" " + searchGreeting(chatFlagSeed))
	renderVenues(venues, prefs, false)
	return nil
}

var searchGreetings = []string{
	"I found some wonderful calm spots for you. Based on your needs, here are places known for their peaceful atmosphere:",
	"Great question! Here are some sensory-friendly options that should work well for you:",
	"I understand you're looking for a comfortable space. These venues are known for their quiet, relaxed environment:",
}

func searchGreeting(seed uint64) string {
	if seed != 0 {
		r := rand.New(rand.NewPCG(seed, 0))
		return searchGreetings[r.IntN(len(searchGreetings))]
	}
	return searchGreetings[rand.IntN(len(searchGreetings))]
}
