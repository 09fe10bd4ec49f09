package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comfrt/comfrt/internal/output"
	"github.com/comfrt/comfrt/internal/reviews"
	"github.com/comfrt/comfrt/internal/venue"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <reviews.json>",
	Short: "Analyze review text for comfort signals",
	Long: `Analyze scans review text for comfort-relevant keywords across five
categories (noise, lighting, space, ambiance, sensory) and reports a
per-category breakdown, an overall sentiment score, and representative
quotes.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading reviews: %w", err)
	}
	var revs []venue.Review
	if err := json.Unmarshal(data, &revs); err != nil {
		return fmt.Errorf("parsing reviews: %w", err)
	}

	analysis := reviews.Analyze(revs)
	quotes := reviews.ExtractQuotes(revs)

	if flagJSON {
		return renderJSON(struct {
			venue.ReviewAnalysis
			Quotes  []venue.Quote `json:"quotes,omitempty"`
			Summary string        `json:"summary"`
		}{analysis, quotes, reviews.Summary(&analysis)})
	}

	fmt.Println(output.Section("Review Comfort Analysis"))
	fmt.Println()
	fmt.Printf(" Sentiment: %s   Confidence: %s   Mentions: %d across %d reviews\n",
		output.ScoreStyle(analysis.SentimentScore).Render(fmt.Sprintf("%d/100", analysis.SentimentScore)),
		output.StyleBold.Render(fmt.Sprintf("%d%%", analysis.Confidence)),
		analysis.TotalMentions, analysis.ReviewCount)
	fmt.Println()

	tbl := output.NewTable("Category", "Score", "Mentions", "Positive", "Negative")
	for _, cat := range reviews.Categories {
		cs := analysis.Breakdown[cat]
		tbl.AddScored(cs.Score, cat,
			fmt.Sprintf("%d", cs.Score),
			fmt.Sprintf("%d", cs.Mentions),
			fmt.Sprintf("%d", cs.Positive),
			fmt.Sprintf("%d", cs.Negative))
	}
	tbl.Print()

	if len(analysis.Highlights) > 0 {
		fmt.Println(output.Section("Highlights"))
		for _, m := range analysis.Highlights {
			fmt.Printf(" %s %s\n", output.StyleCalm.Render("+"), m.Text)
		}
	}
	if len(analysis.Concerns) > 0 {
		fmt.Println(output.Section("Concerns"))
		for _, m := range analysis.Concerns {
			fmt.Printf(" %s %s\n", output.StyleLively.Render("-"), m.Text)
		}
	}
	if len(quotes) > 0 {
		fmt.Println(output.Section("Quotes"))
		for _, q := range quotes {
			fmt.Printf(" %q\n   %s\n", q.Text, output.StyleMuted.Render("- "+q.User))
		}
	}

	fmt.Println()
	fmt.Println(" " + reviews.Summary(&analysis))
	return nil
}
