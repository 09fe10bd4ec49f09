package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/comfrt/comfrt/internal/output"
	"github.com/comfrt/comfrt/internal/timecomfort"
	"github.com/comfrt/comfrt/internal/venue"
)

var (
	timesFlagHour    int
	timesFlagWeekend bool
)

var timesCmd = &cobra.Command{
	Use:   "times <category>",
	Short: "Predict the quietest times for a venue type",
	Long: `Times maps a venue category (coffee, restaurants, bars, ...) to its
typical hourly busy pattern and reports the best visiting windows, an
hour-by-hour comfort forecast, and a prediction for a specific hour.`,
	Args: cobra.ExactArgs(1),
	RunE: runTimes,
}

func init() {
	timesCmd.Flags().IntVar(&timesFlagHour, "hour", -1, "Predict comfort for this hour (0-23, default: now)")
	timesCmd.Flags().BoolVar(&timesFlagWeekend, "weekend", false, "Use the weekend pattern")

	rootCmd.AddCommand(timesCmd)
}

func runTimes(cmd *cobra.Command, args []string) error {
	v := &venue.Venue{
		Categories: []venue.Category{{Alias: args[0]}},
	}

	hour := timesFlagHour
	if hour < 0 {
		hour = time.Now().Hour()
	}
	if hour > 23 {
		return fmt.Errorf("hour must be 0-23, got %d", hour)
	}

	prediction := timecomfort.Predict(v, hour, timesFlagWeekend)
	windows := timecomfort.BestTimes(v)
	hourly := timecomfort.HourlyComfort(v, timesFlagWeekend)

	if flagJSON {
		return renderJSON(struct {
			Hour           int                       `json:"hour"`
			Prediction     timecomfort.Prediction    `json:"prediction"`
			BestTimes      []timecomfort.Window      `json:"bestTimes"`
			Hourly         []timecomfort.HourComfort `json:"hourly"`
			Recommendation string                    `json:"recommendation"`
		}{hour, prediction, windows, hourly, timecomfort.Recommendation(v)})
	}

	fmt.Println(output.Section(fmt.Sprintf("Time Comfort: %s", args[0])))
	fmt.Println()
	fmt.Printf(" At %s: %s (%s)\n",
		timecomfort.FormatHour(hour),
		output.ScoreStyle(prediction.Score).Render(prediction.Level),
		output.ScoreBar(prediction.Score, 20))
	fmt.Printf(" Confidence: %d%%\n", prediction.Confidence)
	fmt.Println()
	fmt.Println(" " + timecomfort.Recommendation(v))

	fmt.Println(output.Section("Hourly Forecast"))
	fmt.Println()
	tbl := output.NewTable("Hour", "Level", "Score")
	for _, h := range hourly {
		tbl.AddScored(h.Score, h.Label, h.Level, fmt.Sprintf("%d", h.Score))
	}
	tbl.Print()
	return nil
}
