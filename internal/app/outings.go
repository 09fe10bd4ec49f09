package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comfrt/comfrt/internal/config"
	"github.com/comfrt/comfrt/internal/outing"
	"github.com/comfrt/comfrt/internal/output"
)

var outingsCmd = &cobra.Command{
	Use:   "outings",
	Short: "Plan and manage multi-stop outings",
	Long: `Outings manages saved multi-stop plans. Each outing aggregates its
stops' comfort scores into a single total, excluding stops that have no
score yet.`,
	RunE: runOutingsList,
}

var outingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved outings",
	RunE:  runOutingsList,
}

var outingsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an outing's stops and suggestions",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutingsShow,
}

var outingsSaveCmd = &cobra.Command{
	Use:   "save <outing.json>",
	Short: "Save an outing from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutingsSave,
}

var outingsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an outing",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutingsDelete,
}

func init() {
	outingsCmd.AddCommand(outingsListCmd, outingsShowCmd, outingsSaveCmd, outingsDeleteCmd)
	rootCmd.AddCommand(outingsCmd)
}

func runOutingsList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	outings, err := db.ListOutings()
	if err != nil {
		return fmt.Errorf("listing outings: %w", err)
	}

	if flagJSON {
		return renderJSON(outings)
	}

	fmt.Println(output.Section("Outings"))
	fmt.Println()
	if len(outings) == 0 {
		fmt.Println(output.StyleMuted.Render(" No outings saved yet. Use 'comfrt outings save' to add one."))
		return nil
	}

	tbl := output.NewTable("ID", "Name", "Date", "Stops", "Duration", "Comfort")
	for _, o := range outings {
		tbl.AddRow(o.ID, o.Name, o.Date,
			fmt.Sprintf("%d", len(o.Stops)),
			outing.FormatDuration(outing.TotalDuration(o.Stops)),
			fmt.Sprintf("%d", o.TotalComfort))
	}
	tbl.Print()
	return nil
}

func runOutingsShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	o, err := db.GetOuting(args[0])
	if err != nil {
		return fmt.Errorf("loading outing: %w", err)
	}
	if o == nil {
		return fmt.Errorf("no outing with id %q", args[0])
	}

	if flagJSON {
		return renderJSON(o)
	}

	fmt.Println(output.Section(fmt.Sprintf("%s (%s)", o.Name, o.Date)))
	fmt.Println()
	fmt.Printf(" Total comfort: %s   Duration: %s\n",
		output.ScoreBar(o.TotalComfort, 20),
		outing.FormatDuration(outing.TotalDuration(o.Stops)))
	fmt.Println()

	tbl := output.NewTable("Time", "Type", "Venue", "Duration", "Comfort")
	for _, s := range o.Stops {
		name := ""
		score := s.ComfortScore
		if s.Venue != nil {
			name = s.Venue.Name
			if s.Venue.ComfortScore > 0 {
				score = s.Venue.ComfortScore
			}
		}
		dur := s.Duration
		if dur == 0 {
			dur = 60
		}
		scoreStr := "-"
		if score > 0 {
			scoreStr = fmt.Sprintf("%d", score)
		}
		tbl.AddRow(s.Time, s.Type, name, outing.FormatDuration(dur), scoreStr)
	}
	tbl.Print()

	if suggested := outing.SuggestedStopTypes(o.Stops); len(suggested) > 0 {
		fmt.Println()
		fmt.Printf(" %s %s\n",
			output.StyleMuted.Render("Next stop ideas:"),
			strings.Join(suggested, ", "))
	}
	return nil
}

func runOutingsSave(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading outing: %w", err)
	}
	var o outing.Outing
	if err := json.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parsing outing: %w", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveOuting(&o); err != nil {
		return fmt.Errorf("saving outing: %w", err)
	}

	if flagJSON {
		return renderJSON(o)
	}
	fmt.Printf("Saved %q (%s) with %d stops, total comfort %d.\n",
		o.Name, o.ID, len(o.Stops), o.TotalComfort)
	return nil
}

func runOutingsDelete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteOuting(args[0]); err != nil {
		return fmt.Errorf("deleting outing: %w", err)
	}
	fmt.Printf("Deleted outing %s.\n", args[0])
	return nil
}
