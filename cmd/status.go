package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/wordpace/internal/cli"
	"github.com/theirongolddev/wordpace/internal/pace"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Pacing dashboard for the active goal",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	goal, err := resolveGoal(st, cfg)
	if err != nil {
		return err
	}

	entries, err := st.ListEntries(goal.ID)
	if err != nil {
		return fmt.Errorf("listing entries: %w", err)
	}

	now := time.Now()
	stats := pace.ComputeStats(goal, entries, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle(goal.Title))
	fmt.Println()

	fmt.Printf("  %s\n\n", cli.RenderProgressBar(stats.ProgressPercentage, 40))

	projected := "—"
	if !stats.ProjectedCompletion.IsZero() {
		projected = stats.ProjectedCompletion.Format("Jan 2, 2006")
		if stats.ProjectedCompletion.After(goal.Deadline.AddDate(0, 0, 1)) {
			projected += "  (behind schedule)"
		}
	}

	rows := [][]string{
		{"Target", cli.FormatNumber(int64(goal.TargetWordCount)) + " words"},
		{"Started", cli.FormatDate(goal.StartDate)},
		{"Deadline", cli.FormatDate(goal.Deadline)},
		{"---"},
	}
	if goal.InitialWordCount > 0 {
		rows = append(rows, []string{"Starting Count", cli.FormatNumber(int64(goal.InitialWordCount))})
	}
	rows = append(rows,
		[]string{"Total Words", cli.FormatNumber(int64(stats.TotalWords))},
		[]string{"Remaining", cli.FormatNumber(int64(stats.RemainingWords))},
		[]string{"Daily Average", fmt.Sprintf("%.0f", stats.AverageDaily)},
		[]string{"---"},
		[]string{"Days Remaining", cli.FormatDaysRemaining(stats.DaysRemaining)},
		[]string{"Words/Day Needed", fmt.Sprintf("%.0f", stats.WordsPerDayNeeded)},
		[]string{"Projected Finish", projected},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Recent activity
	recent := pace.RecentDeltas(goal, entries, cfg.General.RecentEntries)
	if len(recent) == 0 {
		fmt.Println("\n  No entries yet. Log your first with `wordpace log <count>`.")
		return nil
	}

	activityRows := make([][]string, 0, len(recent))
	spark := make([]float64, 0, len(recent))
	for _, p := range recent {
		activityRows = append(activityRows, []string{
			cli.FormatDate(p.Date),
			cli.FormatDayOfWeek(int(p.Date.Weekday())),
			cli.FormatSignedWords(p.DailyWords),
			cli.FormatNumber(int64(p.TotalWords)),
		})
	}
	// Sparkline reads oldest to newest.
	for i := len(recent) - 1; i >= 0; i-- {
		spark = append(spark, float64(recent[i].DailyWords))
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Recent Progress  " + cli.RenderSparkline(spark),
		Headers: []string{"Date", "Day", "Added", "Total"},
		Rows:    activityRows,
	}))

	return nil
}
