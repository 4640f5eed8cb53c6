package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/theirongolddev/wordpace/internal/cli"
	"github.com/theirongolddev/wordpace/internal/model"
	"github.com/theirongolddev/wordpace/internal/pace"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log <total-word-count>",
	Short: "Record a word-count snapshot for the active goal",
	Long:  "Record the project's cumulative word count as of a date (today by default). Log the total, not the day's output.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLog,
}

var flagLogDate string

func init() {
	logCmd.Flags().StringVar(&flagLogDate, "date", "", "Snapshot date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("word count must be a number, got %q", args[0])
	}

	date := time.Now()
	if flagLogDate != "" {
		date, err = time.Parse("2006-01-02", flagLogDate)
		if err != nil {
			return fmt.Errorf("bad --date %q, want YYYY-MM-DD", flagLogDate)
		}
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	goal, err := resolveGoal(st, cfg)
	if err != nil {
		return err
	}

	// Previous total before this snapshot, for the delta line.
	before, err := st.ListEntries(goal.ID)
	if err != nil {
		return fmt.Errorf("listing entries: %w", err)
	}
	prevStats := pace.ComputeStats(goal, before, time.Now())

	if _, err := st.CreateEntry(model.DailyEntry{
		GoalID:    goal.ID,
		Date:      date,
		WordCount: count,
	}); err != nil {
		return err
	}

	after, err := st.ListEntries(goal.ID)
	if err != nil {
		return fmt.Errorf("listing entries: %w", err)
	}
	stats := pace.ComputeStats(goal, after, time.Now())

	if flagQuiet {
		return nil
	}

	delta := stats.TotalWords - prevStats.TotalWords
	fmt.Printf("\n  Logged %s words for %s (%s)\n",
		cli.FormatNumber(int64(count)), goal.Title, cli.FormatDate(date))
	if delta != 0 {
		fmt.Printf("  %s since the last snapshot\n", cli.FormatSignedWords(delta))
	}
	fmt.Printf("  %s\n", cli.RenderProgressBar(stats.ProgressPercentage, 30))
	if stats.DaysRemaining > 0 {
		fmt.Printf("  %s to go — %s needed to finish by %s\n\n",
			cli.FormatNumber(int64(stats.RemainingWords)),
			cli.FormatPace(stats.WordsPerDayNeeded),
			cli.FormatDate(goal.Deadline))
	} else {
		fmt.Printf("  Deadline %s has passed (%s)\n\n",
			cli.FormatDate(goal.Deadline),
			cli.FormatDaysRemaining(stats.DaysRemaining))
	}

	return nil
}
