package cmd

import (
	"fmt"

	"github.com/theirongolddev/wordpace/internal/cli"
	"github.com/theirongolddev/wordpace/internal/model"
	"github.com/theirongolddev/wordpace/internal/pace"

	"github.com/spf13/cobra"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List the active goal's snapshots with daily gains",
	RunE:  runEntries,
}

var entriesRmCmd = &cobra.Command{
	Use:   "rm <entry-id>",
	Short: "Delete a snapshot by id (or id prefix)",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntriesRm,
}

var (
	flagEntriesAll   bool
	flagEntriesLimit int
)

func init() {
	entriesCmd.Flags().BoolVarP(&flagEntriesAll, "all", "a", false, "Show every snapshot, not just recent ones")
	entriesCmd.Flags().IntVarP(&flagEntriesLimit, "limit", "n", 0, "Show the last N snapshots")
	entriesCmd.AddCommand(entriesRmCmd)
	rootCmd.AddCommand(entriesCmd)
}

func runEntries(_ *cobra.Command, _ []string) error {
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
	if len(entries) == 0 {
		fmt.Println("\n  No entries yet. Log your first with `wordpace log <count>`.")
		return nil
	}

	limit := cfg.General.RecentEntries
	if flagEntriesLimit > 0 {
		limit = flagEntriesLimit
	}
	if flagEntriesAll {
		limit = len(entries)
	}
	recent := pace.RecentDeltas(goal, entries, limit)

	// Map each (date, total) row back to its entry id. Duplicates on a
	// date resolve to the winning snapshot, same as the engine.
	idByKey := make(map[string]string, len(entries))
	for _, e := range entries {
		key := e.Date.Format("2006-01-02")
		if cur, ok := idByKey[key]; !ok || e.WordCount > entryCount(entries, cur) {
			idByKey[key] = e.ID
		}
	}

	rows := make([][]string, 0, len(recent))
	for _, p := range recent {
		rows = append(rows, []string{
			cli.FormatDate(p.Date),
			cli.FormatDayOfWeek(int(p.Date.Weekday())),
			cli.FormatSignedWords(p.DailyWords),
			cli.FormatNumber(int64(p.TotalWords)),
			shortID(idByKey[p.Date.Format("2006-01-02")]),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s — %d of %d snapshots", goal.Title, len(recent), countDistinctDates(entries)),
		Headers: []string{"Date", "Day", "Added", "Total", "ID"},
		Rows:    rows,
	}))
	return nil
}

func runEntriesRm(_ *cobra.Command, args []string) error {
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

	id := args[0]
	var match string
	for _, e := range entries {
		if e.ID == id {
			match = e.ID
			break
		}
	}
	if match == "" {
		for _, e := range entries {
			if len(id) >= 4 && len(e.ID) >= len(id) && e.ID[:len(id)] == id {
				if match != "" {
					return fmt.Errorf("entry id %q is ambiguous", id)
				}
				match = e.ID
			}
		}
	}
	if match == "" {
		return fmt.Errorf("no entry matches %q", id)
	}

	if err := st.DeleteEntry(match); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Deleted entry %s.\n", shortID(match))
	}
	return nil
}

func entryCount(entries []model.DailyEntry, id string) int {
	for _, e := range entries {
		if e.ID == id {
			return e.WordCount
		}
	}
	return 0
}

func countDistinctDates(entries []model.DailyEntry) int {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		seen[e.Date.Format("2006-01-02")] = struct{}{}
	}
	return len(seen)
}
