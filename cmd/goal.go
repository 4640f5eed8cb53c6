package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/wordpace/internal/cli"
	"github.com/theirongolddev/wordpace/internal/config"
	"github.com/theirongolddev/wordpace/internal/model"
	"github.com/theirongolddev/wordpace/internal/pace"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage writing goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new goal (interactive when no flags are given)",
	RunE:  runGoalAdd,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with their progress",
	RunE:  runGoalList,
}

var goalUseCmd = &cobra.Command{
	Use:   "use <goal>",
	Short: "Set the active goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalUse,
}

var goalRmCmd = &cobra.Command{
	Use:   "rm <goal>",
	Short: "Delete a goal and all of its entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalRm,
}

var (
	flagGoalTitle    string
	flagGoalTarget   int
	flagGoalDeadline string
	flagGoalStart    string
	flagGoalInitial  int
	flagGoalForce    bool
)

func init() {
	goalAddCmd.Flags().StringVarP(&flagGoalTitle, "title", "t", "", "Goal title")
	goalAddCmd.Flags().IntVarP(&flagGoalTarget, "target", "w", 0, "Target word count")
	goalAddCmd.Flags().StringVar(&flagGoalDeadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	goalAddCmd.Flags().StringVar(&flagGoalStart, "start", "", "Start date (YYYY-MM-DD, default today)")
	goalAddCmd.Flags().IntVar(&flagGoalInitial, "initial", 0, "Words already written at the start date")
	goalRmCmd.Flags().BoolVarP(&flagGoalForce, "force", "f", false, "Skip the confirmation prompt")

	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalUseCmd, goalRmCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalAdd(_ *cobra.Command, _ []string) error {
	title := flagGoalTitle
	targetStr := ""
	if flagGoalTarget > 0 {
		targetStr = strconv.Itoa(flagGoalTarget)
	}
	deadlineStr := flagGoalDeadline
	startStr := flagGoalStart
	initialStr := strconv.Itoa(flagGoalInitial)

	if title == "" || targetStr == "" || deadlineStr == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("What are you writing?").
				Value(&title).
				Validate(requireNonEmpty),
			huh.NewInput().
				Title("Target word count").
				Value(&targetStr).
				Validate(requirePositiveInt),
			huh.NewInput().
				Title("Deadline").
				Description("YYYY-MM-DD").
				Value(&deadlineStr).
				Validate(requireDate),
			huh.NewInput().
				Title("Start date").
				Description("YYYY-MM-DD, leave blank for today").
				Value(&startStr).
				Validate(allowEmptyDate),
			huh.NewInput().
				Title("Starting word count").
				Description("Words already written, 0 for a fresh start").
				Value(&initialStr).
				Validate(requireNonNegativeInt),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	target, err := strconv.Atoi(strings.TrimSpace(targetStr))
	if err != nil {
		return fmt.Errorf("target word count must be a number, got %q", targetStr)
	}
	initial, err := strconv.Atoi(strings.TrimSpace(initialStr))
	if err != nil {
		return fmt.Errorf("starting word count must be a number, got %q", initialStr)
	}
	deadline, err := time.Parse("2006-01-02", strings.TrimSpace(deadlineStr))
	if err != nil {
		return fmt.Errorf("bad deadline %q, want YYYY-MM-DD", deadlineStr)
	}
	start := time.Now()
	if strings.TrimSpace(startStr) != "" {
		start, err = time.Parse("2006-01-02", strings.TrimSpace(startStr))
		if err != nil {
			return fmt.Errorf("bad start date %q, want YYYY-MM-DD", startStr)
		}
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	id, err := st.CreateGoal(model.WritingGoal{
		Title:            strings.TrimSpace(title),
		TargetWordCount:  target,
		StartDate:        start,
		Deadline:         deadline,
		InitialWordCount: initial,
	})
	if err != nil {
		return err
	}

	// First goal becomes the active one automatically.
	if cfg.General.ActiveGoal == "" {
		cfg.General.ActiveGoal = id
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
	}

	if !flagQuiet {
		fmt.Printf("\n  Created goal %s (%s)\n", title, shortID(id))
		fmt.Printf("  %s words by %s — log progress with `wordpace log <count>`\n\n",
			cli.FormatNumber(int64(target)), deadline.Format("Jan 2, 2006"))
	}
	return nil
}

func runGoalList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	goals, err := st.ListGoals()
	if err != nil {
		return fmt.Errorf("listing goals: %w", err)
	}
	if len(goals) == 0 {
		fmt.Println("\n  No goals yet. Create one with `wordpace goal add`.")
		return nil
	}

	now := time.Now()
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		entries, err := st.ListEntries(g.ID)
		if err != nil {
			return fmt.Errorf("listing entries for %s: %w", g.ID, err)
		}
		stats := pace.ComputeStats(&g, entries, now)

		marker := " "
		if g.ID == cfg.General.ActiveGoal {
			marker = "*"
		}
		rows = append(rows, []string{
			marker + " " + g.Title,
			shortID(g.ID),
			cli.FormatWords(g.TargetWordCount),
			cli.FormatDate(g.Deadline),
			cli.FormatPercent(stats.ProgressPercentage),
			cli.FormatDaysRemaining(stats.DaysRemaining),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Goal", "ID", "Target", "Deadline", "Done", "Left"},
		Rows:    rows,
	}))
	fmt.Println("  * active goal")
	return nil
}

func runGoalUse(_ *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	goals, err := st.ListGoals()
	if err != nil {
		return fmt.Errorf("listing goals: %w", err)
	}
	goal := matchGoal(goals, args[0])
	if goal == nil {
		return fmt.Errorf("no goal matches %q", args[0])
	}

	cfg.General.ActiveGoal = goal.ID
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Active goal is now %s (%s)\n", goal.Title, shortID(goal.ID))
	}
	return nil
}

func runGoalRm(_ *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	goals, err := st.ListGoals()
	if err != nil {
		return fmt.Errorf("listing goals: %w", err)
	}
	goal := matchGoal(goals, args[0])
	if goal == nil {
		return fmt.Errorf("no goal matches %q", args[0])
	}

	if !flagGoalForce {
		entries, _ := st.ListEntries(goal.ID)
		confirmed := false
		confirm := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q and its %d entries?", goal.Title, len(entries))).
			Value(&confirmed)
		if err := confirm.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("  Cancelled.")
			return nil
		}
	}

	if err := st.DeleteGoal(goal.ID); err != nil {
		return err
	}

	if cfg.General.ActiveGoal == goal.ID {
		cfg.General.ActiveGoal = ""
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
	}

	if !flagQuiet {
		fmt.Printf("  Deleted %s and its entries.\n", goal.Title)
	}
	return nil
}

func requireNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func requirePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func requireNonNegativeInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func requireDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func allowEmptyDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return requireDate(s)
}
