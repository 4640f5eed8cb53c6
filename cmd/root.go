// Package cmd implements the wordpace CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/wordpace/internal/config"
	"github.com/theirongolddev/wordpace/internal/model"
	"github.com/theirongolddev/wordpace/internal/store"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagGoal    string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wordpace",
	Short: "Writing goal pacing tracker",
	Long:  "Track progress toward writing goals: log word-count snapshots, see your pace, and know what it takes to hit the deadline.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the wordpace database")
	rootCmd.PersistentFlags().StringVarP(&flagGoal, "goal", "g", "", "Goal to operate on (id or title prefix)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
	}
}

// openStore is the shared data access path used by all commands.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Warn("config unreadable, using defaults", "err", err)
	}

	path := config.DataPath(cfg)
	if flagDataDir != "" {
		path = filepath.Join(flagDataDir, "wordpace.db")
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, cfg, fmt.Errorf("opening store: %w", err)
	}
	return st, cfg, nil
}

// resolveGoal picks the goal a command should act on: the --goal flag
// first, then the configured active goal, then the only goal if there
// is exactly one.
func resolveGoal(st *store.Store, cfg config.Config) (*model.WritingGoal, error) {
	goals, err := st.ListGoals()
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("no goals yet — create one with `wordpace goal add`")
	}

	want := flagGoal
	if want == "" {
		want = cfg.General.ActiveGoal
	}
	if want == "" {
		if len(goals) == 1 {
			return &goals[0], nil
		}
		return nil, fmt.Errorf("%d goals found — pick one with --goal or `wordpace goal use`", len(goals))
	}

	if g := matchGoal(goals, want); g != nil {
		return g, nil
	}
	return nil, fmt.Errorf("no goal matches %q", want)
}

// matchGoal finds a goal by exact id, id prefix, or case-insensitive
// title prefix, in that order.
func matchGoal(goals []model.WritingGoal, want string) *model.WritingGoal {
	for i := range goals {
		if goals[i].ID == want {
			return &goals[i]
		}
	}
	for i := range goals {
		if strings.HasPrefix(goals[i].ID, want) {
			return &goals[i]
		}
	}
	lower := strings.ToLower(want)
	for i := range goals {
		if strings.HasPrefix(strings.ToLower(goals[i].Title), lower) {
			return &goals[i]
		}
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
