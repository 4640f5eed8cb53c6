package cmd

import (
	"fmt"

	"github.com/theirongolddev/wordpace/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.ActiveGoal != "" {
		fmt.Printf("    Active goal:    %s\n", shortID(cfg.General.ActiveGoal))
	} else {
		fmt.Println("    Active goal:    not set")
	}
	fmt.Printf("    Database:       %s\n", config.DataPath(cfg))
	fmt.Printf("    Recent entries: %d\n", cfg.General.RecentEntries)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `wordpace setup` to reconfigure.")
	return nil
}
