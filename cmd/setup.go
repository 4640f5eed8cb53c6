package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/wordpace/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to wordpace!")
	fmt.Println()

	// 1. Data directory
	fmt.Println("  1. Data directory")
	fmt.Printf("     Where the word-count database lives.\n")
	fmt.Printf("     Current: %s\n", config.DataPath(cfg))
	fmt.Print("     > ")
	dataDir, _ := reader.ReadString('\n')
	dataDir = strings.TrimSpace(dataDir)
	if dataDir != "" {
		cfg.General.DataDir = dataDir
	}
	fmt.Println()

	// 2. Recent entries
	fmt.Println("  2. Recent snapshots shown on the dashboard")
	fmt.Printf("     Current: %d\n", cfg.General.RecentEntries)
	fmt.Print("     > ")
	recentStr, _ := reader.ReadString('\n')
	recentStr = strings.TrimSpace(recentStr)
	if recentStr != "" {
		if n, err := strconv.Atoi(recentStr); err == nil && n > 0 {
			cfg.General.RecentEntries = n
		}
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `wordpace setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
