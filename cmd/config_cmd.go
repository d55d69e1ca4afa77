package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/sobriety/internal/config"
	"github.com/theirongolddev/sobriety/internal/state"
	"github.com/theirongolddev/sobriety/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s", config.Path())
	if !config.Exists() {
		fmt.Print(" (not found, using defaults)")
	}
	fmt.Println()
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.Language != "" {
		fmt.Printf("    Language: %s\n", cfg.General.Language)
	} else {
		fmt.Println("    Language: ask every run")
	}
	fmt.Printf("    Prompt:   %s\n", cfg.General.Prompt)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Date]")
	dates := state.New(config.Dir())
	ref, err := dates.Load()
	switch {
	case err == nil:
		fmt.Printf("    Saved date: %s\n", ref)
	case errors.Is(err, state.ErrNotFound):
		fmt.Println("    Saved date: none")
	default:
		fmt.Printf("    Saved date: unreadable (%v)\n", err)
	}
	fmt.Printf("    File:       %s\n", dates.Path())
	fmt.Println()

	fmt.Println("  [History]")
	if !cfg.History.Enabled {
		fmt.Println("    Disabled")
	} else if hist, err := store.Open(historyPath()); err != nil {
		fmt.Printf("    Unavailable: %v\n", err)
	} else {
		n, err := hist.Count()
		_ = hist.Close()
		if err != nil {
			fmt.Printf("    Unavailable: %v\n", err)
		} else {
			fmt.Printf("    Entries: %d\n", n)
		}
	}
	fmt.Println()

	fmt.Println("  Run `sobriety setup` to change these settings.")
	return nil
}
