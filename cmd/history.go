package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/sobriety/internal/cli"
	"github.com/theirongolddev/sobriety/internal/store"

	"github.com/spf13/cobra"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously saved start dates",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 20, "Number of entries to show (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	hist, err := store.Open(historyPath())
	if err != nil {
		return err
	}
	defer func() { _ = hist.Close() }()

	entries, err := hist.Recent(flagLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("\n  No saved dates yet.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVED DATES"))
	fmt.Println()
	fmt.Print(cli.RenderTable(
		[]string{"#", "Date", "Source", "Saved at"},
		historyRows(entries),
	))
	return nil
}

func historyRows(entries []store.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Date.String(),
			string(e.Source),
			e.SavedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return rows
}
