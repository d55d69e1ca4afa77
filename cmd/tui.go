package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/sobriety/internal/config"
	"github.com/theirongolddev/sobriety/internal/i18n"
	"github.com/theirongolddev/sobriety/internal/state"
	"github.com/theirongolddev/sobriety/internal/tui"
	"github.com/theirongolddev/sobriety/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Full-screen live counter for the saved date",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&flagLang, "lang", "l", "", "Output language (ru or en)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)
	lang := resolveLang(flagLang, cfg)
	msgs := i18n.Default()

	ref, err := state.New(config.Dir()).Load()
	if err != nil {
		key := i18n.ErrorReadingFile
		if errors.Is(err, state.ErrNotFound) {
			key = i18n.FileNotFound
		}
		fmt.Println(msgs.Text(key, lang))
		fmt.Println("  Run `sobriety` to set a start date.")
		return nil
	}

	// Force TrueColor profile so all styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(ref, lang, msgs, nil)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
