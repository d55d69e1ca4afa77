package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theirongolddev/sobriety/internal/cli"
	"github.com/theirongolddev/sobriety/internal/config"
	"github.com/theirongolddev/sobriety/internal/i18n"
	"github.com/theirongolddev/sobriety/internal/prompt"
	"github.com/theirongolddev/sobriety/internal/state"
	"github.com/theirongolddev/sobriety/internal/store"
	"github.com/theirongolddev/sobriety/internal/tracker"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "sobriety",
	Short:        "Sobriety counter",
	Long:         "Track a start date and see how long it has been: in days, and in years, months and days.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCounter,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// localizedPrompter is a prompter whose rejection message follows the chosen language.
type localizedPrompter interface {
	prompt.Prompter
	SetInvalidText(string)
}

func runCounter(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	msgs := i18n.Default()

	p := newPrompter(cfg.General.Prompt, os.Stdin, os.Stdout)
	lang, err := chooseLanguage(p, cfg.General.Language, os.Stderr)
	if err != nil {
		return err
	}
	p.SetInvalidText(msgs.Text(i18n.ErrorInt, lang))
	fmt.Println()

	tcfg := tracker.Config{
		Prompt:   p,
		Store:    state.New(config.Dir()),
		Messages: msgs,
		Lang:     lang,
	}
	if hist := openHistory(cfg); hist != nil {
		defer func() { _ = hist.Close() }()
		tcfg.History = hist
	}
	tr := tracker.New(tcfg)

	ref, err := tr.ResolveDate()
	if err != nil {
		return err
	}

	total, relative := tr.Report(ref)
	fmt.Println(cli.RenderResult(total, relative))
	return nil
}

// newPrompter picks huh forms on an interactive terminal and plain line
// prompts otherwise, unless the config forces one style.
func newPrompter(style string, in *os.File, out *os.File) localizedPrompter {
	switch style {
	case config.PromptForm:
		return prompt.NewForm()
	case config.PromptPlain:
		return prompt.NewLine(in, out)
	}
	if isatty.IsTerminal(in.Fd()) && isatty.IsTerminal(out.Fd()) {
		return prompt.NewForm()
	}
	return prompt.NewLine(in, out)
}

// chooseLanguage returns the configured language, or asks for one. An
// unrecognized answer selects English and prints an English notice to warn.
func chooseLanguage(p prompt.Prompter, preset string, warn io.Writer) (i18n.Lang, error) {
	if lang, ok := i18n.ParseLang(preset); ok {
		return lang, nil
	}

	answer, err := p.Line(i18n.Default().Text(i18n.ChooseLanguage, i18n.EN))
	if err != nil {
		return i18n.EN, err
	}
	lang, ok := i18n.ParseLang(answer)
	if !ok {
		fmt.Fprintln(warn, cli.RenderWarning(i18n.InvalidLangNotice))
	}
	return lang, nil
}

// resolveLang picks the display language for non-interactive commands:
// the flag, then the config, then English.
func resolveLang(flag string, cfg config.Config) i18n.Lang {
	if lang, ok := i18n.ParseLang(flag); ok {
		return lang
	}
	lang, _ := i18n.ParseLang(cfg.General.Language)
	return lang
}

// loadConfig loads settings, falling back to defaults with a warning.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderWarning(fmt.Sprintf("%v (using defaults)", err)))
	}
	return cfg
}

// openHistory opens the saved-date log. It returns nil when history is
// disabled or unavailable; the counter works without it.
func openHistory(cfg config.Config) *store.History {
	if !cfg.History.Enabled {
		return nil
	}
	hist, err := store.Open(historyPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderWarning(fmt.Sprintf("History unavailable: %v", err)))
		return nil
	}
	return hist
}

func historyPath() string {
	return filepath.Join(config.Dir(), store.FileName)
}
