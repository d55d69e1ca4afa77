package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/theirongolddev/sobriety/internal/config"
	"github.com/theirongolddev/sobriety/internal/prompt"
	"github.com/theirongolddev/sobriety/internal/tui/theme"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	p := newPrompter(cfg.General.Prompt, os.Stdin, os.Stdout)
	return setup(p, cfg, os.Stdout)
}

// choice is one selectable value in a setup step.
type choice struct {
	value string
	label string
}

// setup walks through every setting, starting from cfg, and writes the result.
func setup(p prompt.Prompter, cfg config.Config, out io.Writer) error {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Welcome to sobriety!")
	fmt.Fprintln(out)

	// 1. Language
	fmt.Fprintln(out, "  1. Language")
	lang, err := pick(p, cfg.General.Language, []choice{
		{"", "Ask every run"},
		{"en", "English"},
		{"ru", "Русский"},
	})
	if err != nil {
		return err
	}
	cfg.General.Language = lang
	fmt.Fprintln(out)

	// 2. Prompt style
	fmt.Fprintln(out, "  2. Prompt style")
	style, err := pick(p, cfg.General.Prompt, []choice{
		{config.PromptAuto, "Auto (forms on a terminal)"},
		{config.PromptPlain, "Plain line prompts"},
		{config.PromptForm, "Interactive forms"},
	})
	if err != nil {
		return err
	}
	cfg.General.Prompt = style
	fmt.Fprintln(out)

	// 3. Theme
	fmt.Fprintln(out, "  3. Color theme")
	themes := make([]choice, 0, len(theme.All))
	for _, th := range theme.All {
		themes = append(themes, choice{th.Name, th.Name})
	}
	name, err := pick(p, cfg.Appearance.Theme, themes)
	if err != nil {
		return err
	}
	cfg.Appearance.Theme = name
	fmt.Fprintln(out)

	// 4. History
	fmt.Fprintln(out, "  4. History")
	keep, err := p.Confirm("Keep a log of saved dates?", cfg.History.Enabled)
	if err != nil {
		return err
	}
	cfg.History.Enabled = keep

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.Path())
	fmt.Fprintln(out, "  Run `sobriety setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}

// pick offers choices numbered from 1, marking the current value.
func pick(p prompt.Prompter, current string, choices []choice) (string, error) {
	opts := make([]prompt.Option, len(choices))
	for i, c := range choices {
		label := c.label
		if c.value == current {
			label += " [current]"
		}
		opts[i] = prompt.Option{Key: strconv.Itoa(i + 1), Label: label}
	}

	picked, err := p.Choose(opts)
	if err != nil {
		return "", err
	}
	i, _ := strconv.Atoi(picked)
	return choices[i-1].value, nil
}
