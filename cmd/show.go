package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/sobriety/internal/calendar"
	"github.com/theirongolddev/sobriety/internal/cli"
	"github.com/theirongolddev/sobriety/internal/config"
	"github.com/theirongolddev/sobriety/internal/i18n"
	"github.com/theirongolddev/sobriety/internal/state"

	"github.com/spf13/cobra"
)

var flagLang string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the elapsed time for the saved date without prompting",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(&flagLang, "lang", "l", "", "Output language (ru or en)")
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	lang := resolveLang(flagLang, cfg)
	msgs := i18n.Default()

	ref, err := state.New(config.Dir()).Load()
	switch {
	case errors.Is(err, state.ErrNotFound):
		fmt.Println(msgs.Text(i18n.FileNotFound, lang))
		return nil
	case err != nil:
		fmt.Println(msgs.Text(i18n.ErrorReadingFile, lang))
		return nil
	}

	total, relative := cli.FormatElapsed(calendar.Elapsed(ref, calendar.Today(nil)), lang, msgs)
	fmt.Printf("%s %s\n", msgs.Text(i18n.DateReadFromFile, lang), ref)
	fmt.Println(cli.RenderResult(total, relative))
	return nil
}
