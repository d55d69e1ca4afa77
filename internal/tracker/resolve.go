package tracker

import (
	"fmt"

	"github.com/theirongolddev/sobriety/internal/i18n"
	"github.com/theirongolddev/sobriety/internal/model"
	"github.com/theirongolddev/sobriety/internal/prompt"
)

const (
	optSaved = "saved"
	optNew   = "new"
	optToday = "today"
)

// ResolveDate settles on the reference date for this run.
//
// With no saved date, or an unreadable one, the user may enter a new date or
// use today's. With a valid saved date they may also keep it. Choosing today
// saves it immediately. The only error is an I/O failure from the prompter.
func (t *Tracker) ResolveDate() (model.Date, error) {
	saved, st := t.load()

	var actions []string
	switch st {
	case stateLoaded:
		fmt.Fprintln(t.out, t.text(i18n.ReadingDate))
		fmt.Fprintf(t.out, "%s %s\n\n", t.text(i18n.DateReadFromFile), saved)
		actions = []string{optSaved, optNew, optToday}
	case stateCorrupt:
		fmt.Fprintln(t.out, t.text(i18n.ReadingDate))
		fmt.Fprintf(t.out, "%s\n\n", t.text(i18n.ErrorReadingFile))
		actions = []string{optNew, optToday}
	default:
		fmt.Fprintf(t.out, "%s\n\n", t.text(i18n.FileNotFound))
		actions = []string{optNew, optToday}
	}

	action, err := t.choose(actions)
	if err != nil {
		return model.Date{}, err
	}

	switch action {
	case optSaved:
		return saved, nil
	case optNew:
		return t.CollectDate()
	default:
		return t.useToday(), nil
	}
}

// choose lists actions as a numbered menu and returns the selected action.
func (t *Tracker) choose(actions []string) (string, error) {
	labels := map[string]i18n.Key{
		optSaved: i18n.UseSavedDate,
		optNew:   i18n.EnterNewDate,
		optToday: i18n.UseTodaysDate,
	}

	opts := make([]prompt.Option, len(actions))
	for i, a := range actions {
		opts[i] = prompt.Option{Key: fmt.Sprint(i + 1), Label: t.text(labels[a])}
	}

	key, err := t.prompt.Choose(opts)
	if err != nil {
		return "", err
	}
	for i, o := range opts {
		if o.Key == key {
			return actions[i], nil
		}
	}
	return "", fmt.Errorf("unknown option %q", key)
}
