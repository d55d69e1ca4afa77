// Package tracker drives the interactive flow that settles on a reference date:
// loading the saved date, offering to reuse or replace it, and collecting a
// new one from the user.
package tracker

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/theirongolddev/sobriety/internal/calendar"
	"github.com/theirongolddev/sobriety/internal/cli"
	"github.com/theirongolddev/sobriety/internal/i18n"
	"github.com/theirongolddev/sobriety/internal/model"
	"github.com/theirongolddev/sobriety/internal/prompt"
	"github.com/theirongolddev/sobriety/internal/state"
	"github.com/theirongolddev/sobriety/internal/store"
)

// DateStore persists the reference date. *state.Store implements it.
type DateStore interface {
	Load() (model.Date, error)
	Save(model.Date) (string, error)
}

// Recorder logs every saved date. *store.History implements it.
type Recorder interface {
	Record(d model.Date, src store.Source, at time.Time) error
}

// Config wires a Tracker to its collaborators.
type Config struct {
	Prompt   prompt.Prompter
	Store    DateStore
	History  Recorder // optional
	Messages i18n.Table
	Lang     i18n.Lang
	Out      io.Writer        // defaults to os.Stdout
	Err      io.Writer        // defaults to os.Stderr
	Now      func() time.Time // defaults to time.Now
}

// Tracker resolves the reference date for one run.
type Tracker struct {
	prompt  prompt.Prompter
	store   DateStore
	history Recorder
	msgs    i18n.Table
	lang    i18n.Lang
	out     io.Writer
	errOut  io.Writer
	now     func() time.Time
}

// New returns a Tracker. Messages defaults to the built-in table.
func New(cfg Config) *Tracker {
	t := &Tracker{
		prompt:  cfg.Prompt,
		store:   cfg.Store,
		history: cfg.History,
		msgs:    cfg.Messages,
		lang:    cfg.Lang,
		out:     cfg.Out,
		errOut:  cfg.Err,
		now:     cfg.Now,
	}
	if t.msgs == nil {
		t.msgs = i18n.Default()
	}
	if t.lang == "" {
		t.lang = i18n.EN
	}
	if t.out == nil {
		t.out = os.Stdout
	}
	if t.errOut == nil {
		t.errOut = os.Stderr
	}
	if t.now == nil {
		t.now = time.Now
	}
	return t
}

// Today returns the current local date.
func (t *Tracker) Today() model.Date {
	return calendar.Today(t.now)
}

func (t *Tracker) text(k i18n.Key) string {
	return t.msgs.Text(k, t.lang)
}

// save persists d and logs it to history. Failures are reported as warnings;
// the run continues with d either way.
func (t *Tracker) save(d model.Date, src store.Source) {
	path, err := t.store.Save(d)
	if err != nil {
		fmt.Fprintln(t.errOut, cli.RenderWarning(fmt.Sprintf("%s %v", t.text(i18n.SaveFailed), err)))
		return
	}
	fmt.Fprintf(t.out, "%s %s\n", t.text(i18n.DateSaved), path)

	if t.history == nil {
		return
	}
	if err := t.history.Record(d, src, t.now()); err != nil {
		fmt.Fprintln(t.errOut, cli.RenderWarning(err.Error()))
	}
}

// useToday saves and returns today's date.
func (t *Tracker) useToday() model.Date {
	today := t.Today()
	t.save(today, store.SourceToday)
	return today
}

// loadState classifies the result of reading the saved date.
type loadState int

const (
	stateNoFile loadState = iota
	stateLoaded
	stateCorrupt
)

func (t *Tracker) load() (model.Date, loadState) {
	d, err := t.store.Load()
	switch {
	case err == nil:
		return d, stateLoaded
	case errors.Is(err, state.ErrNotFound):
		return model.Date{}, stateNoFile
	default:
		return model.Date{}, stateCorrupt
	}
}

// Report computes the elapsed time from ref to today and formats it as the
// total-days line and the years/months/days line.
func (t *Tracker) Report(ref model.Date) (string, string) {
	return cli.FormatElapsed(calendar.Elapsed(ref, t.Today()), t.lang, t.msgs)
}
