package tracker

import (
	"fmt"

	"github.com/theirongolddev/sobriety/internal/calendar"
	"github.com/theirongolddev/sobriety/internal/cli"
	"github.com/theirongolddev/sobriety/internal/i18n"
	"github.com/theirongolddev/sobriety/internal/model"
	"github.com/theirongolddev/sobriety/internal/store"
)

// CollectDate asks for month, year and day until the answer is a date
// strictly before today, echoes it back and offers to save it.
// The day prompt is bounded by the month length so every answer is a real date.
// The only error is an I/O failure from the prompter.
func (t *Tracker) CollectDate() (model.Date, error) {
	for {
		today := t.Today()

		month, err := t.prompt.Int(t.text(i18n.InputMonth), 1, 12)
		if err != nil {
			return model.Date{}, err
		}
		year, err := t.prompt.Int(t.text(i18n.InputYear), calendar.MinYear, today.Year)
		if err != nil {
			return model.Date{}, err
		}
		day, err := t.prompt.Int(t.text(i18n.InputDay), 1, calendar.DaysInMonth(year, month))
		if err != nil {
			return model.Date{}, err
		}

		d := model.NewDate(year, month, day)
		if !d.Before(today) {
			fmt.Fprintln(t.out, t.text(i18n.InFuture))
			continue
		}

		fmt.Fprintln(t.out, cli.FormatEnteredDate(d.Day, d.Month, d.Year, t.lang, t.msgs))

		keep, err := t.prompt.Confirm(t.text(i18n.SaveThisDate), true)
		if err != nil {
			return model.Date{}, err
		}
		if keep {
			t.save(d, store.SourceEntered)
		}
		return d, nil
	}
}
