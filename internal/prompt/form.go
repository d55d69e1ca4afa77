package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// Form is a terminal prompter built on huh forms. Bad input is rejected
// inline by field validation, so each call returns only once the answer is valid.
type Form struct {
	invalid string
	theme   *huh.Theme
}

// NewForm returns a huh-backed prompter.
func NewForm() *Form {
	return &Form{invalid: DefaultInvalidText, theme: huh.ThemeCharm()}
}

// SetInvalidText sets the validation message shown under a rejected field.
func (f *Form) SetInvalidText(s string) {
	f.invalid = s
}

// Int implements Prompter.
func (f *Form) Int(label string, min, max int) (int, error) {
	var raw string
	input := huh.NewInput().
		Title(fmt.Sprintf("%s [%d-%d]", label, min, max)).
		Value(&raw).
		Validate(boundedValidator(min, max, f.invalid))
	if err := f.run(input); err != nil {
		return 0, err
	}
	v, _ := parseBounded(raw, min, max)
	return v, nil
}

// Choose implements Prompter.
func (f *Form) Choose(options []Option) (string, error) {
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s. %s", o.Key, o.Label), o.Key))
	}
	var picked string
	sel := huh.NewSelect[string]().Options(opts...).Value(&picked)
	if err := f.run(sel); err != nil {
		return "", err
	}
	return picked, nil
}

// Confirm implements Prompter.
func (f *Form) Confirm(label string, def bool) (bool, error) {
	v := def
	c := huh.NewConfirm().Title(label).Value(&v)
	if err := f.run(c); err != nil {
		return false, err
	}
	return v, nil
}

// Line implements Prompter.
func (f *Form) Line(label string) (string, error) {
	var s string
	if err := f.run(huh.NewInput().Title(label).Value(&s)); err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func (f *Form) run(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).WithTheme(f.theme).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return fmt.Errorf("prompt aborted: %w", err)
	}
	return err
}

// boundedValidator rejects anything that is not an integer in [min, max].
func boundedValidator(min, max int, invalid string) func(string) error {
	return func(s string) error {
		if _, ok := parseBounded(s, min, max); !ok {
			return errors.New(invalid)
		}
		return nil
	}
}

func parseBounded(s string, min, max int) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < min || v > max {
		return 0, false
	}
	return v, true
}
