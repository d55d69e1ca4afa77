package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line is a line-oriented prompter over plain reader/writer streams.
type Line struct {
	in      *bufio.Reader
	out     io.Writer
	invalid string
}

// NewLine returns a prompter reading answers from in and writing prompts to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Line{in: br, out: out, invalid: DefaultInvalidText}
}

// SetInvalidText sets the message shown after a rejected answer.
func (l *Line) SetInvalidText(s string) {
	l.invalid = s
}

// Int implements Prompter.
func (l *Line) Int(label string, min, max int) (int, error) {
	for {
		answer, err := l.ask(fmt.Sprintf("> %s [%d-%d]: ", label, min, max))
		if err != nil {
			return 0, err
		}
		if v, convErr := strconv.Atoi(answer); convErr == nil && v >= min && v <= max {
			return v, nil
		}
		l.reject()
	}
}

// Choose implements Prompter.
func (l *Line) Choose(options []Option) (string, error) {
	for _, o := range options {
		fmt.Fprintf(l.out, "%s. %s\n", o.Key, o.Label)
	}
	for {
		answer, err := l.ask("> ")
		if err != nil {
			return "", err
		}
		for _, o := range options {
			if answer == o.Key {
				return o.Key, nil
			}
		}
		l.reject()
	}
}

// Confirm implements Prompter. Unrecognized answers repeat the question.
func (l *Line) Confirm(label string, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}
	for {
		answer, err := l.ask(fmt.Sprintf("%s %s: ", label, hint))
		if err != nil {
			return false, err
		}
		answer = strings.ToLower(answer)
		switch {
		case answer == "":
			return def, nil
		case answer == "y" || answer == "yes":
			return true, nil
		case strings.HasPrefix(answer, "n"):
			return false, nil
		}
	}
}

// Line implements Prompter.
func (l *Line) Line(label string) (string, error) {
	return l.ask(fmt.Sprintf("> %s: ", label))
}

// ask prints the prompt and returns the trimmed answer. A final line without
// a trailing newline is still returned; EOF is reported on the next call.
func (l *Line) ask(prompt string) (string, error) {
	fmt.Fprint(l.out, prompt)
	s, err := l.in.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		if err == io.EOF {
			return "", fmt.Errorf("reading answer: %w", io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(s), nil
}

func (l *Line) reject() {
	fmt.Fprintf(l.out, "! %s\n", l.invalid)
}
