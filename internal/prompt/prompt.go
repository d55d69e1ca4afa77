// Package prompt implements the interactive questions sobriety asks: bounded
// integers, numbered choices, yes/no confirmations and free-text lines.
//
// Every prompt retries on bad input until it gets a valid answer. The only
// errors returned are I/O failures such as a closed stdin or an aborted form.
package prompt

// Option is one entry of a numbered choice.
type Option struct {
	Key   string
	Label string
}

// Prompter asks the user questions.
type Prompter interface {
	// Int blocks until an integer within [min, max] is entered.
	Int(label string, min, max int) (int, error)
	// Choose blocks until one of the option keys is selected and returns it.
	Choose(options []Option) (string, error)
	// Confirm asks a yes/no question; an empty answer selects def.
	Confirm(label string, def bool) (bool, error)
	// Line reads one free-text answer.
	Line(label string) (string, error)
}

// DefaultInvalidText is printed on bad input until a language is chosen.
const DefaultInvalidText = "Input error."
