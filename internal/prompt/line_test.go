package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLineIntRetriesUntilInRange(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("abc\n13\n0\n 7 \n"), &out)
	p.SetInvalidText("bad")

	got, err := p.Int("Enter a month", 1, 12)
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	if got != 7 {
		t.Fatalf("Int = %d, want 7", got)
	}
	if n := strings.Count(out.String(), "! bad"); n != 3 {
		t.Fatalf("rejections = %d, want 3; output:\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), "> Enter a month [1-12]: ") {
		t.Fatalf("prompt missing bounds; output:\n%s", out.String())
	}
}

func TestLineIntEOF(t *testing.T) {
	p := NewLine(strings.NewReader("x\n"), io.Discard)

	_, err := p.Int("Enter a day", 1, 31)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("err = %v, want ErrUnexpectedEOF", err)
	}
}

func TestLineIntAcceptsFinalLineWithoutNewline(t *testing.T) {
	p := NewLine(strings.NewReader("2020"), io.Discard)

	got, err := p.Int("Enter a year", 1900, 2024)
	if err != nil || got != 2020 {
		t.Fatalf("Int = (%d, %v), want (2020, nil)", got, err)
	}
}

func TestLineChoose(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("3\n\n2\n"), &out)

	got, err := p.Choose([]Option{{"1", "first"}, {"2", "second"}})
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if got != "2" {
		t.Fatalf("Choose = %q, want 2", got)
	}
	if !strings.Contains(out.String(), "1. first\n2. second\n") {
		t.Fatalf("options not listed; output:\n%s", out.String())
	}
	if n := strings.Count(out.String(), "! "+DefaultInvalidText); n != 2 {
		t.Fatalf("rejections = %d, want 2", n)
	}
}

func TestLineConfirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"\n", true, true},
		{"\n", false, false},
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"nope\n", true, false},
		{"maybe\nyes\n", false, true},
	}

	for _, tt := range tests {
		p := NewLine(strings.NewReader(tt.input), io.Discard)
		got, err := p.Confirm("Save?", tt.def)
		if err != nil {
			t.Fatalf("Confirm(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q, def=%v) = %v, want %v", tt.input, tt.def, got, tt.want)
		}
	}
}

func TestLineLineTrims(t *testing.T) {
	p := NewLine(strings.NewReader("  Ru \n"), io.Discard)

	got, err := p.Line("Choose language")
	if err != nil || got != "Ru" {
		t.Fatalf("Line = (%q, %v), want (Ru, nil)", got, err)
	}
}

func TestParseBounded(t *testing.T) {
	if v, ok := parseBounded(" 5 ", 1, 12); !ok || v != 5 {
		t.Errorf("parseBounded(5) = (%d, %v)", v, ok)
	}
	for _, s := range []string{"", "x", "0", "13", "5.5"} {
		if _, ok := parseBounded(s, 1, 12); ok {
			t.Errorf("parseBounded(%q) accepted", s)
		}
	}
}
