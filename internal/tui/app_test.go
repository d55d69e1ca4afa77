package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/sobriety/internal/i18n"
	"github.com/theirongolddev/sobriety/internal/model"
	"github.com/theirongolddev/sobriety/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

func TestAppRollsOverOnTick(t *testing.T) {
	now := time.Date(2024, 2, 28, 23, 59, 0, 0, time.Local)
	clock := func() time.Time { return now }

	a := NewApp(model.NewDate(2020, 2, 29), i18n.EN, i18n.Default(), clock)
	if a.breakdown.Years != 3 || a.breakdown.Months != 11 || a.breakdown.Days != 30 {
		t.Fatalf("initial breakdown = %+v", a.breakdown)
	}

	now = now.Add(2 * time.Minute)
	m, cmd := a.Update(tickMsg(now))
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	a = m.(App)
	if a.breakdown.Years != 4 || a.breakdown.Months != 0 || a.breakdown.Days != 0 {
		t.Fatalf("breakdown after midnight = %+v, want 4 years", a.breakdown)
	}
	if !strings.Contains(a.View(), "Which is: 4 years") {
		t.Fatalf("view not refreshed:\n%s", a.View())
	}
}

func TestAppQuitKeys(t *testing.T) {
	a := NewApp(model.NewDate(2023, 1, 1), i18n.EN, i18n.Default(), nil)

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		_, cmd := a.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: no command returned", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: command did not quit", msg)
		}
	}
}

func TestAppHelpToggle(t *testing.T) {
	a := NewApp(model.NewDate(2023, 1, 1), i18n.EN, i18n.Default(), nil)

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.(App).help.ShowAll {
		t.Fatal("? did not expand help")
	}
}

func TestAppViewRussian(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local) }
	a := NewApp(model.NewDate(2023, 3, 1), i18n.RU, i18n.Default(), now)

	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.(App).View()

	for _, s := range []string{"370 дней", "Что составляет: 1 лет, 4 дней", "Начиная с 01.03.2023"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q:\n%s", s, view)
		}
	}
}

func TestHelpStylesFollowTheme(t *testing.T) {
	for _, th := range theme.All {
		s := helpStyles(th)
		if got := s.ShortDesc.GetForeground(); got != th.TextDim {
			t.Errorf("%s: ShortDesc color = %v, want %v", th.Name, got, th.TextDim)
		}
		if got := s.FullDesc.GetForeground(); got != th.TextDim {
			t.Errorf("%s: FullDesc color = %v, want %v", th.Name, got, th.TextDim)
		}
		if got := s.ShortKey.GetForeground(); got != th.TextMuted {
			t.Errorf("%s: ShortKey color = %v, want %v", th.Name, got, th.TextMuted)
		}
	}
}
