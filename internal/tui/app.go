// Package tui provides the full-screen Bubble Tea counter for sobriety.
package tui

import (
	"strings"
	"time"

	"github.com/theirongolddev/sobriety/internal/calendar"
	"github.com/theirongolddev/sobriety/internal/cli"
	"github.com/theirongolddev/sobriety/internal/i18n"
	"github.com/theirongolddev/sobriety/internal/model"
	"github.com/theirongolddev/sobriety/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// refreshInterval is how often the counter recomputes so it rolls over at midnight.
const refreshInterval = time.Minute

// tickMsg triggers a recompute.
type tickMsg time.Time

type keyMap struct {
	Help key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Quit}}
}

var keys = keyMap{
	Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// App is the root Bubble Tea model.
type App struct {
	ref  model.Date
	lang i18n.Lang
	msgs i18n.Table
	now  func() time.Time

	today     model.Date
	breakdown calendar.Breakdown

	help   help.Model
	width  int
	height int
}

// NewApp returns a counter for ref. A nil now uses time.Now.
func NewApp(ref model.Date, lang i18n.Lang, msgs i18n.Table, now func() time.Time) App {
	if now == nil {
		now = time.Now
	}
	a := App{
		ref:  ref,
		lang: lang,
		msgs: msgs,
		now:  now,
		help: help.New(),
	}
	a.recompute()
	return a
}

func (a *App) recompute() {
	a.today = calendar.Today(a.now)
	a.breakdown = calendar.Elapsed(a.ref, a.today)
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.help.ShowAll = !a.help.ShowAll
		}
		return a, nil

	case tickMsg:
		a.recompute()
		return a, tick()
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active

	countStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 3)

	days := a.breakdown.TotalDays
	if days < 0 {
		days = 0
	}
	_, relative := cli.FormatElapsed(a.breakdown, a.lang, a.msgs)

	var b strings.Builder
	b.WriteString(countStyle.Render(cli.FormatNumber(int64(days)) + " " + a.msgs.Text(i18n.Days, a.lang)))
	b.WriteString("\n\n")
	b.WriteString(valueStyle.Render(relative))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(a.msgs.Text(i18n.Since, a.lang) + " " + a.ref.String()))

	card := cardStyle.Render(b.String())
	h := a.help
	h.Styles = helpStyles(t)
	footer := h.View(keys)

	if a.width == 0 || a.height == 0 {
		return card + "\n" + footer
	}
	body := lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, card)
	return body + "\n" + footer
}

// helpStyles colors the key help footer from the theme.
func helpStyles(t theme.Theme) help.Styles {
	keyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	return help.Styles{
		Ellipsis:       dim,
		ShortKey:       keyStyle,
		ShortDesc:      dim,
		ShortSeparator: dim,
		FullKey:        keyStyle,
		FullDesc:       dim,
		FullSeparator:  dim,
	}
}
