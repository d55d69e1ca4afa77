package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder  = lipgloss.Color("#282726")
	ColorTextDim = lipgloss.Color("#575653")
	ColorText    = lipgloss.Color("#FFFCF0")
	ColorAccent  = lipgloss.Color("#3AA99F")
	ColorGreen   = lipgloss.Color("#879A39")
	ColorOrange  = lipgloss.Color("#DA702C")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// resultWidth matches the 40-column rule printed around results.
const resultWidth = 40

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(resultWidth).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderResult frames the result lines between two horizontal rules.
func RenderResult(lines ...string) string {
	rule := dimStyle.Render(strings.Repeat("-", resultWidth))

	var b strings.Builder
	b.WriteString(rule)
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString(resultStyle.Render(l))
		b.WriteString("\n")
	}
	b.WriteString(rule)
	return b.String()
}

// RenderWarning renders a "! message" line in the warning color.
func RenderWarning(msg string) string {
	return warnStyle.Render("! " + msg)
}

// RenderTable renders a bordered table. Headers use the accent color and
// every column after the first is right-aligned.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 && len(headers) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cellStyle
			if row == table.HeaderRow {
				s = headerStyle
			}
			if col > 0 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	return t.Render() + "\n"
}
