// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/sobriety/internal/calendar"
	"github.com/theirongolddev/sobriety/internal/i18n"
)

// FormatElapsed renders the elapsed time as two lines: the total day count
// and the years/months/days split.
//
// Zero years and months are omitted. Days are omitted when zero unless
// nothing else would be shown. English joins the last part with "and";
// Russian uses commas only. Labels are not inflected for count.
func FormatElapsed(b calendar.Breakdown, lang i18n.Lang, msgs i18n.Table) (string, string) {
	total := fmt.Sprintf("%s: %d", msgs.Text(i18n.DaysFrom, lang), b.TotalDays)

	var parts []string
	if b.Years > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", b.Years, msgs.Text(i18n.Years, lang)))
	}
	if b.Months > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", b.Months, msgs.Text(i18n.Months, lang)))
	}
	if b.Days > 0 || len(parts) == 0 {
		days := b.Days
		if days < 0 {
			days = 0
		}
		parts = append(parts, fmt.Sprintf("%d %s", days, msgs.Text(i18n.Days, lang)))
	}

	return total, fmt.Sprintf("%s: %s", msgs.Text(i18n.WhichIs, lang), joinParts(parts, lang, msgs))
}

func joinParts(parts []string, lang i18n.Lang, msgs i18n.Table) string {
	if lang != i18n.EN || len(parts) < 2 {
		return strings.Join(parts, ", ")
	}
	last := len(parts) - 1
	return fmt.Sprintf("%s %s %s", strings.Join(parts[:last], ", "), msgs.Text(i18n.And, lang), parts[last])
}

// FormatEnteredDate renders an accepted date with two-digit day and month,
// e.g. "You entered the date: day 04, month 07, year 2023".
func FormatEnteredDate(day, month, year int, lang i18n.Lang, msgs i18n.Table) string {
	return fmt.Sprintf("%s: %s %02d, %s %02d, %s %d",
		msgs.Text(i18n.EnteredDate, lang),
		msgs.Text(i18n.Day, lang), day,
		msgs.Text(i18n.Month, lang), month,
		msgs.Text(i18n.Year, lang), year,
	)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
