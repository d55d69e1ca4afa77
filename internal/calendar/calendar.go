// Package calendar holds the Gregorian calendar rules and the elapsed-time
// arithmetic between a reference date and today.
package calendar

import (
	"time"

	"github.com/theirongolddev/sobriety/internal/model"
)

// MinYear is the earliest year accepted for a reference date.
const MinYear = 1900

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month (1-12) of year.
// It returns 0 for a month outside 1-12.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	}
	return 0
}

// Valid reports whether d names a real calendar date no earlier than MinYear.
func Valid(d model.Date) bool {
	if d.Year < MinYear || d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// AddMonths moves d by n months, clamping the day to the last day of the
// target month (Jan 31 + 1 month = Feb 28/29).
func AddMonths(d model.Date, n int) model.Date {
	total := d.Year*12 + (d.Month - 1) + n
	y, m := floorDiv(total, 12), floorMod(total, 12)+1
	day := d.Day
	if last := DaysInMonth(y, m); day > last {
		day = last
	}
	return model.NewDate(y, m, day)
}

// AddDays moves d by n days.
func AddDays(d model.Date, n int) model.Date {
	return model.DateOf(d.Time().AddDate(0, 0, n))
}

// DaysBetween returns to - from in whole days. It works on Unix seconds so
// spans longer than time.Duration can hold (~292 years) stay exact.
func DaysBetween(from, to model.Date) int {
	return int((to.Time().Unix() - from.Time().Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// Today returns the local calendar date of now.
func Today(now func() time.Time) model.Date {
	if now == nil {
		now = time.Now
	}
	return model.DateOf(now())
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
