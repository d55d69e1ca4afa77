package calendar

import "github.com/theirongolddev/sobriety/internal/model"

// Breakdown is the elapsed time between a reference date and today.
type Breakdown struct {
	TotalDays int
	Years     int
	Months    int
	Days      int
}

// Elapsed computes the whole-day count and the calendar-aware
// (years, months, days) split from ref to today.
//
// The month count is the largest number of whole months such that ref
// advanced by it (day clamped to month end) does not pass today; the
// remaining days are counted on the real calendar. Advance(ref, result)
// therefore lands exactly on today. A ref after today yields non-positive
// components.
func Elapsed(ref, today model.Date) Breakdown {
	months := (today.Year-ref.Year)*12 + (today.Month - ref.Month)
	anchor := AddMonths(ref, months)

	if today.Before(ref) {
		for anchor.Before(today) {
			months++
			anchor = AddMonths(ref, months)
		}
	} else {
		for today.Before(anchor) {
			months--
			anchor = AddMonths(ref, months)
		}
	}

	return Breakdown{
		TotalDays: DaysBetween(ref, today),
		Years:     months / 12,
		Months:    months % 12,
		Days:      DaysBetween(anchor, today),
	}
}

// Advance applies b's years and months to ref in one step, then its days.
func Advance(ref model.Date, b Breakdown) model.Date {
	return AddDays(AddMonths(ref, b.Years*12+b.Months), b.Days)
}
