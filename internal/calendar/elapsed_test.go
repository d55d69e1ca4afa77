package calendar

import (
	"testing"

	"github.com/theirongolddev/sobriety/internal/model"
)

func TestElapsed(t *testing.T) {
	tests := []struct {
		name  string
		ref   model.Date
		today model.Date
		want  Breakdown
	}{
		{
			name:  "leap day to day before anniversary",
			ref:   model.NewDate(2020, 2, 29),
			today: model.NewDate(2024, 2, 28),
			want:  Breakdown{TotalDays: 1460, Years: 3, Months: 11, Days: 30},
		},
		{
			name:  "month end into short month",
			ref:   model.NewDate(2023, 1, 31),
			today: model.NewDate(2023, 3, 1),
			want:  Breakdown{TotalDays: 29, Years: 0, Months: 1, Days: 1},
		},
		{
			name:  "leap day anniversary",
			ref:   model.NewDate(2020, 2, 29),
			today: model.NewDate(2024, 2, 29),
			want:  Breakdown{TotalDays: 1461, Years: 4},
		},
		{
			name:  "leap day to non-leap march",
			ref:   model.NewDate(2020, 2, 29),
			today: model.NewDate(2021, 3, 1),
			want:  Breakdown{TotalDays: 366, Years: 1, Days: 1},
		},
		{
			name:  "single day",
			ref:   model.NewDate(2023, 12, 31),
			today: model.NewDate(2024, 1, 1),
			want:  Breakdown{TotalDays: 1, Days: 1},
		},
		{
			name:  "year boundary borrow",
			ref:   model.NewDate(2022, 12, 15),
			today: model.NewDate(2024, 1, 10),
			want:  Breakdown{TotalDays: 391, Years: 1, Days: 26},
		},
		{
			name:  "same day",
			ref:   model.NewDate(2024, 5, 5),
			today: model.NewDate(2024, 5, 5),
			want:  Breakdown{},
		},
		{
			name:  "one year one month five days",
			ref:   model.NewDate(2022, 3, 10),
			today: model.NewDate(2023, 4, 15),
			want:  Breakdown{TotalDays: 401, Years: 1, Months: 1, Days: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Elapsed(tt.ref, tt.today)
			if got != tt.want {
				t.Fatalf("Elapsed(%v, %v) = %+v, want %+v", tt.ref, tt.today, got, tt.want)
			}
		})
	}
}

func TestElapsedTenDays(t *testing.T) {
	today := model.NewDate(2024, 3, 5)
	ref := AddDays(today, -10)
	if got := Elapsed(ref, today).TotalDays; got != 10 {
		t.Fatalf("TotalDays = %d, want 10", got)
	}
}

// Every (ref, today) pair over a window spanning leap and non-leap years must
// reconstruct today exactly and keep each component in its natural range.
func TestElapsedReconstructsToday(t *testing.T) {
	todays := []model.Date{
		model.NewDate(2024, 2, 28),
		model.NewDate(2024, 2, 29),
		model.NewDate(2024, 3, 1),
		model.NewDate(2023, 3, 1),
		model.NewDate(2023, 12, 31),
		model.NewDate(2024, 1, 1),
		model.NewDate(2024, 4, 30),
		model.NewDate(2024, 5, 31),
	}

	for _, today := range todays {
		for ref := model.NewDate(2019, 1, 1); ref.Before(today); ref = AddDays(ref, 1) {
			b := Elapsed(ref, today)

			if b.TotalDays < 1 {
				t.Fatalf("ref=%v today=%v: TotalDays = %d, want >= 1", ref, today, b.TotalDays)
			}
			if b.Years < 0 || b.Months < 0 || b.Months > 11 || b.Days < 0 {
				t.Fatalf("ref=%v today=%v: out-of-range breakdown %+v", ref, today, b)
			}
			if got := Advance(ref, b); got != today {
				t.Fatalf("ref=%v today=%v: Advance(%+v) = %v", ref, today, b, got)
			}
			// One more month would overshoot, so the split is minimal.
			if next := AddMonths(ref, b.Years*12+b.Months+1); !today.Before(next) {
				t.Fatalf("ref=%v today=%v: breakdown %+v is not minimal", ref, today, b)
			}
		}
	}
}
