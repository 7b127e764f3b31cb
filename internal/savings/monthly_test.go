package savings

import (
	"testing"
	"time"
)

func TestMonthlySummaryEmpty(t *testing.T) {
	got := MonthlySummary(nil, 2025, time.May, day(2025, time.May, 15))

	if got.SavedDays != 0 || got.TotalAmount != 0 {
		t.Fatalf("SavedDays/TotalAmount = %d/%d, want 0/0", got.SavedDays, got.TotalAmount)
	}
	if got.Percentage != 0.0 {
		t.Fatalf("Percentage = %f, want 0.0", got.Percentage)
	}
	if got.DaysPassed != 15 {
		t.Fatalf("DaysPassed = %d, want 15", got.DaysPassed)
	}
}

func TestMonthlySummaryCurrentMonth(t *testing.T) {
	records := recordsOn(2000,
		day(2025, time.May, 1),
		day(2025, time.May, 2),
		day(2025, time.May, 5),
		day(2025, time.April, 30), // other month, excluded
	)

	got := MonthlySummary(records, 2025, time.May, day(2025, time.May, 10))

	if got.SavedDays != 3 {
		t.Fatalf("SavedDays = %d, want 3", got.SavedDays)
	}
	if got.TotalAmount != 6000 {
		t.Fatalf("TotalAmount = %d, want 6000", got.TotalAmount)
	}
	if got.DaysPassed != 10 {
		t.Fatalf("DaysPassed = %d, want 10", got.DaysPassed)
	}
	if got.Percentage != 30.0 {
		t.Fatalf("Percentage = %f, want 30.0", got.Percentage)
	}
}

func TestMonthlySummaryPastMonthUsesFullLength(t *testing.T) {
	records := recordsOn(1000,
		day(2025, time.February, 14),
	)

	got := MonthlySummary(records, 2025, time.February, day(2025, time.May, 10))

	if got.DaysPassed != 28 {
		t.Fatalf("DaysPassed = %d, want 28", got.DaysPassed)
	}
	if got.SavedDays != 1 {
		t.Fatalf("SavedDays = %d, want 1", got.SavedDays)
	}
}

func TestMonthlySummaryFutureMonth(t *testing.T) {
	got := MonthlySummary(nil, 2025, time.December, day(2025, time.May, 10))

	if got.DaysPassed != 0 {
		t.Fatalf("DaysPassed = %d, want 0", got.DaysPassed)
	}
	if got.Percentage != 0.0 {
		t.Fatalf("Percentage = %f, want 0.0 with zero denominator", got.Percentage)
	}
}
