package savings

import (
	"time"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
)

// TargetProgress derives the state of a target as of today.
//
// Elapsed days count from the start date inclusive and never exceed the
// duration. Expected amount is per-day amount times elapsed days. Actual
// amount sums saved records inside [start, start+duration) only; saved days
// outside the window never count. The savings ratio is actual/expected capped
// at 1 ("on pace"), not actual/total-target, which would conflate time and
// completion. Both ratios are clamped to [0,1].
func TargetProgress(target models.TargetConfig, records models.RecordSet, today time.Time) models.Progress {
	day := models.Day(today)
	start := models.Day(target.StartDate)
	end := target.EndDate()

	elapsed := 0
	if !day.Before(start) {
		elapsed = int(day.Sub(start).Hours()/24) + 1
		if elapsed > target.DurationDays {
			elapsed = target.DurationDays
		}
	}

	timeProgress := 0.0
	if target.DurationDays > 0 {
		timeProgress = clamp01(float64(elapsed) / float64(target.DurationDays))
	}

	expected := target.PerDayAmount * int64(elapsed)

	var actual int64
	for _, rec := range records {
		if !rec.Saved {
			continue
		}
		d := models.Day(rec.Date)
		if d.Before(start) || !d.Before(end) {
			continue
		}
		actual += rec.Amount
	}

	savingsProgress := 0.0
	if expected > 0 {
		savingsProgress = clamp01(float64(actual) / float64(expected))
	}

	return models.Progress{
		ElapsedDays:     elapsed,
		RemainingDays:   target.DurationDays - elapsed,
		TimeProgress:    timeProgress,
		ExpectedAmount:  expected,
		ActualAmount:    actual,
		SavingsProgress: savingsProgress,
		Shortfall:       actual - expected,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
