package savings

import (
	"time"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
)

// MonthlySummary aggregates records for one calendar month. The completion
// denominator is the number of days passed in that month: through today for
// the current month, the full month length for a past month, zero for a
// future month.
func MonthlySummary(records models.RecordSet, year int, month time.Month, today time.Time) models.MonthlyStats {
	day := models.Day(today)
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	var daysPassed int
	switch {
	case day.Before(monthStart):
		daysPassed = 0
	case day.Year() == year && day.Month() == month:
		daysPassed = day.Day()
	default:
		daysPassed = daysInMonth
	}

	stats := models.MonthlyStats{
		Year:       year,
		Month:      month,
		DaysPassed: daysPassed,
	}

	for _, rec := range records {
		if !rec.Saved {
			continue
		}
		d := models.Day(rec.Date)
		if d.Year() != year || d.Month() != month {
			continue
		}
		stats.SavedDays++
		stats.TotalAmount += rec.Amount
	}

	if daysPassed > 0 {
		stats.Percentage = float64(stats.SavedDays) / float64(daysPassed) * 100
	}
	return stats
}
