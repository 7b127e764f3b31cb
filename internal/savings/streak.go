// Package savings contains the pure calculators of the tracker: streaks,
// target progress and monthly aggregates. All functions operate on a record
// snapshot passed in by the caller and keep no state.
package savings

import (
	"sort"
	"time"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
)

// Streak returns the length of the consecutive-day run of saved records
// ending at the most recent saved date. The streak is anchored to that date,
// not to today: a day missed since the last save does not zero the streak
// until a later save starts a new run.
func Streak(records models.RecordSet) int {
	var days []time.Time
	for _, rec := range records {
		if rec.Saved {
			days = append(days, models.Day(rec.Date))
		}
	}
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i].AddDate(0, 0, 1).Equal(days[i-1]) {
			break
		}
		streak++
	}
	return streak
}
