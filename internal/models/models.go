package models

import "time"

// DateLayout is the canonical day-key format used in the report and in
// persisted date strings: zero-padded day, three-letter month, 4-digit year.
const DateLayout = "02 Jan 2006"

// Day truncates t to calendar-day granularity in UTC. All record dates go
// through Day so that map keys compare equal.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a date string in DateLayout into a day-granular time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// DailyRecord - one day's contribution
type DailyRecord struct {
	Date   time.Time
	Saved  bool
	Amount int64 // whole rupiah, no minor units
}

// RecordSet maps day-granular dates to records. At most one record per date.
type RecordSet map[time.Time]DailyRecord

// TargetConfig - the user's savings plan, zero or one per user
type TargetConfig struct {
	StartDate    time.Time
	DurationDays int
	PerDayAmount int64
}

// TotalTarget is always derived, never stored independently.
func (c TargetConfig) TotalTarget() int64 {
	return int64(c.DurationDays) * c.PerDayAmount
}

// EndDate is the exclusive end of the target window.
func (c TargetConfig) EndDate() time.Time {
	return Day(c.StartDate).AddDate(0, 0, c.DurationDays)
}

// Progress - derived state of a target as of a given day
type Progress struct {
	ElapsedDays     int
	RemainingDays   int
	TimeProgress    float64 // elapsed / duration, in [0,1]
	ExpectedAmount  int64
	ActualAmount    int64
	SavingsProgress float64 // actual / expected, capped at 1
	Shortfall       int64   // actual - expected, negative when behind
}

// MonthlyStats - aggregate over one calendar month
type MonthlyStats struct {
	Year        int
	Month       time.Month
	SavedDays   int
	TotalAmount int64
	DaysPassed  int     // days from month start through today, or full month
	Percentage  float64 // savedDays / daysPassed * 100
}
