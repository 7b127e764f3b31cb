package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
	"github.com/kasihagustinusT/Buku-Tabungan/internal/repository"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(today time.Time) (*SavingsService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	svc := NewSavingsService(store, store, zap.NewNop())
	svc.now = func() time.Time { return today }
	return svc, store
}

func TestMarkTodayTwiceFails(t *testing.T) {
	ctx := context.Background()
	today := day(2025, time.May, 10)
	svc, store := newTestService(today)

	rec, err := svc.MarkToday(ctx, 1, 5000)
	require.NoError(t, err)
	assert.Equal(t, today, rec.Date)
	assert.True(t, rec.Saved)

	_, err = svc.MarkToday(ctx, 1, 7000)
	assert.ErrorIs(t, err, ErrAlreadyRecorded)

	// The stored record is unchanged by the failed second call.
	records, err := store.Records(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), records[today].Amount)
}

func TestMarkPreviousDay(t *testing.T) {
	ctx := context.Background()
	today := day(2025, time.May, 10)
	svc, store := newTestService(today)

	rec, err := svc.MarkPreviousDay(ctx, 1, 3000, 1)
	require.NoError(t, err)
	assert.Equal(t, day(2025, time.May, 9), rec.Date)

	records, err := store.Records(ctx, 1)
	require.NoError(t, err)
	assert.True(t, records[day(2025, time.May, 9)].Saved)

	_, err = svc.MarkPreviousDay(ctx, 1, 3000, 1)
	assert.ErrorIs(t, err, ErrAlreadyRecorded)
}

func TestMarkPreviousDayOffsetLimits(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(day(2025, time.May, 10))

	for _, offset := range []int{0, -1, 2, 30} {
		_, err := svc.MarkPreviousDay(ctx, 1, 1000, offset)
		assert.ErrorIs(t, err, ErrInvalidInput, "offset %d", offset)
	}
}

func TestMarkDayRejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(day(2025, time.May, 10))

	_, err := svc.MarkToday(ctx, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.MarkToday(ctx, 1, -100)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetTargetValidation(t *testing.T) {
	ctx := context.Background()
	today := day(2025, time.May, 10)
	svc, _ := newTestService(today)

	tests := []struct {
		name     string
		start    time.Time
		duration int
		perDay   int64
	}{
		{"zero duration", today, 0, 1000},
		{"negative duration", today, -5, 1000},
		{"zero amount", today, 30, 0},
		{"future start date", today.AddDate(0, 0, 1), 30, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetTarget(ctx, 1, tt.start, tt.duration, tt.perDay)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSetTargetReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	today := day(2025, time.May, 10)
	svc, _ := newTestService(today)

	_, err := svc.SetTarget(ctx, 1, day(2025, time.May, 1), 30, 5000)
	require.NoError(t, err)

	cfg, err := svc.SetTarget(ctx, 1, day(2025, time.May, 5), 90, 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(900000), cfg.TotalTarget())

	stored, err := svc.Target(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 90, stored.DurationDays)
	assert.Equal(t, day(2025, time.May, 5), stored.StartDate)
}

func TestProgressWithoutTarget(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(day(2025, time.May, 10))

	_, err := svc.Progress(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNoTarget)
}

func TestProgressScenario(t *testing.T) {
	ctx := context.Background()
	start := day(2025, time.May, 1)
	svc, store := newTestService(start.AddDate(0, 0, 4))

	_, err := svc.SetTarget(ctx, 1, start, 10, 1000)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		d := start.AddDate(0, 0, i)
		require.NoError(t, store.SetRecord(ctx, 1, models.DailyRecord{Date: d, Saved: true, Amount: 1000}))
	}

	progress, err := svc.Progress(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, progress.ElapsedDays)
	assert.Equal(t, int64(5000), progress.ExpectedAmount)
	assert.Equal(t, int64(5000), progress.ActualAmount)
	assert.Equal(t, 1.0, progress.SavingsProgress)
	assert.Equal(t, 5, progress.RemainingDays)
}

func TestResetTargetWithoutTarget(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(day(2025, time.May, 10))

	assert.ErrorIs(t, svc.ResetTarget(ctx, 1), repository.ErrNoTarget)
}

func TestMonthlyStatsDefaultsToCurrentMonth(t *testing.T) {
	ctx := context.Background()
	today := day(2025, time.May, 10)
	svc, _ := newTestService(today)

	_, err := svc.MarkToday(ctx, 1, 2500)
	require.NoError(t, err)

	stats, err := svc.MonthlyStats(ctx, 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2025, stats.Year)
	assert.Equal(t, time.May, stats.Month)
	assert.Equal(t, 1, stats.SavedDays)
	assert.Equal(t, int64(2500), stats.TotalAmount)
	assert.Equal(t, 10, stats.DaysPassed)
	assert.InDelta(t, 10.0, stats.Percentage, 0.001)
}

func TestMonthlyStatsNoRecords(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(day(2025, time.May, 10))

	streak, err := svc.Streak(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)

	stats, err := svc.MonthlyStats(ctx, 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.SavedDays)
	assert.Equal(t, 0.0, stats.Percentage)
}

func TestResetRecords(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(day(2025, time.May, 10))

	_, err := svc.MarkToday(ctx, 1, 1000)
	require.NoError(t, err)
	require.NoError(t, svc.ResetRecords(ctx, 1))

	streak, err := svc.Streak(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestExportReport(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(day(2025, time.May, 10))

	_, err := svc.MarkPreviousDay(ctx, 1, 1000, 1)
	require.NoError(t, err)
	_, err = svc.MarkToday(ctx, 1, 2000)
	require.NoError(t, err)

	data, err := svc.ExportReport(ctx, 1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Saved,Amount", lines[0])
	assert.Equal(t, "09 May 2025,yes,1000", lines[1])
	assert.Equal(t, "10 May 2025,yes,2000", lines[2])
}

func TestUsersNeedingReminder(t *testing.T) {
	ctx := context.Background()
	today := day(2025, time.May, 10)
	svc, store := newTestService(today)

	// User 1 saved today, user 2 has not, user 3 only has a target.
	_, err := svc.MarkToday(ctx, 1, 1000)
	require.NoError(t, err)
	require.NoError(t, store.SetRecord(ctx, 2, models.DailyRecord{
		Date: day(2025, time.May, 9), Saved: true, Amount: 1000,
	}))
	require.NoError(t, store.SetTarget(ctx, 3, models.TargetConfig{
		StartDate: day(2025, time.May, 1), DurationDays: 30, PerDayAmount: 1000,
	}))

	users, err := svc.UsersNeedingReminder(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, users)
}
