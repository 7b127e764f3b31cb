package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMemoryStoreRecordsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	records, err := store.Records(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, records, "unknown user must yield an empty set, not an error")

	want := models.RecordSet{
		day(2025, time.May, 1): {Date: day(2025, time.May, 1), Saved: true, Amount: 1000},
		day(2025, time.May, 2): {Date: day(2025, time.May, 2), Saved: false, Amount: 0},
	}
	for _, rec := range want {
		require.NoError(t, store.SetRecord(ctx, 42, rec))
	}

	got, err := store.Records(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Snapshots are copies; mutating one must not leak into the store.
	got[day(2025, time.May, 3)] = models.DailyRecord{Date: day(2025, time.May, 3), Saved: true}
	again, err := store.Records(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, again, 2)
}

func TestMemoryStoreSetRecordUpserts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	d := day(2025, time.May, 1)

	require.NoError(t, store.SetRecord(ctx, 1, models.DailyRecord{Date: d, Saved: true, Amount: 500}))
	require.NoError(t, store.SetRecord(ctx, 1, models.DailyRecord{Date: d, Saved: true, Amount: 900}))

	records, err := store.Records(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(900), records[d].Amount)
}

func TestMemoryStoreDeleteRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	d := day(2025, time.May, 1)
	require.NoError(t, store.SetRecord(ctx, 1, models.DailyRecord{Date: d, Saved: true, Amount: 100}))
	require.NoError(t, store.DeleteRecords(ctx, 1))

	records, err := store.Records(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMemoryStoreTargetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Target(ctx, 7)
	assert.ErrorIs(t, err, ErrNoTarget)

	cfg := models.TargetConfig{
		StartDate:    day(2025, time.May, 1),
		DurationDays: 90,
		PerDayAmount: 10000,
	}
	require.NoError(t, store.SetTarget(ctx, 7, cfg))

	got, err := store.Target(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, cfg, *got)
	assert.Equal(t, int64(900000), got.TotalTarget())

	require.NoError(t, store.DeleteTarget(ctx, 7))
	assert.ErrorIs(t, store.DeleteTarget(ctx, 7), ErrNoTarget)
	_, err = store.Target(ctx, 7)
	assert.ErrorIs(t, err, ErrNoTarget)
}

func TestMemoryStoreListUsers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SetRecord(ctx, 2, models.DailyRecord{Date: day(2025, time.May, 1), Saved: true, Amount: 100}))
	require.NoError(t, store.SetTarget(ctx, 1, models.TargetConfig{
		StartDate: day(2025, time.May, 1), DurationDays: 10, PerDayAmount: 100,
	}))

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, users)
}

func TestMemoryStoreStatePartitionedByUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	d := day(2025, time.May, 1)
	require.NoError(t, store.SetRecord(ctx, 1, models.DailyRecord{Date: d, Saved: true, Amount: 100}))

	records, err := store.Records(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, records)
}
