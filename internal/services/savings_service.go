package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
	"github.com/kasihagustinusT/Buku-Tabungan/internal/report"
	"github.com/kasihagustinusT/Buku-Tabungan/internal/savings"
)

var (
	// ErrAlreadyRecorded - the day is already marked as saved.
	ErrAlreadyRecorded = errors.New("day already recorded")
	// ErrInvalidInput - non-positive duration/amount, bad date, future start.
	ErrInvalidInput = errors.New("invalid input")
)

// Backfill is limited to yesterday.
const maxBackfillDays = 1

// RecordStore is the persistence contract for daily records.
type RecordStore interface {
	Records(ctx context.Context, userID int64) (models.RecordSet, error)
	SetRecord(ctx context.Context, userID int64, rec models.DailyRecord) error
	DeleteRecords(ctx context.Context, userID int64) error
	ListUsers(ctx context.Context) ([]int64, error)
}

// TargetStore is the persistence contract for target configurations.
type TargetStore interface {
	Target(ctx context.Context, userID int64) (*models.TargetConfig, error)
	SetTarget(ctx context.Context, userID int64, cfg models.TargetConfig) error
	DeleteTarget(ctx context.Context, userID int64) error
}

// SavingsService is the command surface the front-end dispatches to. Write
// paths are serialized per user: record writes are read-modify-write against
// the stored set, so concurrent duplicate taps would otherwise race.
type SavingsService struct {
	records RecordStore
	targets TargetStore
	logger  *zap.Logger

	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex

	now func() time.Time
}

func NewSavingsService(records RecordStore, targets TargetStore, logger *zap.Logger) *SavingsService {
	return &SavingsService{
		records: records,
		targets: targets,
		logger:  logger,
		locks:   make(map[int64]*sync.Mutex),
		now:     time.Now,
	}
}

func (s *SavingsService) userLock(userID int64) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, exists := s.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// Today returns the current calendar day.
func (s *SavingsService) Today() time.Time {
	return models.Day(s.now())
}

// MarkToday records today's contribution. Fails with ErrAlreadyRecorded when
// today is already saved; the stored record stays unchanged in that case.
func (s *SavingsService) MarkToday(ctx context.Context, userID int64, amount int64) (*models.DailyRecord, error) {
	return s.markDay(ctx, userID, amount, s.Today())
}

// MarkPreviousDay records a contribution for today - offsetDays. Only
// yesterday may be backfilled.
func (s *SavingsService) MarkPreviousDay(ctx context.Context, userID int64, amount int64, offsetDays int) (*models.DailyRecord, error) {
	if offsetDays < 1 || offsetDays > maxBackfillDays {
		return nil, fmt.Errorf("%w: backfill offset must be between 1 and %d", ErrInvalidInput, maxBackfillDays)
	}
	return s.markDay(ctx, userID, amount, s.Today().AddDate(0, 0, -offsetDays))
}

func (s *SavingsService) markDay(ctx context.Context, userID int64, amount int64, day time.Time) (*models.DailyRecord, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	records, err := s.records.Records(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing, ok := records[day]; ok && existing.Saved {
		return nil, ErrAlreadyRecorded
	}

	rec := models.DailyRecord{Date: day, Saved: true, Amount: amount}
	if err := s.records.SetRecord(ctx, userID, rec); err != nil {
		return nil, err
	}

	s.logger.Info("contribution recorded",
		zap.Int64("user_id", userID),
		zap.String("date", day.Format(models.DateLayout)),
		zap.Int64("amount", amount))
	return &rec, nil
}

// Records returns the user's full record set.
func (s *SavingsService) Records(ctx context.Context, userID int64) (models.RecordSet, error) {
	return s.records.Records(ctx, userID)
}

// ResetRecords clears every record for a user.
func (s *SavingsService) ResetRecords(ctx context.Context, userID int64) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.records.DeleteRecords(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("records reset", zap.Int64("user_id", userID))
	return nil
}

// Streak returns the current consecutive-day streak.
func (s *SavingsService) Streak(ctx context.Context, userID int64) (int, error) {
	records, err := s.records.Records(ctx, userID)
	if err != nil {
		return 0, err
	}
	return savings.Streak(records), nil
}

// Target returns the user's active target, or repository.ErrNoTarget.
func (s *SavingsService) Target(ctx context.Context, userID int64) (*models.TargetConfig, error) {
	return s.targets.Target(ctx, userID)
}

// Progress derives target progress as of today. Fails with
// repository.ErrNoTarget when no target is configured.
func (s *SavingsService) Progress(ctx context.Context, userID int64) (*models.Progress, error) {
	target, err := s.targets.Target(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.records.Records(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress := savings.TargetProgress(*target, records, s.Today())
	return &progress, nil
}

// MonthlyStats aggregates a calendar month. Zero year means the current
// month.
func (s *SavingsService) MonthlyStats(ctx context.Context, userID int64, year int, month time.Month) (*models.MonthlyStats, error) {
	today := s.Today()
	if year == 0 {
		year, month = today.Year(), today.Month()
	}

	records, err := s.records.Records(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := savings.MonthlySummary(records, year, month, today)
	return &stats, nil
}

// SetTarget validates and stores a new target configuration, replacing any
// existing one wholesale.
func (s *SavingsService) SetTarget(ctx context.Context, userID int64, startDate time.Time, durationDays int, perDayAmount int64) (*models.TargetConfig, error) {
	if durationDays <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if perDayAmount <= 0 {
		return nil, fmt.Errorf("%w: per-day amount must be positive", ErrInvalidInput)
	}
	start := models.Day(startDate)
	if start.After(s.Today()) {
		return nil, fmt.Errorf("%w: start date must not be in the future", ErrInvalidInput)
	}

	cfg := models.TargetConfig{
		StartDate:    start,
		DurationDays: durationDays,
		PerDayAmount: perDayAmount,
	}
	if err := s.targets.SetTarget(ctx, userID, cfg); err != nil {
		return nil, err
	}

	s.logger.Info("target configured",
		zap.Int64("user_id", userID),
		zap.String("start", start.Format(models.DateLayout)),
		zap.Int("duration_days", durationDays),
		zap.Int64("per_day", perDayAmount))
	return &cfg, nil
}

// ResetTarget deletes the active target. repository.ErrNoTarget when none
// exists.
func (s *SavingsService) ResetTarget(ctx context.Context, userID int64) error {
	if err := s.targets.DeleteTarget(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("target reset", zap.Int64("user_id", userID))
	return nil
}

// ExportReport renders the user's full history as a CSV document.
func (s *SavingsService) ExportReport(ctx context.Context, userID int64) ([]byte, error) {
	records, err := s.records.Records(ctx, userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UsersNeedingReminder lists known users who have not saved today.
func (s *SavingsService) UsersNeedingReminder(ctx context.Context) ([]int64, error) {
	users, err := s.records.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	today := s.Today()
	var pending []int64
	for _, userID := range users {
		records, err := s.records.Records(ctx, userID)
		if err != nil {
			return nil, err
		}
		if rec, ok := records[today]; ok && rec.Saved {
			continue
		}
		pending = append(pending, userID)
	}
	return pending, nil
}
