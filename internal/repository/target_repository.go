package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
)

type TargetRepository struct {
	db *sql.DB
}

func NewTargetRepository(db *sql.DB) *TargetRepository {
	return &TargetRepository{db: db}
}

// Target returns the user's active target configuration, or ErrNoTarget.
func (r *TargetRepository) Target(ctx context.Context, userID int64) (*models.TargetConfig, error) {
	cfg := &models.TargetConfig{}
	err := r.db.QueryRowContext(ctx,
		`SELECT start_date, duration_days, per_day_amount FROM savings_targets WHERE user_id = $1`, userID,
	).Scan(&cfg.StartDate, &cfg.DurationDays, &cfg.PerDayAmount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoTarget
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load target: %w", err)
	}
	cfg.StartDate = models.Day(cfg.StartDate)
	return cfg, nil
}

// SetTarget replaces the user's target wholesale.
func (r *TargetRepository) SetTarget(ctx context.Context, userID int64, cfg models.TargetConfig) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO savings_targets (user_id, start_date, duration_days, per_day_amount) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET start_date = EXCLUDED.start_date, duration_days = EXCLUDED.duration_days, per_day_amount = EXCLUDED.per_day_amount, updated_at = CURRENT_TIMESTAMP`,
		userID, models.Day(cfg.StartDate), cfg.DurationDays, cfg.PerDayAmount)
	if err != nil {
		return fmt.Errorf("failed to set target: %w", err)
	}
	return nil
}

// DeleteTarget removes the user's target. ErrNoTarget when nothing existed.
func (r *TargetRepository) DeleteTarget(ctx context.Context, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM savings_targets WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete target: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrNoTarget
	}
	return nil
}
