package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
)

type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Records returns the full record set for a user. Unknown users get an empty
// set, never an error.
func (r *RecordRepository) Records(ctx context.Context, userID int64) (models.RecordSet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT record_date, saved, amount FROM daily_records WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	defer rows.Close()

	records := make(models.RecordSet)
	for rows.Next() {
		rec := models.DailyRecord{}
		if err := rows.Scan(&rec.Date, &rec.Saved, &rec.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.Date = models.Day(rec.Date)
		records[rec.Date] = rec
	}

	return records, rows.Err()
}

// SetRecord upserts one daily record.
func (r *RecordRepository) SetRecord(ctx context.Context, userID int64, rec models.DailyRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO daily_records (user_id, record_date, saved, amount) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, record_date) DO UPDATE SET saved = EXCLUDED.saved, amount = EXCLUDED.amount, updated_at = CURRENT_TIMESTAMP`,
		userID, models.Day(rec.Date), rec.Saved, rec.Amount)
	if err != nil {
		return fmt.Errorf("failed to set record: %w", err)
	}
	return nil
}

// DeleteRecords removes all records for a user (bulk reset).
func (r *RecordRepository) DeleteRecords(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM daily_records WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	return nil
}

// ListUsers enumerates every user known to either store.
func (r *RecordRepository) ListUsers(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT user_id FROM daily_records UNION SELECT user_id FROM savings_targets`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		users = append(users, id)
	}

	return users, rows.Err()
}
