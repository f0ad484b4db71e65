package postgres

import (
	"context"
	"database/sql"
	"time"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

// SleepPostgres is a PostgreSQL implementation of repository.SleepRepository.
type SleepPostgres struct {
	db *sql.DB
}

// NewSleepPostgres creates a new SleepPostgres repository.
func NewSleepPostgres(db *sql.DB) *SleepPostgres {
	return &SleepPostgres{db: db}
}

var _ repository.SleepRepository = (*SleepPostgres)(nil)

// Create inserts a new sleep session row and returns the stored record.
func (r *SleepPostgres) Create(ctx context.Context, s *model.SleepSession) (*model.SleepSession, error) {
	const q = `
		INSERT INTO sleep_sessions (id, user_id, bed_time, wake_time, quality, awakenings, duration_min, efficiency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, bed_time, wake_time, quality, awakenings, duration_min, efficiency
	`
	row := r.db.QueryRowContext(ctx, q,
		s.ID, s.UserID, s.BedTime, s.WakeTime, s.Quality, s.Awakenings, s.DurationMin, s.Efficiency,
	)
	var out model.SleepSession
	if err := row.Scan(
		&out.ID, &out.UserID, &out.BedTime, &out.WakeTime,
		&out.Quality, &out.Awakenings, &out.DurationMin, &out.Efficiency,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSince returns a user's sessions with bed_time >= since, newest first.
func (r *SleepPostgres) ListSince(ctx context.Context, userID string, since time.Time) ([]model.SleepSession, error) {
	const q = `
		SELECT id, user_id, bed_time, wake_time, quality, awakenings, duration_min, efficiency
		FROM sleep_sessions
		WHERE user_id = $1 AND bed_time >= $2
		ORDER BY bed_time DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SleepSession, 0)
	for rows.Next() {
		var s model.SleepSession
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.BedTime, &s.WakeTime,
			&s.Quality, &s.Awakenings, &s.DurationMin, &s.Efficiency,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a session by ID. It does not return an error if the row does not exist.
func (r *SleepPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM sleep_sessions WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
