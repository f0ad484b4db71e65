package postgres

import (
	"context"
	"database/sql"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

// WorkoutPostgres is a PostgreSQL implementation of repository.WorkoutRepository.
type WorkoutPostgres struct {
	db *sql.DB
}

// NewWorkoutPostgres creates a new WorkoutPostgres repository.
func NewWorkoutPostgres(db *sql.DB) *WorkoutPostgres {
	return &WorkoutPostgres{db: db}
}

var _ repository.WorkoutRepository = (*WorkoutPostgres)(nil)

// Create inserts a new workout row and returns the stored record.
func (r *WorkoutPostgres) Create(ctx context.Context, w *model.Workout) (*model.Workout, error) {
	const q = `
		INSERT INTO workouts (id, user_id, name, category, duration_min, calories_burned, performed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, name, category, duration_min, calories_burned, performed_at
	`
	row := r.db.QueryRowContext(ctx, q,
		w.ID, w.UserID, w.Name, w.Category, w.DurationMin, w.CaloriesBurned, w.PerformedAt,
	)
	var out model.Workout
	if err := row.Scan(
		&out.ID, &out.UserID, &out.Name, &out.Category,
		&out.DurationMin, &out.CaloriesBurned, &out.PerformedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single workout by its ID.
func (r *WorkoutPostgres) FindByID(ctx context.Context, id string) (*model.Workout, error) {
	const q = `
		SELECT id, user_id, name, category, duration_min, calories_burned, performed_at
		FROM workouts
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var w model.Workout
	if err := row.Scan(
		&w.ID, &w.UserID, &w.Name, &w.Category,
		&w.DurationMin, &w.CaloriesBurned, &w.PerformedAt,
	); err != nil {
		return nil, err
	}
	return &w, nil
}

// List returns a user's workouts using LIMIT/OFFSET pagination and a total count.
func (r *WorkoutPostgres) List(ctx context.Context, userID string, pq repository.PageQuery) (*repository.PageResult[model.Workout], error) {
	const qCount = `SELECT COUNT(*) FROM workouts WHERE user_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, userID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, user_id, name, category, duration_min, calories_burned, performed_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY performed_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, userID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Workout, 0)
	for rows.Next() {
		var w model.Workout
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Name, &w.Category,
			&w.DurationMin, &w.CaloriesBurned, &w.PerformedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Workout]{Items: items, Total: total}, nil
}

// Delete removes a workout by ID. It does not return an error if the row does not exist.
func (r *WorkoutPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM workouts WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
