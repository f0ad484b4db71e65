package repository

import (
	"context"

	"coachapi/internal/model"
)

// WorkoutRepository defines data access for completed workouts.
type WorkoutRepository interface {
	// Create inserts a new workout record.
	Create(ctx context.Context, w *model.Workout) (*model.Workout, error)

	// FindByID fetches a single workout. Returns sql.ErrNoRows when absent.
	FindByID(ctx context.Context, id string) (*model.Workout, error)

	// List returns a user's workouts, newest first, with a total count.
	List(ctx context.Context, userID string, pq PageQuery) (*PageResult[model.Workout], error)

	// Delete removes a workout by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
