package repository

import (
	"context"
	"time"

	"coachapi/internal/model"
)

// MealRepository defines data access for logged meals.
type MealRepository interface {
	// Create inserts a new meal record.
	Create(ctx context.Context, m *model.Meal) (*model.Meal, error)

	// FindByID returns a meal by its ID.
	FindByID(ctx context.Context, id string) (*model.Meal, error)

	// ListByDay returns a user's meals with eaten_at in [from, to), ordered by eaten_at.
	ListByDay(ctx context.Context, userID string, from, to time.Time) ([]model.Meal, error)

	// Delete removes a meal by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
