package repository

import (
	"context"

	"coachapi/internal/model"
)

// UserRepository defines data access for users using SQL queries only.
// No business logic here — strictly persistence operations.
type UserRepository interface {
	// Create inserts a new user row with its profile and computed targets.
	// Returns the stored user (may include values set by the DB).
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns a user by its ID.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// UpdateProfile overwrites the profile, targets, and updated_at of an
	// existing user. Returns the stored user.
	UpdateProfile(ctx context.Context, u *model.User) (*model.User, error)

	// Delete removes a user by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
