package repository

import (
	"context"
	"time"

	"coachapi/internal/model"
)

// SleepRepository defines data access for sleep sessions.
type SleepRepository interface {
	// Create inserts a new sleep session record.
	Create(ctx context.Context, s *model.SleepSession) (*model.SleepSession, error)

	// ListSince returns a user's sessions with bed_time >= since, newest first.
	ListSince(ctx context.Context, userID string, since time.Time) ([]model.SleepSession, error)

	// Delete removes a session by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
