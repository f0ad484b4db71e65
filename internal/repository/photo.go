package repository

import (
	"context"

	"coachapi/internal/model"
)

// PhotoRepository defines data access for progress photo metadata.
type PhotoRepository interface {
	// Create inserts a new photo record.
	Create(ctx context.Context, p *model.ProgressPhoto) (*model.ProgressPhoto, error)

	// FindByID returns a photo by its ID.
	FindByID(ctx context.Context, id string) (*model.ProgressPhoto, error)

	// ListByUser returns a user's photos, newest first, with a total count.
	ListByUser(ctx context.Context, userID string, pq PageQuery) (*PageResult[model.ProgressPhoto], error)

	// Delete removes a photo by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
