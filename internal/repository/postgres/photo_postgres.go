package postgres

import (
	"context"
	"database/sql"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

// PhotoPostgres is a PostgreSQL implementation of repository.PhotoRepository.
type PhotoPostgres struct {
	db *sql.DB
}

// NewPhotoPostgres creates a new PhotoPostgres repository.
func NewPhotoPostgres(db *sql.DB) *PhotoPostgres {
	return &PhotoPostgres{db: db}
}

var _ repository.PhotoRepository = (*PhotoPostgres)(nil)

// Create inserts a new photo row and returns the stored record.
func (r *PhotoPostgres) Create(ctx context.Context, p *model.ProgressPhoto) (*model.ProgressPhoto, error) {
	const q = `
		INSERT INTO progress_photos (id, user_id, storage_path, size, content_type, note, taken_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, storage_path, size, content_type, note, taken_at, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		p.ID, p.UserID, p.StoragePath, p.Size, p.ContentType, p.Note, p.TakenAt, p.CreatedAt,
	)
	var out model.ProgressPhoto
	if err := row.Scan(
		&out.ID, &out.UserID, &out.StoragePath, &out.Size,
		&out.ContentType, &out.Note, &out.TakenAt, &out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single photo by its ID.
func (r *PhotoPostgres) FindByID(ctx context.Context, id string) (*model.ProgressPhoto, error) {
	const q = `
		SELECT id, user_id, storage_path, size, content_type, note, taken_at, created_at
		FROM progress_photos
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var p model.ProgressPhoto
	if err := row.Scan(
		&p.ID, &p.UserID, &p.StoragePath, &p.Size,
		&p.ContentType, &p.Note, &p.TakenAt, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByUser returns a user's photos using LIMIT/OFFSET pagination and a total count.
func (r *PhotoPostgres) ListByUser(ctx context.Context, userID string, pq repository.PageQuery) (*repository.PageResult[model.ProgressPhoto], error) {
	const qCount = `SELECT COUNT(*) FROM progress_photos WHERE user_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, userID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, user_id, storage_path, size, content_type, note, taken_at, created_at
		FROM progress_photos
		WHERE user_id = $1
		ORDER BY taken_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, userID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProgressPhoto, 0)
	for rows.Next() {
		var p model.ProgressPhoto
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.StoragePath, &p.Size,
			&p.ContentType, &p.Note, &p.TakenAt, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ProgressPhoto]{Items: items, Total: total}, nil
}

// Delete removes a photo by ID. It does not return an error if the row does not exist.
func (r *PhotoPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM progress_photos WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
