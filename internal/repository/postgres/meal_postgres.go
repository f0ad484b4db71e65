package postgres

import (
	"context"
	"database/sql"
	"time"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

// MealPostgres is a PostgreSQL implementation of repository.MealRepository.
type MealPostgres struct {
	db *sql.DB
}

// NewMealPostgres creates a new MealPostgres repository.
func NewMealPostgres(db *sql.DB) *MealPostgres {
	return &MealPostgres{db: db}
}

var _ repository.MealRepository = (*MealPostgres)(nil)

// Create inserts a new meal row and returns the stored record.
func (r *MealPostgres) Create(ctx context.Context, m *model.Meal) (*model.Meal, error) {
	const q = `
		INSERT INTO meals (id, user_id, name, type, calories, protein_g, carbs_g, fat_g, eaten_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, user_id, name, type, calories, protein_g, carbs_g, fat_g, eaten_at
	`
	row := r.db.QueryRowContext(ctx, q,
		m.ID, m.UserID, m.Name, m.Type, m.Calories, m.ProteinG, m.CarbsG, m.FatG, m.EatenAt,
	)
	var out model.Meal
	if err := row.Scan(
		&out.ID, &out.UserID, &out.Name, &out.Type,
		&out.Calories, &out.ProteinG, &out.CarbsG, &out.FatG, &out.EatenAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single meal by its ID.
func (r *MealPostgres) FindByID(ctx context.Context, id string) (*model.Meal, error) {
	const q = `
		SELECT id, user_id, name, type, calories, protein_g, carbs_g, fat_g, eaten_at
		FROM meals
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var m model.Meal
	if err := row.Scan(
		&m.ID, &m.UserID, &m.Name, &m.Type,
		&m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG, &m.EatenAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByDay returns a user's meals in [from, to) ordered by eaten_at.
func (r *MealPostgres) ListByDay(ctx context.Context, userID string, from, to time.Time) ([]model.Meal, error) {
	const q = `
		SELECT id, user_id, name, type, calories, protein_g, carbs_g, fat_g, eaten_at
		FROM meals
		WHERE user_id = $1 AND eaten_at >= $2 AND eaten_at < $3
		ORDER BY eaten_at ASC
	`
	rows, err := r.db.QueryContext(ctx, q, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Meal, 0)
	for rows.Next() {
		var m model.Meal
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Name, &m.Type,
			&m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG, &m.EatenAt,
		); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a meal by ID. It does not return an error if the row does not exist.
func (r *MealPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM meals WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
