package postgres

import (
	"context"
	"database/sql"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, name, email, sex, age, height_cm, weight_kg, activity_level, goal,
		calories, protein_g, carbs_g, fat_g, sleep_target_min, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Profile.Sex,
		&u.Profile.Age,
		&u.Profile.HeightCm,
		&u.Profile.WeightKg,
		&u.Profile.ActivityLevel,
		&u.Profile.Goal,
		&u.Targets.Calories,
		&u.Targets.ProteinG,
		&u.Targets.CarbsG,
		&u.Targets.FatG,
		&u.SleepTargetMin,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (id, name, email, sex, age, height_cm, weight_kg, activity_level, goal,
			calories, protein_g, carbs_g, fat_g, sleep_target_min, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q,
		u.ID,
		u.Name,
		u.Email,
		u.Profile.Sex,
		u.Profile.Age,
		u.Profile.HeightCm,
		u.Profile.WeightKg,
		u.Profile.ActivityLevel,
		u.Profile.Goal,
		u.Targets.Calories,
		u.Targets.ProteinG,
		u.Targets.CarbsG,
		u.Targets.FatG,
		u.SleepTargetMin,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return scanUser(row)
}

// FindByID fetches a single user by its ID.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// UpdateProfile overwrites profile fields and computed targets for a user.
func (r *UserPostgres) UpdateProfile(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		UPDATE users
		SET sex = $2, age = $3, height_cm = $4, weight_kg = $5, activity_level = $6, goal = $7,
			calories = $8, protein_g = $9, carbs_g = $10, fat_g = $11, sleep_target_min = $12,
			updated_at = $13
		WHERE id = $1
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q,
		u.ID,
		u.Profile.Sex,
		u.Profile.Age,
		u.Profile.HeightCm,
		u.Profile.WeightKg,
		u.Profile.ActivityLevel,
		u.Profile.Goal,
		u.Targets.Calories,
		u.Targets.ProteinG,
		u.Targets.CarbsG,
		u.Targets.FatG,
		u.SleepTargetMin,
		u.UpdatedAt,
	)
	return scanUser(row)
}

// Delete removes a user by ID. It does not return an error if the row does not exist.
func (r *UserPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM users WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
