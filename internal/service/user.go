package service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

var (
	ErrIDRequired     = errors.New("id is required")
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidProfile = errors.New("invalid profile")
	ErrNameRequired   = errors.New("name is required")
	ErrEmailRequired  = errors.New("email is required")
)

// minCalories is the floor applied to computed daily calorie targets.
const minCalories = 1200

// RegisterInput carries the onboarding questionnaire answers.
type RegisterInput struct {
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Profile model.Profile `json:"profile"`
}

// UserService defines the onboarding and profile use cases.
type UserService interface {
	// Register creates a user from the onboarding answers and computes
	// their daily macro and sleep targets.
	Register(ctx context.Context, in RegisterInput) (*model.User, error)

	// Get returns a single user by ID.
	Get(ctx context.Context, id string) (*model.User, error)

	// UpdateProfile replaces the profile and recomputes targets.
	UpdateProfile(ctx context.Context, id string, p model.Profile) (*model.User, error)

	// Delete removes a user and, via FK cascade, all their records.
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	if in.Email == "" {
		return nil, ErrEmailRequired
	}
	if err := validateProfile(in.Profile); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &model.User{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Email:          in.Email,
		Profile:        in.Profile,
		Targets:        ComputeTargets(in.Profile),
		SleepTargetMin: SleepTarget(in.Profile.Age),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return s.repo.Create(ctx, u)
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, p model.Profile) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validateProfile(p); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	u.Profile = p
	u.Targets = ComputeTargets(p)
	u.SleepTargetMin = SleepTarget(p.Age)
	u.UpdatedAt = time.Now().UTC()

	out, err := s.repo.UpdateProfile(ctx, u)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func validateProfile(p model.Profile) error {
	if p.Sex != model.SexMale && p.Sex != model.SexFemale {
		return ErrInvalidProfile
	}
	if p.Age <= 0 || p.Age > 120 {
		return ErrInvalidProfile
	}
	if p.HeightCm <= 0 || p.WeightKg <= 0 {
		return ErrInvalidProfile
	}
	if activityFactor(p.ActivityLevel) == 0 {
		return ErrInvalidProfile
	}
	switch p.Goal {
	case model.GoalLose, model.GoalMaintain, model.GoalGain:
	default:
		return ErrInvalidProfile
	}
	return nil
}

func activityFactor(level string) float64 {
	switch level {
	case model.ActivitySedentary:
		return 1.2
	case model.ActivityLight:
		return 1.375
	case model.ActivityModerate:
		return 1.55
	case model.ActivityActive:
		return 1.725
	case model.ActivityVeryActive:
		return 1.9
	}
	return 0
}

// ComputeTargets derives daily macro targets from a profile using the
// Mifflin-St Jeor equation: calories = round(BMR * activity) + goal
// adjustment, floored at minCalories, then split 30/30/40
// (protein/fat/carbs) by calories at 4/9/4 kcal per gram.
func ComputeTargets(p model.Profile) model.MacroTargets {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Sex == model.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	calories := bmr * activityFactor(p.ActivityLevel)
	switch p.Goal {
	case model.GoalLose:
		calories -= 500
	case model.GoalGain:
		calories += 300
	}
	if calories < minCalories {
		calories = minCalories
	}

	cal := int(math.Round(calories))
	return model.MacroTargets{
		Calories: cal,
		ProteinG: int(math.Round(calories * 0.30 / 4)),
		FatG:     int(math.Round(calories * 0.30 / 9)),
		CarbsG:   int(math.Round(calories * 0.40 / 4)),
	}
}

// SleepTarget returns the nightly sleep target in minutes by age bracket.
func SleepTarget(age int) int {
	switch {
	case age < 18:
		return 9 * 60
	case age < 65:
		return 8 * 60
	default:
		return 7 * 60
	}
}
