package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

var (
	ErrInvalidWorkout  = errors.New("invalid workout")
	ErrWorkoutNotFound = errors.New("workout not found")
)

// LogWorkoutInput carries a completed workout as entered by the user.
type LogWorkoutInput struct {
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	DurationMin    int       `json:"duration_min"`
	CaloriesBurned int       `json:"calories_burned"`
	PerformedAt    time.Time `json:"performed_at"`
}

// WorkoutListResult is the service-level DTO for paginated workouts.
type WorkoutListResult struct {
	Items []model.Workout `json:"data"`
	Total int             `json:"total"`
}

// WorkoutService defines the workout tracking and recommendation use cases.
type WorkoutService interface {
	// LogWorkout validates and stores one completed workout.
	LogWorkout(ctx context.Context, userID string, in LogWorkoutInput) (*model.Workout, error)

	// List returns a user's workout history, newest first.
	List(ctx context.Context, userID string, limit, offset int) (*WorkoutListResult, error)

	// Recommend maps a free-text goal to a demo plan by case-insensitive
	// keyword matching. An unmatched goal gets the default full-body plan.
	Recommend(goal string) model.WorkoutPlan

	// DeleteWorkout removes a logged workout.
	DeleteWorkout(ctx context.Context, id string) error
}

// planMapping pairs trigger keywords with a demo plan. Mappings are matched
// in order; the first hit wins.
type planMapping struct {
	keywords []string
	plan     model.WorkoutPlan
}

var planMappings = []planMapping{
	{
		keywords: []string{"strength", "strong", "muscle", "lift", "bulk"},
		plan: model.WorkoutPlan{
			Name:        "Foundation Strength",
			Category:    model.WorkoutStrength,
			DurationMin: 45,
			Exercises: []model.Exercise{
				{Name: "Goblet Squat", Sets: 4, Reps: "8-10"},
				{Name: "Dumbbell Bench Press", Sets: 4, Reps: "8-10"},
				{Name: "Single-Arm Row", Sets: 3, Reps: "10-12"},
				{Name: "Romanian Deadlift", Sets: 3, Reps: "8-10"},
				{Name: "Plank", Sets: 3, Reps: "45s"},
			},
		},
	},
	{
		keywords: []string{"cardio", "endurance", "run", "stamina", "heart"},
		plan: model.WorkoutPlan{
			Name:        "Interval Cardio Builder",
			Category:    model.WorkoutCardio,
			DurationMin: 30,
			Exercises: []model.Exercise{
				{Name: "Warm-up Jog", Sets: 1, Reps: "5min"},
				{Name: "Sprint Intervals", Sets: 8, Reps: "30s on / 90s off"},
				{Name: "Cooldown Walk", Sets: 1, Reps: "5min"},
			},
		},
	},
	{
		keywords: []string{"flexib", "stretch", "mobility", "yoga", "stiff"},
		plan: model.WorkoutPlan{
			Name:        "Mobility Reset",
			Category:    model.WorkoutFlexibility,
			DurationMin: 20,
			Exercises: []model.Exercise{
				{Name: "Cat-Cow", Sets: 2, Reps: "10"},
				{Name: "World's Greatest Stretch", Sets: 2, Reps: "5 per side"},
				{Name: "Hip Flexor Stretch", Sets: 2, Reps: "45s per side"},
				{Name: "Thoracic Rotations", Sets: 2, Reps: "8 per side"},
			},
		},
	},
	{
		keywords: []string{"lose", "weight loss", "fat", "slim", "burn"},
		plan: model.WorkoutPlan{
			Name:        "Metabolic Circuit",
			Category:    model.WorkoutCardio,
			DurationMin: 35,
			Exercises: []model.Exercise{
				{Name: "Kettlebell Swing", Sets: 4, Reps: "15"},
				{Name: "Burpees", Sets: 4, Reps: "10"},
				{Name: "Mountain Climbers", Sets: 4, Reps: "30s"},
				{Name: "Jump Rope", Sets: 4, Reps: "60s"},
			},
		},
	},
}

// defaultPlan answers any goal text that matches no mapping.
var defaultPlan = model.WorkoutPlan{
	Name:        "Full-Body Starter",
	Category:    model.WorkoutFullBody,
	DurationMin: 30,
	Exercises: []model.Exercise{
		{Name: "Bodyweight Squat", Sets: 3, Reps: "12"},
		{Name: "Push-Up", Sets: 3, Reps: "10"},
		{Name: "Glute Bridge", Sets: 3, Reps: "12"},
		{Name: "Bird Dog", Sets: 3, Reps: "8 per side"},
	},
}

type workoutService struct {
	workouts repository.WorkoutRepository
	users    repository.UserRepository
}

// NewWorkoutService constructs a new WorkoutService.
func NewWorkoutService(workouts repository.WorkoutRepository, users repository.UserRepository) WorkoutService {
	return &workoutService{workouts: workouts, users: users}
}

func (s *workoutService) LogWorkout(ctx context.Context, userID string, in LogWorkoutInput) (*model.Workout, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if in.Name == "" || in.DurationMin <= 0 || in.CaloriesBurned < 0 {
		return nil, ErrInvalidWorkout
	}
	switch in.Category {
	case model.WorkoutStrength, model.WorkoutCardio, model.WorkoutFlexibility, model.WorkoutFullBody:
	default:
		return nil, ErrInvalidWorkout
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	performedAt := in.PerformedAt
	if performedAt.IsZero() {
		performedAt = time.Now().UTC()
	}
	w := &model.Workout{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           in.Name,
		Category:       in.Category,
		DurationMin:    in.DurationMin,
		CaloriesBurned: in.CaloriesBurned,
		PerformedAt:    performedAt,
	}
	return s.workouts.Create(ctx, w)
}

func (s *workoutService) List(ctx context.Context, userID string, limit, offset int) (*WorkoutListResult, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.workouts.List(ctx, userID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &WorkoutListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *workoutService) Recommend(goal string) model.WorkoutPlan {
	lower := strings.ToLower(goal)
	for _, m := range planMappings {
		for _, kw := range m.keywords {
			if strings.Contains(lower, kw) {
				return m.plan
			}
		}
	}
	return defaultPlan
}

func (s *workoutService) DeleteWorkout(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.workouts.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return s.workouts.Delete(ctx, id)
}
