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
	ErrMealNotFound = errors.New("meal not found")
	ErrInvalidMeal  = errors.New("invalid meal")
	ErrInvalidDate  = errors.New("invalid date")
)

// LogMealInput carries a meal as entered by the user.
type LogMealInput struct {
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Calories int       `json:"calories"`
	ProteinG float64   `json:"protein_g"`
	CarbsG   float64   `json:"carbs_g"`
	FatG     float64   `json:"fat_g"`
	EatenAt  time.Time `json:"eaten_at"`
}

// NutritionService defines the meal tracking use cases.
type NutritionService interface {
	// LogMeal validates and stores one meal for a user.
	LogMeal(ctx context.Context, userID string, in LogMealInput) (*model.Meal, error)

	// MealsForDay returns a user's meals for a calendar day ("2006-01-02") in loc.
	MealsForDay(ctx context.Context, userID, date string, loc *time.Location) ([]model.Meal, error)

	// DailySummary aggregates a day of meals against the user's targets.
	DailySummary(ctx context.Context, userID, date string, loc *time.Location) (*model.DailySummary, error)

	// DeleteMeal removes a logged meal.
	DeleteMeal(ctx context.Context, id string) error
}

type nutritionService struct {
	meals repository.MealRepository
	users repository.UserRepository
}

// NewNutritionService constructs a new NutritionService.
func NewNutritionService(meals repository.MealRepository, users repository.UserRepository) NutritionService {
	return &nutritionService{meals: meals, users: users}
}

func (s *nutritionService) LogMeal(ctx context.Context, userID string, in LogMealInput) (*model.Meal, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if err := validateMeal(in); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	eatenAt := in.EatenAt
	if eatenAt.IsZero() {
		eatenAt = time.Now().UTC()
	}
	m := &model.Meal{
		ID:       uuid.New().String(),
		UserID:   userID,
		Name:     in.Name,
		Type:     in.Type,
		Calories: in.Calories,
		ProteinG: in.ProteinG,
		CarbsG:   in.CarbsG,
		FatG:     in.FatG,
		EatenAt:  eatenAt,
	}
	return s.meals.Create(ctx, m)
}

func (s *nutritionService) MealsForDay(ctx context.Context, userID, date string, loc *time.Location) ([]model.Meal, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	from, to, err := dayBounds(date, loc)
	if err != nil {
		return nil, err
	}
	return s.meals.ListByDay(ctx, userID, from, to)
}

func (s *nutritionService) DailySummary(ctx context.Context, userID, date string, loc *time.Location) (*model.DailySummary, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	from, to, err := dayBounds(date, loc)
	if err != nil {
		return nil, err
	}
	meals, err := s.meals.ListByDay(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	// Sum grams as float64 and round once, so fractional portions
	// across meals are not truncated away.
	var consumed model.MacroTargets
	var proteinG, carbsG, fatG float64
	for _, m := range meals {
		consumed.Calories += m.Calories
		proteinG += m.ProteinG
		carbsG += m.CarbsG
		fatG += m.FatG
	}
	consumed.ProteinG = int(math.Round(proteinG))
	consumed.CarbsG = int(math.Round(carbsG))
	consumed.FatG = int(math.Round(fatG))

	summary := &model.DailySummary{
		Date:     from.Format("2006-01-02"),
		Meals:    len(meals),
		Consumed: consumed,
		Targets:  u.Targets,
		Remaining: model.MacroTargets{
			Calories: floorZero(u.Targets.Calories - consumed.Calories),
			ProteinG: floorZero(u.Targets.ProteinG - consumed.ProteinG),
			CarbsG:   floorZero(u.Targets.CarbsG - consumed.CarbsG),
			FatG:     floorZero(u.Targets.FatG - consumed.FatG),
		},
	}
	if u.Targets.Calories > 0 {
		summary.CaloriesRatio = float64(consumed.Calories) / float64(u.Targets.Calories)
	}
	return summary, nil
}

func (s *nutritionService) DeleteMeal(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.meals.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMealNotFound
		}
		return err
	}
	return s.meals.Delete(ctx, id)
}

func validateMeal(in LogMealInput) error {
	if in.Name == "" {
		return ErrInvalidMeal
	}
	switch in.Type {
	case model.MealBreakfast, model.MealLunch, model.MealDinner, model.MealSnack:
	default:
		return ErrInvalidMeal
	}
	if in.Calories < 0 || in.ProteinG < 0 || in.CarbsG < 0 || in.FatG < 0 {
		return ErrInvalidMeal
	}
	return nil
}

// dayBounds parses a "2006-01-02" date in loc and returns [midnight, next midnight).
// An empty date means today.
func dayBounds(date string, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	var day time.Time
	if date == "" {
		now := time.Now().In(loc)
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	} else {
		parsed, err := time.ParseInLocation("2006-01-02", date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDate
		}
		day = parsed
	}
	return day, day.AddDate(0, 0, 1), nil
}

func floorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
