package model

import "time"

// Meal types accepted when logging a meal.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// Meal is a single logged eating event with its macro breakdown.
type Meal struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Calories int       `json:"calories"`
	ProteinG float64   `json:"protein_g"`
	CarbsG   float64   `json:"carbs_g"`
	FatG     float64   `json:"fat_g"`
	EatenAt  time.Time `json:"eaten_at"`
}

// DailySummary aggregates one day of meals against the user's targets.
// Remaining values are floored at zero so an over-target day reads as "0 left"
// rather than a negative allowance.
type DailySummary struct {
	Date          string       `json:"date"`
	Meals         int          `json:"meals"`
	Consumed      MacroTargets `json:"consumed"`
	Targets       MacroTargets `json:"targets"`
	Remaining     MacroTargets `json:"remaining"`
	CaloriesRatio float64      `json:"calories_ratio"`
}
