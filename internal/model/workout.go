package model

import "time"

// Workout categories.
const (
	WorkoutStrength    = "strength"
	WorkoutCardio      = "cardio"
	WorkoutFlexibility = "flexibility"
	WorkoutFullBody    = "full_body"
)

// Workout is a completed training session logged by the user.
type Workout struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	DurationMin    int       `json:"duration_min"`
	CaloriesBurned int       `json:"calories_burned"`
	PerformedAt    time.Time `json:"performed_at"`
}

// Exercise is one movement inside a recommended plan.
type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

// WorkoutPlan is a recommended demo routine.
type WorkoutPlan struct {
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	DurationMin int        `json:"duration_min"`
	Exercises   []Exercise `json:"exercises"`
}
