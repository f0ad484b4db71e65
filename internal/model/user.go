package model

import "time"

// Sex values accepted in a user profile.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// Activity levels accepted in a user profile, ordered by intensity.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// Goals accepted in a user profile.
const (
	GoalLose     = "lose_weight"
	GoalMaintain = "maintain"
	GoalGain     = "gain_muscle"
)

// Profile holds the health questionnaire answers collected during onboarding.
// Targets are recomputed whenever the profile changes.
type Profile struct {
	Sex           string  `json:"sex"`
	Age           int     `json:"age"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

// MacroTargets are the daily nutrition targets derived from a profile.
type MacroTargets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// User represents a registered app user with their onboarding profile and
// derived daily targets.
// This is a pure domain model with no database-specific dependencies or tags.
type User struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Profile        Profile      `json:"profile"`
	Targets        MacroTargets `json:"targets"`
	SleepTargetMin int          `json:"sleep_target_min"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
