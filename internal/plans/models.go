package plans

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const (
	GoalFatLoss        = "fat_loss"
	GoalBuildMuscle    = "build_muscle"
	GoalMaintainWeight = "maintain_weight"
)

var validGoals = map[string]bool{
	GoalFatLoss:        true,
	GoalBuildMuscle:    true,
	GoalMaintainWeight: true,
}

var validMealSlots = map[string]bool{
	"Breakfast": true,
	"Lunch":     true,
	"Dinner":    true,
	"Snack":     true,
}

// daysOrder fixes the canonical week layout used everywhere a plan is
// grouped by day. Sunday first, matching the day codes the model emits.
var daysOrder = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var dayFullNames = map[string]string{
	"Sun": "Sunday",
	"Mon": "Monday",
	"Tue": "Tuesday",
	"Wed": "Wednesday",
	"Thu": "Thursday",
	"Fri": "Friday",
	"Sat": "Saturday",
}

// GeneratePlanRequest is the profile the caller submits to get a plan.
type GeneratePlanRequest struct {
	HeightCm  float64  `json:"height_cm"`
	WeightKg  float64  `json:"weight_kg"`
	Goal      string   `json:"goal"`
	Equipment []string `json:"equipment"`
}

func (r *GeneratePlanRequest) Validate() error {
	if r.HeightCm <= 0 {
		return fmt.Errorf("%w: height_cm must be a positive number", ErrInvalidProfile)
	}
	if r.WeightKg <= 0 {
		return fmt.Errorf("%w: weight_kg must be a positive number", ErrInvalidProfile)
	}
	if !validGoals[r.Goal] {
		return fmt.Errorf("%w: goal must be one of fat_loss, build_muscle, maintain_weight", ErrInvalidProfile)
	}
	return nil
}

// Reps accepts either a JSON string ("10-12", "30 sec") or a bare number,
// since the model is inconsistent about which it emits. It always
// marshals back as a string.
type Reps string

func (r *Reps) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Reps(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Reps(strconv.FormatFloat(n, 'f', -1, 64))
		return nil
	}
	return fmt.Errorf("reps must be a string or a number")
}

func (r Reps) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps Reps   `json:"reps"`
}

type WorkoutEntry struct {
	Day         string     `json:"day"`
	Title       string     `json:"title"`
	BurnKcalEst *float64   `json:"burn_kcal_est,omitempty"`
	Exercises   []Exercise `json:"exercises"`
}

type Macros struct {
	P float64 `json:"p"`
	C float64 `json:"c"`
	F float64 `json:"f"`
}

type MealEntry struct {
	Day    string  `json:"day"`
	Meal   string  `json:"meal"`
	Item   string  `json:"item"`
	Kcal   float64 `json:"kcal"`
	Macros Macros  `json:"macros"`
}

// RawPlan is a validated weekly plan as returned by the model, entries
// in model order.
type RawPlan struct {
	Workouts []WorkoutEntry `json:"workouts"`
	Meals    []MealEntry    `json:"meals"`
}

// DayAggregate is one day of the weekly view. The week always has
// exactly seven of these, Sun through Sat, even for empty days.
type DayAggregate struct {
	Day         string         `json:"day"`
	DayFullName string         `json:"day_full_name"`
	Workouts    []WorkoutEntry `json:"workouts"`
	Meals       []MealEntry    `json:"meals"`
	TotalKcal   float64        `json:"total_kcal"`
	TotalMacros Macros         `json:"total_macros"`
}

// StoredPlan is the persisted last plan for an owner.
type StoredPlan struct {
	ID             string    `json:"id"`
	Goal           string    `json:"goal"`
	Plan           RawPlan   `json:"plan"`
	DroppedEntries int       `json:"dropped_entries"`
	CreatedAt      time.Time `json:"created_at"`
}
