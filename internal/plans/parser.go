package plans

import (
	"encoding/json"
	"fmt"
	"log"
)

// MalformedOutputError means the model response could not be turned
// into a usable plan at all. Raw carries the unmodified response text
// so callers can surface it for debugging.
type MalformedOutputError struct {
	Raw    string
	Reason string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed plan output: %s", e.Reason)
}

// ParsePlan validates the raw model response. Individually broken
// entries are dropped and counted rather than failing the whole plan;
// the error is a *MalformedOutputError only when the response is not
// JSON, has the wrong root shape, or no entry at all survives.
func ParsePlan(raw string) (RawPlan, int, error) {
	var doc struct {
		Workouts []json.RawMessage `json:"workouts"`
		Meals    []json.RawMessage `json:"meals"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return RawPlan{}, 0, &MalformedOutputError{Raw: raw, Reason: err.Error()}
	}

	dropped := 0
	workouts := make([]WorkoutEntry, 0, len(doc.Workouts))
	for i, el := range doc.Workouts {
		var w WorkoutEntry
		if err := json.Unmarshal(el, &w); err != nil {
			log.Printf("WARN plans: dropping workout entry %d: %v", i, err)
			dropped++
			continue
		}
		if err := validateWorkout(w); err != nil {
			log.Printf("WARN plans: dropping workout entry %d: %v", i, err)
			dropped++
			continue
		}
		workouts = append(workouts, w)
	}

	meals := make([]MealEntry, 0, len(doc.Meals))
	for i, el := range doc.Meals {
		var m MealEntry
		if err := json.Unmarshal(el, &m); err != nil {
			log.Printf("WARN plans: dropping meal entry %d: %v", i, err)
			dropped++
			continue
		}
		if err := validateMeal(m); err != nil {
			log.Printf("WARN plans: dropping meal entry %d: %v", i, err)
			dropped++
			continue
		}
		meals = append(meals, m)
	}

	if len(workouts) == 0 && len(meals) == 0 && dropped > 0 {
		return RawPlan{}, dropped, &MalformedOutputError{Raw: raw, Reason: "no valid entries in response"}
	}

	return RawPlan{Workouts: workouts, Meals: meals}, dropped, nil
}

func validateWorkout(w WorkoutEntry) error {
	if _, ok := dayFullNames[w.Day]; !ok {
		return fmt.Errorf("unrecognized day %q", w.Day)
	}
	if w.Title == "" {
		return fmt.Errorf("missing title")
	}
	if w.BurnKcalEst != nil && *w.BurnKcalEst < 0 {
		return fmt.Errorf("negative burn_kcal_est")
	}
	if len(w.Exercises) == 0 {
		return fmt.Errorf("no exercises")
	}
	for _, ex := range w.Exercises {
		if ex.Name == "" {
			return fmt.Errorf("exercise missing name")
		}
		if ex.Sets <= 0 {
			return fmt.Errorf("exercise %q has non-positive sets", ex.Name)
		}
	}
	return nil
}

func validateMeal(m MealEntry) error {
	if _, ok := dayFullNames[m.Day]; !ok {
		return fmt.Errorf("unrecognized day %q", m.Day)
	}
	if !validMealSlots[m.Meal] {
		return fmt.Errorf("unrecognized meal slot %q", m.Meal)
	}
	if m.Item == "" {
		return fmt.Errorf("missing item")
	}
	if m.Kcal < 0 {
		return fmt.Errorf("negative kcal")
	}
	if m.Macros.P < 0 || m.Macros.C < 0 || m.Macros.F < 0 {
		return fmt.Errorf("negative macro value")
	}
	return nil
}
