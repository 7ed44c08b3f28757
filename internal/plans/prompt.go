package plans

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidProfile marks profile validation failures so handlers can
// map them to 400 responses.
var ErrInvalidProfile = errors.New("invalid profile")

const systemPrompt = `You are a certified fitness & nutrition coach.
Return a 7-day plan as JSON. The root object should have two keys: "workouts" and "meals".
"workouts" should be an array of objects, each with: "day" (e.g., "Mon"), "title" (e.g., "HIIT + Core"), "burn_kcal_est" (estimated calories burned, number), and "exercises" (an array of objects, each with "name", "sets" (number), "reps" (string or number, e.g., "12" or "AMRAP")).
"meals" should be an array of objects, each with: "day", "meal" (e.g., "Breakfast", "Lunch", "Dinner", "Snack"), "item" (e.g., "Greek-yoghurt bowl"), "kcal" (number), and "macros" (an object with "p" for protein_g, "c" for carbs_g, "f" for fat_g, all numbers).
Ensure the JSON is well-formed and can be directly parsed.`

// Prompt is a fully assembled model request: fixed coaching
// instructions plus a per-profile user message.
type Prompt struct {
	Instructions string
	UserMessage  string
}

// BuildPrompt validates the profile and renders the two prompt parts.
// The user message carries the profile values verbatim so the model
// sees exactly what the caller submitted.
func BuildPrompt(req GeneratePlanRequest) (Prompt, error) {
	if err := req.Validate(); err != nil {
		return Prompt{}, err
	}

	equipment := "Not specified"
	if len(req.Equipment) > 0 {
		equipment = strings.Join(req.Equipment, ", ")
	}

	deficitNote := ""
	if req.Goal == GoalFatLoss {
		deficitNote = "Aim for a daily caloric deficit of approximately 500 kcal for fat loss."
	}

	userMessage := fmt.Sprintf(`Generate a 7-day workout and meal plan based on the following user details:
- Height: %s cm
- Weight: %s kg
- Primary Goal: %s
- Available Equipment: %s

%s
Focus on variety and balanced nutrition. Provide estimated calories for meals and workouts.`,
		formatMeasure(req.HeightCm), formatMeasure(req.WeightKg), req.Goal, equipment, deficitNote)

	return Prompt{Instructions: systemPrompt, UserMessage: userMessage}, nil
}

func formatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
