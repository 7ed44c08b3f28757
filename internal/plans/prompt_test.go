package plans

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildPromptIncludesProfileVerbatim(t *testing.T) {
	prompt, err := BuildPrompt(GeneratePlanRequest{
		HeightCm:  181.5,
		WeightKg:  77,
		Goal:      GoalBuildMuscle,
		Equipment: []string{"Dumbbells", "Pull-up bar"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.Contains(prompt.UserMessage, "Height: 181.5 cm") {
		t.Errorf("expected literal height in user message:\n%s", prompt.UserMessage)
	}
	if !strings.Contains(prompt.UserMessage, "Weight: 77 kg") {
		t.Errorf("expected literal weight in user message:\n%s", prompt.UserMessage)
	}
	if !strings.Contains(prompt.UserMessage, "Primary Goal: build_muscle") {
		t.Errorf("expected goal in user message:\n%s", prompt.UserMessage)
	}
	if !strings.Contains(prompt.UserMessage, "Dumbbells, Pull-up bar") {
		t.Errorf("expected comma-joined equipment:\n%s", prompt.UserMessage)
	}
	if strings.Contains(prompt.UserMessage, "caloric deficit") {
		t.Errorf("deficit note must only appear for fat_loss:\n%s", prompt.UserMessage)
	}
	if !strings.Contains(prompt.Instructions, `"workouts" and "meals"`) {
		t.Errorf("expected schema description in instructions:\n%s", prompt.Instructions)
	}
}

func TestBuildPromptEmptyEquipment(t *testing.T) {
	prompt, err := BuildPrompt(GeneratePlanRequest{
		HeightCm: 170,
		WeightKg: 65,
		Goal:     GoalMaintainWeight,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(prompt.UserMessage, "Available Equipment: Not specified") {
		t.Errorf("expected 'Not specified' for empty equipment:\n%s", prompt.UserMessage)
	}
}

func TestBuildPromptFatLossDeficitNote(t *testing.T) {
	prompt, err := BuildPrompt(GeneratePlanRequest{
		HeightCm: 170,
		WeightKg: 90,
		Goal:     GoalFatLoss,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(prompt.UserMessage, "Aim for a daily caloric deficit of approximately 500 kcal for fat loss.") {
		t.Errorf("expected deficit note for fat_loss:\n%s", prompt.UserMessage)
	}
}

func TestBuildPromptInvalidProfile(t *testing.T) {
	cases := []struct {
		name string
		req  GeneratePlanRequest
	}{
		{"missing height", GeneratePlanRequest{WeightKg: 70, Goal: GoalFatLoss}},
		{"negative weight", GeneratePlanRequest{HeightCm: 180, WeightKg: -5, Goal: GoalFatLoss}},
		{"unknown goal", GeneratePlanRequest{HeightCm: 180, WeightKg: 70, Goal: "get_swole"}},
		{"empty goal", GeneratePlanRequest{HeightCm: 180, WeightKg: 70}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildPrompt(tc.req)
			if !errors.Is(err, ErrInvalidProfile) {
				t.Fatalf("expected ErrInvalidProfile, got %v", err)
			}
		})
	}
}
