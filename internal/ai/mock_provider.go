package ai

import (
	"context"
	"strings"
)

// MockProvider returns a fixed, well-formed weekly plan so the full pipeline
// can run without an API key. The plan shape matches the schema the prompt
// builder describes.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) GeneratePlan(ctx context.Context, req GenerateRequest) (string, error) {
	_ = ctx

	plan := mockBasePlan
	if strings.Contains(req.UserMessage, "deficit") {
		plan = mockDeficitPlan
	}
	return plan, nil
}

const mockBasePlan = `{
  "workouts": [
    {"day": "Mon", "title": "Full Body Strength", "burn_kcal_est": 320, "exercises": [
      {"name": "Squat", "sets": 4, "reps": "8"},
      {"name": "Bench Press", "sets": 4, "reps": "8"},
      {"name": "Bent-over Row", "sets": 3, "reps": "10"}
    ]},
    {"day": "Wed", "title": "HIIT + Core", "burn_kcal_est": 400, "exercises": [
      {"name": "Burpees", "sets": 4, "reps": "15"},
      {"name": "Mountain Climbers", "sets": 4, "reps": "20"},
      {"name": "Plank", "sets": 3, "reps": "AMRAP"}
    ]},
    {"day": "Fri", "title": "Upper Body Push/Pull", "burn_kcal_est": 300, "exercises": [
      {"name": "Overhead Press", "sets": 4, "reps": "8"},
      {"name": "Pull-ups", "sets": 4, "reps": "AMRAP"},
      {"name": "Dumbbell Curl", "sets": 3, "reps": "12"}
    ]},
    {"day": "Sat", "title": "Active Recovery Walk", "burn_kcal_est": 180, "exercises": [
      {"name": "Brisk Walk", "sets": 1, "reps": "45 min"}
    ]}
  ],
  "meals": [
    {"day": "Mon", "meal": "Breakfast", "item": "Greek-yoghurt bowl with berries", "kcal": 380, "macros": {"p": 28, "c": 40, "f": 12}},
    {"day": "Mon", "meal": "Lunch", "item": "Grilled chicken and quinoa salad", "kcal": 560, "macros": {"p": 45, "c": 50, "f": 18}},
    {"day": "Mon", "meal": "Dinner", "item": "Baked salmon with roasted vegetables", "kcal": 620, "macros": {"p": 42, "c": 35, "f": 30}},
    {"day": "Tue", "meal": "Breakfast", "item": "Oatmeal with banana and almonds", "kcal": 420, "macros": {"p": 14, "c": 62, "f": 14}},
    {"day": "Tue", "meal": "Lunch", "item": "Turkey wrap with hummus", "kcal": 520, "macros": {"p": 38, "c": 48, "f": 18}},
    {"day": "Tue", "meal": "Dinner", "item": "Beef stir-fry with brown rice", "kcal": 640, "macros": {"p": 40, "c": 58, "f": 22}},
    {"day": "Wed", "meal": "Breakfast", "item": "Scrambled eggs on wholegrain toast", "kcal": 400, "macros": {"p": 26, "c": 32, "f": 18}},
    {"day": "Wed", "meal": "Lunch", "item": "Lentil soup with side salad", "kcal": 480, "macros": {"p": 24, "c": 60, "f": 12}},
    {"day": "Wed", "meal": "Dinner", "item": "Chicken fajita bowl", "kcal": 600, "macros": {"p": 44, "c": 52, "f": 20}},
    {"day": "Wed", "meal": "Snack", "item": "Cottage cheese with pineapple", "kcal": 180, "macros": {"p": 20, "c": 18, "f": 3}},
    {"day": "Thu", "meal": "Breakfast", "item": "Protein smoothie with spinach", "kcal": 350, "macros": {"p": 30, "c": 38, "f": 8}},
    {"day": "Thu", "meal": "Lunch", "item": "Tuna nicoise salad", "kcal": 500, "macros": {"p": 36, "c": 30, "f": 24}},
    {"day": "Thu", "meal": "Dinner", "item": "Turkey meatballs with pasta", "kcal": 650, "macros": {"p": 42, "c": 66, "f": 18}},
    {"day": "Fri", "meal": "Breakfast", "item": "Overnight oats with chia", "kcal": 410, "macros": {"p": 16, "c": 58, "f": 13}},
    {"day": "Fri", "meal": "Lunch", "item": "Chicken caesar wrap", "kcal": 540, "macros": {"p": 40, "c": 44, "f": 20}},
    {"day": "Fri", "meal": "Dinner", "item": "Grilled white fish with sweet potato", "kcal": 560, "macros": {"p": 40, "c": 52, "f": 16}},
    {"day": "Sat", "meal": "Breakfast", "item": "Veggie omelette", "kcal": 380, "macros": {"p": 24, "c": 14, "f": 24}},
    {"day": "Sat", "meal": "Lunch", "item": "Chickpea and avocado bowl", "kcal": 530, "macros": {"p": 20, "c": 56, "f": 24}},
    {"day": "Sat", "meal": "Dinner", "item": "Lean steak with greens", "kcal": 580, "macros": {"p": 48, "c": 22, "f": 30}},
    {"day": "Sun", "meal": "Breakfast", "item": "Wholegrain pancakes with berries", "kcal": 450, "macros": {"p": 18, "c": 68, "f": 12}},
    {"day": "Sun", "meal": "Lunch", "item": "Roast chicken with vegetables", "kcal": 590, "macros": {"p": 46, "c": 40, "f": 24}},
    {"day": "Sun", "meal": "Dinner", "item": "Vegetable curry with rice", "kcal": 540, "macros": {"p": 16, "c": 74, "f": 18}}
  ]
}`

const mockDeficitPlan = `{
  "workouts": [
    {"day": "Mon", "title": "Fat Burn Circuit", "burn_kcal_est": 420, "exercises": [
      {"name": "Kettlebell Swing", "sets": 4, "reps": "15"},
      {"name": "Goblet Squat", "sets": 4, "reps": "12"},
      {"name": "Jump Rope", "sets": 3, "reps": "60 sec"}
    ]},
    {"day": "Tue", "title": "Steady-State Cardio", "burn_kcal_est": 350, "exercises": [
      {"name": "Incline Walk", "sets": 1, "reps": "40 min"}
    ]},
    {"day": "Thu", "title": "HIIT Intervals", "burn_kcal_est": 450, "exercises": [
      {"name": "Sprint Intervals", "sets": 8, "reps": "30 sec"},
      {"name": "Burpees", "sets": 4, "reps": "12"}
    ]},
    {"day": "Sat", "title": "Full Body Strength", "burn_kcal_est": 340, "exercises": [
      {"name": "Deadlift", "sets": 4, "reps": "6"},
      {"name": "Push-ups", "sets": 4, "reps": "AMRAP"},
      {"name": "Lunges", "sets": 3, "reps": "12"}
    ]}
  ],
  "meals": [
    {"day": "Mon", "meal": "Breakfast", "item": "Egg-white omelette with spinach", "kcal": 280, "macros": {"p": 28, "c": 12, "f": 12}},
    {"day": "Mon", "meal": "Lunch", "item": "Grilled chicken salad", "kcal": 420, "macros": {"p": 42, "c": 24, "f": 16}},
    {"day": "Mon", "meal": "Dinner", "item": "Baked cod with steamed broccoli", "kcal": 400, "macros": {"p": 38, "c": 20, "f": 16}},
    {"day": "Tue", "meal": "Breakfast", "item": "Protein oats", "kcal": 340, "macros": {"p": 26, "c": 44, "f": 8}},
    {"day": "Tue", "meal": "Lunch", "item": "Turkey lettuce wraps", "kcal": 380, "macros": {"p": 36, "c": 22, "f": 14}},
    {"day": "Tue", "meal": "Dinner", "item": "Shrimp stir-fry with cauliflower rice", "kcal": 390, "macros": {"p": 34, "c": 28, "f": 14}},
    {"day": "Wed", "meal": "Breakfast", "item": "Greek yoghurt with almonds", "kcal": 300, "macros": {"p": 24, "c": 20, "f": 13}},
    {"day": "Wed", "meal": "Lunch", "item": "Tuna salad with crispbread", "kcal": 400, "macros": {"p": 38, "c": 30, "f": 12}},
    {"day": "Wed", "meal": "Dinner", "item": "Chicken breast with green beans", "kcal": 420, "macros": {"p": 44, "c": 18, "f": 16}},
    {"day": "Thu", "meal": "Breakfast", "item": "Berry protein smoothie", "kcal": 290, "macros": {"p": 28, "c": 32, "f": 5}},
    {"day": "Thu", "meal": "Lunch", "item": "Chicken and vegetable soup", "kcal": 360, "macros": {"p": 32, "c": 32, "f": 10}},
    {"day": "Thu", "meal": "Dinner", "item": "Lean beef with roasted peppers", "kcal": 450, "macros": {"p": 42, "c": 20, "f": 22}},
    {"day": "Fri", "meal": "Breakfast", "item": "Scrambled eggs with tomato", "kcal": 310, "macros": {"p": 22, "c": 10, "f": 20}},
    {"day": "Fri", "meal": "Lunch", "item": "Quinoa bowl with grilled chicken", "kcal": 440, "macros": {"p": 38, "c": 42, "f": 12}},
    {"day": "Fri", "meal": "Dinner", "item": "Baked salmon with asparagus", "kcal": 430, "macros": {"p": 36, "c": 14, "f": 26}},
    {"day": "Sat", "meal": "Breakfast", "item": "Cottage cheese with berries", "kcal": 260, "macros": {"p": 26, "c": 22, "f": 6}},
    {"day": "Sat", "meal": "Lunch", "item": "Turkey chili", "kcal": 420, "macros": {"p": 38, "c": 36, "f": 12}},
    {"day": "Sat", "meal": "Dinner", "item": "Grilled chicken skewers with salad", "kcal": 410, "macros": {"p": 42, "c": 20, "f": 18}},
    {"day": "Sun", "meal": "Breakfast", "item": "Veggie egg muffins", "kcal": 280, "macros": {"p": 22, "c": 12, "f": 16}},
    {"day": "Sun", "meal": "Lunch", "item": "Salmon poke bowl (light rice)", "kcal": 450, "macros": {"p": 32, "c": 44, "f": 16}},
    {"day": "Sun", "meal": "Dinner", "item": "Zucchini noodles with turkey ragu", "kcal": 390, "macros": {"p": 34, "c": 26, "f": 16}}
  ]
}`
