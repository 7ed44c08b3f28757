package reports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fitforge/fitforge-api/internal/ai"
	"github.com/fitforge/fitforge-api/internal/auth"
	"github.com/fitforge/fitforge-api/internal/plans"
	"github.com/fitforge/fitforge-api/internal/storage/memory"
)

type cannedProvider struct {
	response string
}

func (p *cannedProvider) GeneratePlan(ctx context.Context, req ai.GenerateRequest) (string, error) {
	return p.response, nil
}

const weekPlanJSON = `{
	"workouts": [
		{"day": "Mon", "title": "HIIT + Core", "burn_kcal_est": 250, "exercises": [{"name": "Burpees", "sets": 3, "reps": "12"}]}
	],
	"meals": [
		{"day": "Mon", "meal": "Breakfast", "item": "Greek-yoghurt bowl", "kcal": 450, "macros": {"p": 30, "c": 40, "f": 10}}
	]
}`

func newSeededHandler(t *testing.T) *Handler {
	t.Helper()

	planService := plans.NewService(&cannedProvider{response: weekPlanJSON}, memory.New(), nil)
	if _, err := planService.Generate(context.Background(), auth.DefaultOwner, plans.GeneratePlanRequest{
		HeightCm: 180,
		WeightKg: 75,
		Goal:     plans.GoalFatLoss,
	}); err != nil {
		t.Fatalf("seed generation failed: %v", err)
	}

	return NewHandler(planService, NewGenerator())
}

func TestHandleGetWeekCSV(t *testing.T) {
	h := newSeededHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/week?format=csv", nil)
	w := httptest.NewRecorder()
	h.HandleGetWeek(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %s", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "day,kind,title,detail,kcal,protein_g,carbs_g,fat_g") {
		t.Errorf("expected CSV header, got:\n%s", body)
	}
	if !strings.Contains(body, "Mon,workout,HIIT + Core,1 exercises,250,,,") {
		t.Errorf("expected workout row, got:\n%s", body)
	}
	if !strings.Contains(body, "Mon,meal,Breakfast,Greek-yoghurt bowl,450,30,40,10") {
		t.Errorf("expected meal row, got:\n%s", body)
	}
}

func TestHandleGetWeekPDF(t *testing.T) {
	h := newSeededHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/week?format=pdf", nil)
	w := httptest.NewRecorder()
	h.HandleGetWeek(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Error("expected PDF magic bytes")
	}
}

func TestHandleGetWeekDefaultsToPDF(t *testing.T) {
	h := newSeededHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/week", nil)
	w := httptest.NewRecorder()
	h.HandleGetWeek(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", ct)
	}
}

func TestHandleGetWeekBadFormat(t *testing.T) {
	h := newSeededHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/week?format=docx", nil)
	w := httptest.NewRecorder()
	h.HandleGetWeek(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleGetWeekNoPlan(t *testing.T) {
	planService := plans.NewService(&cannedProvider{response: weekPlanJSON}, memory.New(), nil)
	h := NewHandler(planService, NewGenerator())

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/week?format=csv", nil)
	w := httptest.NewRecorder()
	h.HandleGetWeek(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
