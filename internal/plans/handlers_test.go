package plans

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fitforge/fitforge-api/internal/ai"
	"github.com/fitforge/fitforge-api/internal/auth"
	"github.com/fitforge/fitforge-api/internal/blob"
	"github.com/fitforge/fitforge-api/internal/storage/memory"
)

type stubProvider struct {
	response string
	err      error
	gotReq   ai.GenerateRequest
}

func (p *stubProvider) GeneratePlan(ctx context.Context, req ai.GenerateRequest) (string, error) {
	p.gotReq = req
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func newTestHandler(provider ai.Provider) *Handler {
	return NewHandler(NewService(provider, memory.New(), nil))
}

func generateBody(t *testing.T) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(GeneratePlanRequest{
		HeightCm:  180,
		WeightKg:  75,
		Goal:      GoalFatLoss,
		Equipment: []string{"Dumbbells"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(body)
}

func TestHandleGenerate(t *testing.T) {
	provider := &stubProvider{response: validPlanJSON}
	h := newTestHandler(provider)

	req := httptest.NewRequest(http.MethodPost, "/v1/plans/generate", generateBody(t))
	w := httptest.NewRecorder()
	h.HandleGenerate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stored StoredPlan
	if err := json.NewDecoder(w.Body).Decode(&stored); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if stored.ID == "" {
		t.Error("expected non-empty plan id")
	}
	if len(stored.Plan.Workouts) != 2 || len(stored.Plan.Meals) != 2 {
		t.Errorf("unexpected plan contents: %+v", stored.Plan)
	}
	if stored.Goal != GoalFatLoss {
		t.Errorf("expected goal fat_loss, got %s", stored.Goal)
	}
	if !strings.Contains(provider.gotReq.UserMessage, "Height: 180 cm") {
		t.Errorf("expected profile in provider request:\n%s", provider.gotReq.UserMessage)
	}
}

func TestHandleGenerateInvalidBody(t *testing.T) {
	h := newTestHandler(&stubProvider{response: validPlanJSON})

	req := httptest.NewRequest(http.MethodPost, "/v1/plans/generate", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.HandleGenerate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleGenerateInvalidProfile(t *testing.T) {
	h := newTestHandler(&stubProvider{response: validPlanJSON})

	body, _ := json.Marshal(GeneratePlanRequest{WeightKg: 75, Goal: GoalFatLoss})
	req := httptest.NewRequest(http.MethodPost, "/v1/plans/generate", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.HandleGenerate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid_profile") {
		t.Errorf("expected invalid_profile code, got: %s", w.Body.String())
	}
}

func TestHandleGenerateProviderNotConfigured(t *testing.T) {
	h := newTestHandler(&stubProvider{err: ai.ErrNotConfigured})

	req := httptest.NewRequest(http.MethodPost, "/v1/plans/generate", generateBody(t))
	w := httptest.NewRecorder()
	h.HandleGenerate(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ai_not_configured") {
		t.Errorf("expected ai_not_configured code, got: %s", w.Body.String())
	}
}

func TestHandleGenerateUpstreamError(t *testing.T) {
	upstream := errors.New("openai request failed with status 429: Rate limit reached for gpt-4-turbo")
	h := newTestHandler(&stubProvider{err: upstream})

	req := httptest.NewRequest(http.MethodPost, "/v1/plans/generate", generateBody(t))
	w := httptest.NewRecorder()
	h.HandleGenerate(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Details string `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Code != "upstream_error" {
		t.Errorf("expected upstream_error code, got %s", resp.Error.Code)
	}
	if !strings.Contains(resp.Error.Details, "Rate limit reached") {
		t.Errorf("expected upstream message in details, got %q", resp.Error.Details)
	}
}

func TestHandleGenerateMalformedOutput(t *testing.T) {
	h := newTestHandler(&stubProvider{response: "I cannot produce JSON today"})

	req := httptest.NewRequest(http.MethodPost, "/v1/plans/generate", generateBody(t))
	w := httptest.NewRecorder()
	h.HandleGenerate(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
		RawResponse string `json:"raw_response"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Code != "malformed_output" {
		t.Errorf("expected malformed_output code, got %s", resp.Error.Code)
	}
	if resp.RawResponse != "I cannot produce JSON today" {
		t.Errorf("expected raw response preserved, got %q", resp.RawResponse)
	}
}

func TestHandleGetLastLifecycle(t *testing.T) {
	h := newTestHandler(&stubProvider{response: validPlanJSON})

	// Nothing generated yet.
	req := httptest.NewRequest(http.MethodGet, "/v1/plans/last", nil)
	w := httptest.NewRecorder()
	h.HandleGetLast(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before generation, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/plans/generate", generateBody(t))
	w = httptest.NewRecorder()
	h.HandleGenerate(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("generate failed: %d", w.Code)
	}
	var generated StoredPlan
	json.NewDecoder(w.Body).Decode(&generated)

	req = httptest.NewRequest(http.MethodGet, "/v1/plans/last", nil)
	w = httptest.NewRecorder()
	h.HandleGetLast(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 after generation, got %d", w.Code)
	}
	var fetched StoredPlan
	if err := json.NewDecoder(w.Body).Decode(&fetched); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if fetched.ID != generated.ID {
		t.Errorf("expected same plan id, got %s vs %s", fetched.ID, generated.ID)
	}

	// A second generation replaces the slot.
	req = httptest.NewRequest(http.MethodPost, "/v1/plans/generate", generateBody(t))
	w = httptest.NewRecorder()
	h.HandleGenerate(w, req)
	var regenerated StoredPlan
	json.NewDecoder(w.Body).Decode(&regenerated)
	if regenerated.ID == generated.ID {
		t.Error("expected a new plan id on regeneration")
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/plans/last", nil)
	w = httptest.NewRecorder()
	h.HandleGetLast(w, req)
	json.NewDecoder(w.Body).Decode(&fetched)
	if fetched.ID != regenerated.ID {
		t.Errorf("expected latest plan, got %s", fetched.ID)
	}
}

func TestHandleGetLastWeek(t *testing.T) {
	h := newTestHandler(&stubProvider{response: validPlanJSON})

	req := httptest.NewRequest(http.MethodPost, "/v1/plans/generate", generateBody(t))
	h.HandleGenerate(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/v1/plans/last/week", nil)
	w := httptest.NewRecorder()
	h.HandleGetLastWeek(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Days []DayAggregate `json:"days"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(resp.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(resp.Days))
	}
	if resp.Days[1].Day != "Mon" || resp.Days[1].TotalKcal != 700 {
		t.Errorf("unexpected Mon aggregate: %+v", resp.Days[1])
	}
}

func TestHandleGetLastRawArchive(t *testing.T) {
	store, err := blob.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	h := NewHandler(NewService(&stubProvider{response: validPlanJSON}, memory.New(), store))

	// Nothing archived before generation.
	w := httptest.NewRecorder()
	h.HandleGetLastRaw(w, httptest.NewRequest(http.MethodGet, "/v1/plans/last/raw", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before generation, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.HandleGenerate(w, httptest.NewRequest(http.MethodPost, "/v1/plans/generate", generateBody(t)))
	if w.Code != http.StatusOK {
		t.Fatalf("generate failed: %d", w.Code)
	}
	var generated StoredPlan
	json.NewDecoder(w.Body).Decode(&generated)

	// The archived object is the unparsed model response.
	w = httptest.NewRecorder()
	h.HandleGetLastRaw(w, httptest.NewRequest(http.MethodGet, "/v1/plans/last/raw", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != validPlanJSON {
		t.Errorf("expected archived response returned verbatim, got: %s", w.Body.String())
	}

	// Deleting the plan removes the archived object too.
	w = httptest.NewRecorder()
	h.HandleDeleteLast(w, httptest.NewRequest(http.MethodDelete, "/v1/plans/last", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete failed: %d", w.Code)
	}
	key := "plans/raw/" + generated.ID + ".json"
	if _, err := store.GetObject(context.Background(), key); err == nil {
		t.Errorf("expected archived object %s removed after delete", key)
	}
}

func TestHandleGetLastRawArchivingDisabled(t *testing.T) {
	h := newTestHandler(&stubProvider{response: validPlanJSON})

	h.HandleGenerate(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/plans/generate", generateBody(t)))

	w := httptest.NewRecorder()
	h.HandleGetLastRaw(w, httptest.NewRequest(http.MethodGet, "/v1/plans/last/raw", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with archiving disabled, got %d", w.Code)
	}
}

func TestHandleDeleteLast(t *testing.T) {
	h := newTestHandler(&stubProvider{response: validPlanJSON})

	req := httptest.NewRequest(http.MethodPost, "/v1/plans/generate", generateBody(t))
	h.HandleGenerate(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodDelete, "/v1/plans/last", nil)
	w := httptest.NewRecorder()
	h.HandleDeleteLast(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	// Second delete has nothing left.
	w = httptest.NewRecorder()
	h.HandleDeleteLast(w, httptest.NewRequest(http.MethodDelete, "/v1/plans/last", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", w.Code)
	}
}

func TestPlansAreScopedToOwner(t *testing.T) {
	h := newTestHandler(&stubProvider{response: validPlanJSON})

	ctx := auth.WithUserID(context.Background(), "user-a")
	req := httptest.NewRequest(http.MethodPost, "/v1/plans/generate", generateBody(t)).WithContext(ctx)
	w := httptest.NewRecorder()
	h.HandleGenerate(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("generate failed: %d", w.Code)
	}

	// Another user sees nothing.
	otherCtx := auth.WithUserID(context.Background(), "user-b")
	req = httptest.NewRequest(http.MethodGet, "/v1/plans/last", nil).WithContext(otherCtx)
	w = httptest.NewRecorder()
	h.HandleGetLast(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for other user, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/plans/last", nil).WithContext(ctx)
	w = httptest.NewRecorder()
	h.HandleGetLast(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", w.Code)
	}
}
