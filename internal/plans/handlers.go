package plans

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fitforge/fitforge-api/internal/ai"
	"github.com/fitforge/fitforge-api/internal/auth"
)

// Handler handles HTTP requests for plan generation and retrieval.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGenerate handles POST /v1/plans/generate
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerUserID := auth.OwnerUserID(ctx)

	var req GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid request body")
		return
	}

	stored, err := h.service.Generate(ctx, ownerUserID, req)
	if err != nil {
		h.writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

func (h *Handler) writeGenerateError(w http.ResponseWriter, err error) {
	var malformed *MalformedOutputError
	switch {
	case errors.Is(err, ErrInvalidProfile):
		writeError(w, http.StatusBadRequest, "invalid_profile", err.Error())
	case errors.Is(err, ai.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "ai_not_configured", "AI provider is not configured")
	case errors.Is(err, ai.ErrEmptyResponse):
		writeError(w, http.StatusBadGateway, "upstream_error", "AI provider returned an empty response")
	case errors.As(err, &malformed):
		// Keep the raw text available so the caller can inspect what
		// the model actually returned.
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error": map[string]string{
				"code":    "malformed_output",
				"message": "Failed to parse the generated plan",
			},
			"raw_response": malformed.Raw,
		})
	default:
		// Surface the upstream failure message so callers can tell a
		// rate limit from a model outage.
		log.Printf("ERROR plans: generation failed: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error": map[string]string{
				"code":    "upstream_error",
				"message": "Failed to generate plan",
				"details": err.Error(),
			},
		})
	}
}

// HandleGetLast handles GET /v1/plans/last
func (h *Handler) HandleGetLast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerUserID := auth.OwnerUserID(ctx)

	stored, found, err := h.service.Last(ctx, ownerUserID)
	if err != nil {
		log.Printf("ERROR plans: get last failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to load plan")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found", "No plan has been generated yet")
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

// HandleGetLastWeek handles GET /v1/plans/last/week
func (h *Handler) HandleGetLastWeek(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerUserID := auth.OwnerUserID(ctx)

	week, found, err := h.service.LastWeek(ctx, ownerUserID)
	if err != nil {
		log.Printf("ERROR plans: get last week failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to load plan")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found", "No plan has been generated yet")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"days": week})
}

// HandleGetLastRaw handles GET /v1/plans/last/raw. It serves the
// archived, unparsed model response behind the stored plan as a debug
// affordance.
func (h *Handler) HandleGetLastRaw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerUserID := auth.OwnerUserID(ctx)

	data, found, err := h.service.LastRaw(ctx, ownerUserID)
	if err != nil {
		log.Printf("ERROR plans: get last raw failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to load archived response")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found", "No archived response is available")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// HandleDeleteLast handles DELETE /v1/plans/last
func (h *Handler) HandleDeleteLast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerUserID := auth.OwnerUserID(ctx)

	found, err := h.service.DeleteLast(ctx, ownerUserID)
	if err != nil {
		log.Printf("ERROR plans: delete last failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to delete plan")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found", "No plan has been generated yet")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
