package profiles

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fitforge/fitforge-api/internal/auth"
	"github.com/fitforge/fitforge-api/internal/plans"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGet handles GET /v1/profile
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerUserID := auth.OwnerUserID(ctx)

	profile, found, err := h.service.Get(ctx, ownerUserID)
	if err != nil {
		log.Printf("ERROR profiles: get failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to load profile")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found", "No profile has been saved yet")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// HandlePut handles PUT /v1/profile
func (h *Handler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerUserID := auth.OwnerUserID(ctx)

	var req PutProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid request body")
		return
	}

	profile, err := h.service.Put(ctx, ownerUserID, req)
	if err != nil {
		if errors.Is(err, plans.ErrInvalidProfile) {
			writeError(w, http.StatusBadRequest, "invalid_profile", err.Error())
			return
		}
		log.Printf("ERROR profiles: put failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to save profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
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
