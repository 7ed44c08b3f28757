package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/fitforge/fitforge-api/internal/config"
)

type Handler struct {
	config  *config.Config
	service *Service
}

func NewHandler(cfg *config.Config, service *Service) *Handler {
	return &Handler{
		config:  cfg,
		service: service,
	}
}

// HandleDevAuth issues a development token. Disabled unless
// AUTH_MODE=dev.
func (h *Handler) HandleDevAuth(w http.ResponseWriter, r *http.Request) {
	if h.config.AuthMode != config.AuthModeDev {
		writeError(w, http.StatusNotFound, "not_found", "Dev auth is disabled")
		return
	}

	var req DevAuthRequest
	if r.Body != nil {
		// Body is optional; ignore decode errors for an empty body.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	resp, err := h.service.SignInDev(r.Context(), req.UserID)
	if err != nil {
		log.Printf("ERROR auth: dev sign-in failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to issue token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
