package reports

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/fitforge/fitforge-api/internal/auth"
	"github.com/fitforge/fitforge-api/internal/plans"
)

type Handler struct {
	plans     *plans.Service
	generator *Generator
}

func NewHandler(planService *plans.Service, generator *Generator) *Handler {
	return &Handler{
		plans:     planService,
		generator: generator,
	}
}

// HandleGetWeek handles GET /v1/reports/week?format=pdf|csv
func (h *Handler) HandleGetWeek(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerUserID := auth.OwnerUserID(ctx)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = FormatPDF
	}
	if format != FormatPDF && format != FormatCSV {
		writeError(w, http.StatusBadRequest, "invalid_request", "format must be pdf or csv")
		return
	}

	stored, found, err := h.plans.Last(ctx, ownerUserID)
	if err != nil {
		log.Printf("ERROR reports: load plan failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to load plan")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found", "No plan has been generated yet")
		return
	}

	data, err := h.generator.Generate(format, stored, plans.AggregateWeek(stored.Plan))
	if err != nil {
		log.Printf("ERROR reports: generate %s failed: %v", format, err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="weekly-plan.%s"`, format))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
