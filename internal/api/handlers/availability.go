package handlers

import (
	"log"
	"net/http"

	"relocation-estimate-service/internal/api/dto"
	"relocation-estimate-service/internal/ports"
	"relocation-estimate-service/internal/services"
)

// AvailabilityHandler checks requested dates against booking rules and
// the stored blackout calendar.
type AvailabilityHandler struct {
	Blackouts ports.BlackoutRepository
	Validator *services.AvailabilityValidator
}

func (h *AvailabilityHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.DateCheckRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	requested, err := parseDate(req.Date)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be a YYYY-MM-DD date")
		return
	}

	blackouts, err := h.Blackouts.ListBlackoutDates(r.Context())
	if err != nil {
		log.Printf("list blackout dates failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	check := h.Validator.ValidateDate(requested, blackouts)

	writeJSON(w, r, http.StatusOK, dto.DateCheckResponse{
		IsValid: check.IsValid,
		Message: check.Message,
	})
}
