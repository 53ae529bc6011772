package handlers

import (
	"errors"
	"net/http"

	"relocation-estimate-service/internal/api/dto"
	"relocation-estimate-service/internal/domain"
	"relocation-estimate-service/internal/services"
)

// EstimateHandler exposes the pricing engine over HTTP.
// It does shape validation only; pricing rules stay in the engine.
type EstimateHandler struct {
	Engine *services.PricingEngine
}

func (h *EstimateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EstimateRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	moveDate, err := parseDate(req.MoveDate)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "move_date must be a YYYY-MM-DD date")
		return
	}

	items := make([]domain.InventoryItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Count <= 0 || it.UnitPoints <= 0 {
			writeError(w, r, http.StatusBadRequest, "item count and unit_points must be positive")
			return
		}
		items = append(items, domain.InventoryItem{
			Name:       it.Name,
			Count:      it.Count,
			UnitPoints: it.UnitPoints,
		})
	}

	result, err := h.Engine.CalculateEstimate(domain.EstimateRequest{
		DistanceKm:      req.DistanceKm,
		Items:           items,
		TimeSlot:        domain.TimeSlot(req.TimeSlot),
		SelectedOptions: req.SelectedOptions,
		MoveDate:        moveDate,
		TaxRate:         req.TaxRate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.EstimateResponse{
		BaseFare:      result.BaseFare,
		TimeSurcharge: result.TimeSurcharge,
		OptionsTotal:  result.OptionsTotal,
		Subtotal:      result.Subtotal,
		TaxAmount:     result.TaxAmount,
		Total:         result.Total,
		Breakdown: dto.BreakdownResponse{
			DistanceKm:      result.Breakdown.DistanceKm,
			TotalPoints:     result.Breakdown.TotalPoints,
			BaseRate:        result.Breakdown.BaseRate,
			TimeSlot:        string(result.Breakdown.TimeSlot),
			SelectedOptions: result.Breakdown.SelectedOptions,
		},
	})
}
