package handlers

import (
	"log"
	"net/http"

	"relocation-estimate-service/internal/api/dto"
	"relocation-estimate-service/internal/domain"
	"relocation-estimate-service/internal/ports"
	"relocation-estimate-service/internal/services"
)

// AssignmentHandler runs fleet optimization against the current roster.
// "No trucks available" is a successful response with success=false, not
// an HTTP error.
type AssignmentHandler struct {
	Fleet ports.FleetRepository
}

func (h *AssignmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.AssignmentRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.TotalPoints <= 0 {
		writeError(w, r, http.StatusBadRequest, "total_points must be positive")
		return
	}
	if req.DistanceKm <= 0 {
		writeError(w, r, http.StatusBadRequest, "distance_km must be positive")
		return
	}

	preferred, err := parseDate(req.PreferredDate)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "preferred_date must be a YYYY-MM-DD date")
		return
	}

	fleet, err := h.Fleet.ListFleet(r.Context())
	if err != nil {
		log.Printf("list fleet failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	result := services.FindOptimalAssignment(domain.AssignmentRequest{
		TotalPoints:   req.TotalPoints,
		DistanceKm:    req.DistanceKm,
		TimeSlot:      domain.TimeSlot(req.TimeSlot),
		PreferredDate: preferred,
	}, fleet)

	res := dto.AssignmentResponse{
		Success: result.Success,
		Message: result.Message,
	}

	if result.RecommendedTruck != nil {
		rec := rankedTruckResponse(*result.RecommendedTruck)
		res.RecommendedTruck = &rec
	}
	for _, alt := range result.Alternatives {
		res.Alternatives = append(res.Alternatives, rankedTruckResponse(alt))
	}
	for _, row := range result.CostComparison {
		res.CostComparison = append(res.CostComparison, dto.CostEntryResponse{
			Name:       row.Name,
			Cost:       row.Cost,
			Efficiency: row.Efficiency,
		})
	}
	for _, d := range result.AlternativeDates {
		res.AlternativeDates = append(res.AlternativeDates, d.Format(dateLayout))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func rankedTruckResponse(rt domain.RankedTruck) dto.RankedTruckResponse {
	return dto.RankedTruckResponse{
		TruckID:        rt.Truck.ID,
		Name:           rt.Truck.Name,
		CapacityPoints: rt.Truck.CapacityPoints,
		TotalCost:      rt.TotalCost,
		Efficiency:     rt.Efficiency,
	}
}
