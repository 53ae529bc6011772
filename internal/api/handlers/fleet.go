package handlers

import (
	"log"
	"net/http"

	"relocation-estimate-service/internal/api/dto"
	"relocation-estimate-service/internal/ports"
)

// FleetHandler exposes read-only fleet roster retrieval.
type FleetHandler struct {
	Repo ports.FleetRepository
}

func (h *FleetHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	fleet, err := h.Repo.ListFleet(r.Context())
	if err != nil {
		log.Printf("list fleet failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListFleetResponse{
		Trucks: make([]dto.TruckResponse, 0, len(fleet)),
	}
	for _, t := range fleet {
		dates := make([]string, 0, len(t.Availability))
		for _, d := range t.Availability {
			dates = append(dates, d.Format(dateLayout))
		}
		res.Trucks = append(res.Trucks, dto.TruckResponse{
			TruckID:        t.ID,
			Name:           t.Name,
			CapacityPoints: t.CapacityPoints,
			CostPerKm:      t.CostPerKm,
			AvailableDates: dates,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
