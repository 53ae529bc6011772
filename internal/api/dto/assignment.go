package dto

type AssignmentRequest struct {
	TotalPoints   int     `json:"total_points"`
	DistanceKm    float64 `json:"distance_km"`
	TimeSlot      string  `json:"time_slot"`
	PreferredDate string  `json:"preferred_date"`
}

type RankedTruckResponse struct {
	TruckID        string  `json:"truck_id"`
	Name           string  `json:"name"`
	CapacityPoints int     `json:"capacity_points"`
	TotalCost      int64   `json:"total_cost"`
	Efficiency     float64 `json:"efficiency"`
}

type CostEntryResponse struct {
	Name       string  `json:"name"`
	Cost       int64   `json:"cost"`
	Efficiency float64 `json:"efficiency"`
}

type AssignmentResponse struct {
	Success          bool                  `json:"success"`
	RecommendedTruck *RankedTruckResponse  `json:"recommended_truck,omitempty"`
	Alternatives     []RankedTruckResponse `json:"alternatives,omitempty"`
	CostComparison   []CostEntryResponse   `json:"cost_comparison,omitempty"`
	Message          string                `json:"message,omitempty"`
	AlternativeDates []string              `json:"alternative_dates,omitempty"`
}
