package dto

type TruckResponse struct {
	TruckID        string   `json:"truck_id"`
	Name           string   `json:"name"`
	CapacityPoints int      `json:"capacity_points"`
	CostPerKm      float64  `json:"cost_per_km"`
	AvailableDates []string `json:"available_dates"`
}

type ListFleetResponse struct {
	Trucks []TruckResponse `json:"trucks"`
}
