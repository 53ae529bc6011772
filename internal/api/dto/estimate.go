package dto

type InventoryItemRequest struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	UnitPoints int    `json:"unit_points"`
}

type EstimateRequest struct {
	DistanceKm      float64                `json:"distance_km"`
	Items           []InventoryItemRequest `json:"items"`
	TimeSlot        string                 `json:"time_slot"`
	SelectedOptions []string               `json:"selected_options"`
	MoveDate        string                 `json:"move_date"`
	TaxRate         float64                `json:"tax_rate"`
}

type BreakdownResponse struct {
	DistanceKm      float64  `json:"distance_km"`
	TotalPoints     int      `json:"total_points"`
	BaseRate        int64    `json:"base_rate"`
	TimeSlot        string   `json:"time_slot"`
	SelectedOptions []string `json:"selected_options"`
}

// Monetary fields are integers in the smallest currency unit.
type EstimateResponse struct {
	BaseFare      int64             `json:"base_fare"`
	TimeSurcharge int64             `json:"time_surcharge"`
	OptionsTotal  int64             `json:"options_total"`
	Subtotal      int64             `json:"subtotal"`
	TaxAmount     int64             `json:"tax_amount"`
	Total         int64             `json:"total"`
	Breakdown     BreakdownResponse `json:"breakdown"`
}
