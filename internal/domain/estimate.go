package domain

import "time"

// TimeSlot is the requested time-of-day band for a move.
// Unrecognized values are priced like TimeSlotNormal.
type TimeSlot string

const (
	TimeSlotNormal       TimeSlot = "normal"
	TimeSlotEarlyMorning TimeSlot = "early_morning"
	TimeSlotNight        TimeSlot = "night"
)

// InventoryItem is one line of the customer's itemized inventory.
// Its point contribution sizes both the price tier and the truck.
type InventoryItem struct {
	Name       string
	Count      int
	UnitPoints int
}

// Points returns the item's contribution to the inventory point total.
func (i InventoryItem) Points() int { return i.Count * i.UnitPoints }

// EstimateRequest is the immutable input to a single price calculation.
type EstimateRequest struct {
	DistanceKm      float64
	Items           []InventoryItem
	TimeSlot        TimeSlot
	SelectedOptions []string
	MoveDate        time.Time
	TaxRate         float64
}

// TotalPoints sums the point contribution of every inventory line.
func (r EstimateRequest) TotalPoints() int {
	total := 0
	for _, item := range r.Items {
		total += item.Points()
	}
	return total
}

// Breakdown echoes the inputs that drove the estimate, for display.
type Breakdown struct {
	DistanceKm      float64
	TotalPoints     int
	BaseRate        int64
	TimeSlot        TimeSlot
	SelectedOptions []string
}

// EstimateResult is the fully priced quote for one move.
// All monetary fields are integers in the smallest currency unit and are
// produced via floor, so rounding never overcharges. Constructed once,
// never mutated: Total == Subtotal + TaxAmount and
// Subtotal == BaseFare + TimeSurcharge + OptionsTotal.
type EstimateResult struct {
	BaseFare      int64
	TimeSurcharge int64
	OptionsTotal  int64
	Subtotal      int64
	TaxAmount     int64
	Total         int64
	Breakdown     Breakdown
}
