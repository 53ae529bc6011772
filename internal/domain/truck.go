package domain

import "time"

// Truck is one vehicle in the external fleet roster.
// The engine treats it as read-only: availability is a snapshot owned by
// the caller and is never mutated mid-call.
type Truck struct {
	ID             string
	Name           string
	CapacityPoints int
	CostPerKm      float64
	Availability   []time.Time
}

// AvailableOn reports whether the truck can be booked on the given date.
// Comparison is date-only; instants on the same calendar day match.
func (t Truck) AvailableOn(date time.Time) bool {
	for _, a := range t.Availability {
		if SameDay(a, date) {
			return true
		}
	}
	return false
}

// AssignmentRequest is the immutable input to fleet optimization.
type AssignmentRequest struct {
	TotalPoints   int
	DistanceKm    float64
	TimeSlot      TimeSlot
	PreferredDate time.Time
}

// RankedTruck is a candidate truck with its trip cost and efficiency
// (capacity points per currency unit; higher is better).
type RankedTruck struct {
	Truck      Truck
	TotalCost  int64
	Efficiency float64
}

// CostEntry is one row of the cost comparison shown to back-office staff.
// Efficiency is rounded to two decimals for display.
type CostEntry struct {
	Name       string
	Cost       int64
	Efficiency float64
}

// AssignmentResult reports the outcome of fleet optimization.
// A fleet with no suitable truck is a business outcome, not an error:
// Success is false, Message explains why, and AlternativeDates proposes
// up to three bookable dates nearest the preferred one.
type AssignmentResult struct {
	Success          bool
	RecommendedTruck *RankedTruck
	Alternatives     []RankedTruck
	CostComparison   []CostEntry
	Message          string
	AlternativeDates []time.Time
}
