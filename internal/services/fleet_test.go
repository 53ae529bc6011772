package services

import (
	"testing"
	"time"

	"relocation-estimate-service/internal/domain"
)

var preferredDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func testFleet() []domain.Truck {
	return []domain.Truck{
		{
			ID: "t-small", Name: "2t Short", CapacityPoints: 60, CostPerKm: 100,
			Availability: []time.Time{day(14), day(16)},
		},
		{
			ID: "t-mid", Name: "4t Standard", CapacityPoints: 120, CostPerKm: 150,
			Availability: []time.Time{day(14), day(15)},
		},
		{
			ID: "t-big", Name: "10t Long", CapacityPoints: 300, CostPerKm: 300,
			Availability: []time.Time{day(14), day(20)},
		},
	}
}

func TestFindOptimalAssignmentRanksByEfficiency(t *testing.T) {
	req := domain.AssignmentRequest{
		TotalPoints:   50,
		DistanceKm:    100,
		TimeSlot:      domain.TimeSlotNormal,
		PreferredDate: preferredDate,
	}

	res := FindOptimalAssignment(req, testFleet())
	if !res.Success {
		t.Fatalf("expected success, got message %q", res.Message)
	}
	if res.RecommendedTruck == nil {
		t.Fatal("RecommendedTruck is nil")
	}

	// Costs: small 10000 (eff 0.006), mid 15000 (eff 0.008), big 30000 (eff 0.01).
	if res.RecommendedTruck.Truck.ID != "t-big" {
		t.Errorf("recommended = %q, want t-big", res.RecommendedTruck.Truck.ID)
	}
	if res.RecommendedTruck.TotalCost != 30000 {
		t.Errorf("recommended cost = %d, want 30000", res.RecommendedTruck.TotalCost)
	}

	if len(res.Alternatives) != 2 {
		t.Fatalf("alternatives = %d, want 2", len(res.Alternatives))
	}
	if res.Alternatives[0].Truck.ID != "t-mid" || res.Alternatives[1].Truck.ID != "t-small" {
		t.Errorf("alternatives = [%s %s], want [t-mid t-small]",
			res.Alternatives[0].Truck.ID, res.Alternatives[1].Truck.ID)
	}

	if len(res.CostComparison) != 3 {
		t.Fatalf("cost comparison rows = %d, want 3", len(res.CostComparison))
	}
	if res.CostComparison[0].Name != "10t Long" || res.CostComparison[0].Cost != 30000 {
		t.Errorf("first comparison row = %+v", res.CostComparison[0])
	}
	if res.CostComparison[0].Efficiency != 0.01 {
		t.Errorf("first row efficiency = %v, want 0.01", res.CostComparison[0].Efficiency)
	}
}

func TestFindOptimalAssignmentFiltersCapacityAndDate(t *testing.T) {
	req := domain.AssignmentRequest{
		TotalPoints:   100,
		DistanceKm:    100,
		TimeSlot:      domain.TimeSlotNormal,
		PreferredDate: preferredDate,
	}

	res := FindOptimalAssignment(req, testFleet())
	if !res.Success {
		t.Fatalf("expected success, got message %q", res.Message)
	}

	// Every ranked truck must hold the load and be free on the date.
	check := func(rt domain.RankedTruck) {
		if rt.Truck.CapacityPoints < req.TotalPoints {
			t.Errorf("truck %s below capacity: %d < %d", rt.Truck.ID, rt.Truck.CapacityPoints, req.TotalPoints)
		}
		if !rt.Truck.AvailableOn(req.PreferredDate) {
			t.Errorf("truck %s not available on preferred date", rt.Truck.ID)
		}
	}
	check(*res.RecommendedTruck)
	for _, alt := range res.Alternatives {
		check(alt)
	}

	// t-small (60 points) must be excluded.
	for _, row := range res.CostComparison {
		if row.Name == "2t Short" {
			t.Error("undersized truck present in cost comparison")
		}
	}
}

func TestFindOptimalAssignmentOffHoursMultiplier(t *testing.T) {
	req := domain.AssignmentRequest{
		TotalPoints:   50,
		DistanceKm:    100,
		TimeSlot:      domain.TimeSlotNight,
		PreferredDate: preferredDate,
	}

	res := FindOptimalAssignment(req, testFleet())
	if !res.Success {
		t.Fatalf("expected success, got message %q", res.Message)
	}

	// Fleet cost uses 1.2 for night (not pricing's 1.3): 300 * 100 * 1.2.
	if res.RecommendedTruck.TotalCost != 36000 {
		t.Errorf("night cost = %d, want 36000", res.RecommendedTruck.TotalCost)
	}

	req.TimeSlot = domain.TimeSlotEarlyMorning
	res = FindOptimalAssignment(req, testFleet())
	if res.RecommendedTruck.TotalCost != 36000 {
		t.Errorf("early morning cost = %d, want 36000", res.RecommendedTruck.TotalCost)
	}
}

func TestFindOptimalAssignmentStableTieBreak(t *testing.T) {
	// Identical trucks tie on efficiency; fleet order must win.
	fleet := []domain.Truck{
		{ID: "first", Name: "A", CapacityPoints: 100, CostPerKm: 100, Availability: []time.Time{day(14)}},
		{ID: "second", Name: "B", CapacityPoints: 100, CostPerKm: 100, Availability: []time.Time{day(14)}},
		{ID: "third", Name: "C", CapacityPoints: 100, CostPerKm: 100, Availability: []time.Time{day(14)}},
	}
	req := domain.AssignmentRequest{
		TotalPoints:   80,
		DistanceKm:    10,
		TimeSlot:      domain.TimeSlotNormal,
		PreferredDate: preferredDate,
	}

	res := FindOptimalAssignment(req, fleet)
	if res.RecommendedTruck.Truck.ID != "first" {
		t.Errorf("recommended = %q, want first (stable order)", res.RecommendedTruck.Truck.ID)
	}
	if res.Alternatives[0].Truck.ID != "second" || res.Alternatives[1].Truck.ID != "third" {
		t.Errorf("alternatives out of fleet order: %q, %q",
			res.Alternatives[0].Truck.ID, res.Alternatives[1].Truck.ID)
	}
}

func TestFindOptimalAssignmentNoCapacity(t *testing.T) {
	req := domain.AssignmentRequest{
		TotalPoints:   250,
		DistanceKm:    100,
		TimeSlot:      domain.TimeSlotNormal,
		PreferredDate: preferredDate,
	}
	fleet := []domain.Truck{
		{ID: "t-1", Name: "A", CapacityPoints: 100, CostPerKm: 100, Availability: []time.Time{day(14)}},
		{ID: "t-2", Name: "B", CapacityPoints: 200, CostPerKm: 150, Availability: []time.Time{day(14), day(15)}},
	}

	res := FindOptimalAssignment(req, fleet)
	if res.Success {
		t.Fatal("expected failure for oversized load")
	}
	if res.Message != "no trucks available on requested date" {
		t.Errorf("Message = %q", res.Message)
	}
	if res.RecommendedTruck != nil {
		t.Error("RecommendedTruck should be nil on failure")
	}
	if len(res.AlternativeDates) == 0 || len(res.AlternativeDates) > 3 {
		t.Fatalf("AlternativeDates length = %d, want 1..3", len(res.AlternativeDates))
	}
}

func TestFindOptimalAssignmentAlternativeDates(t *testing.T) {
	// Nobody is free on the 14th; dates come from the whole fleet.
	fleet := []domain.Truck{
		{ID: "t-1", Name: "A", CapacityPoints: 100, CostPerKm: 100,
			Availability: []time.Time{day(10), day(15), day(25)}},
		{ID: "t-2", Name: "B", CapacityPoints: 200, CostPerKm: 150,
			Availability: []time.Time{day(13), day(15), day(28)}},
	}
	req := domain.AssignmentRequest{
		TotalPoints:   50,
		DistanceKm:    100,
		TimeSlot:      domain.TimeSlotNormal,
		PreferredDate: preferredDate,
	}

	res := FindOptimalAssignment(req, fleet)
	if res.Success {
		t.Fatal("expected failure")
	}

	// |Δ|: 13th=1, 15th=1 (dedup), 10th=4, 25th=11, 28th=14.
	// Tie between 13th and 15th resolves to the earlier date.
	want := []time.Time{day(13), day(15), day(10)}
	if len(res.AlternativeDates) != len(want) {
		t.Fatalf("AlternativeDates = %v, want %v", res.AlternativeDates, want)
	}
	for i := range want {
		if !res.AlternativeDates[i].Equal(want[i]) {
			t.Errorf("AlternativeDates[%d] = %v, want %v", i, res.AlternativeDates[i], want[i])
		}
	}
}

func TestFindOptimalAssignmentEmptyFleet(t *testing.T) {
	req := domain.AssignmentRequest{
		TotalPoints:   10,
		DistanceKm:    5,
		TimeSlot:      domain.TimeSlotNormal,
		PreferredDate: preferredDate,
	}

	res := FindOptimalAssignment(req, nil)
	if res.Success {
		t.Fatal("expected failure for empty fleet")
	}
	if len(res.AlternativeDates) != 0 {
		t.Errorf("AlternativeDates = %v, want empty", res.AlternativeDates)
	}
}

func TestFindOptimalAssignmentDateNormalization(t *testing.T) {
	// Availability entries carrying a time of day still match the same day.
	fleet := []domain.Truck{
		{ID: "t-1", Name: "A", CapacityPoints: 100, CostPerKm: 100,
			Availability: []time.Time{time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC)}},
	}
	req := domain.AssignmentRequest{
		TotalPoints:   50,
		DistanceKm:    10,
		TimeSlot:      domain.TimeSlotNormal,
		PreferredDate: time.Date(2026, 9, 14, 18, 0, 0, 0, time.UTC),
	}

	res := FindOptimalAssignment(req, fleet)
	if !res.Success {
		t.Fatalf("expected same-day instants to match, got %q", res.Message)
	}
}
