package services

import (
	"math"
	"slices"
	"time"

	"relocation-estimate-service/internal/domain"
)

const maxAlternativeDates = 3

// Off-hours cost multipliers for the fleet cost model.
// Both early_morning and night use 1.2 here, while pricing charges 1.3
// for night; keep the tables separate (see pricing.go).
var fleetTimeMultipliers = map[domain.TimeSlot]float64{
	domain.TimeSlotEarlyMorning: 1.2,
	domain.TimeSlotNight:        1.2,
}

func fleetMultiplier(slot domain.TimeSlot) float64 {
	if m, ok := fleetTimeMultipliers[slot]; ok {
		return m
	}
	return 1.0
}

// FindOptimalAssignment selects the most cost-efficient truck for a move.
//
// Trucks are filtered by capacity and date availability, costed with the
// fleet multiplier table, and ranked by efficiency (capacity points per
// currency unit, descending). The sort is stable, so ties preserve the
// caller's fleet order and results are reproducible for a given fleet.
// When no truck qualifies the result carries up to three alternative
// dates drawn from the whole fleet's availability.
func FindOptimalAssignment(req domain.AssignmentRequest, fleet []domain.Truck) domain.AssignmentResult {
	candidates := make([]domain.Truck, 0, len(fleet))
	for _, truck := range fleet {
		if truck.CapacityPoints >= req.TotalPoints && truck.AvailableOn(req.PreferredDate) {
			candidates = append(candidates, truck)
		}
	}

	if len(candidates) == 0 {
		return domain.AssignmentResult{
			Success:          false,
			Message:          "no trucks available on requested date",
			AlternativeDates: nearestAlternativeDates(fleet, req.PreferredDate),
		}
	}

	mult := fleetMultiplier(req.TimeSlot)
	ranked := make([]domain.RankedTruck, 0, len(candidates))
	for _, truck := range candidates {
		cost := int64(math.Floor(truck.CostPerKm * req.DistanceKm * mult))
		ranked = append(ranked, domain.RankedTruck{
			Truck:      truck,
			TotalCost:  cost,
			Efficiency: float64(truck.CapacityPoints) / float64(cost),
		})
	}

	slices.SortStableFunc(ranked, func(a, b domain.RankedTruck) int {
		switch {
		case a.Efficiency > b.Efficiency:
			return -1
		case a.Efficiency < b.Efficiency:
			return 1
		}
		return 0
	})

	recommended := ranked[0]

	alternatives := make([]domain.RankedTruck, 0, 2)
	for _, rt := range ranked[1:] {
		if len(alternatives) == 2 {
			break
		}
		alternatives = append(alternatives, rt)
	}

	comparison := make([]domain.CostEntry, 0, len(ranked))
	for _, rt := range ranked {
		comparison = append(comparison, domain.CostEntry{
			Name:       rt.Truck.Name,
			Cost:       rt.TotalCost,
			Efficiency: math.Round(rt.Efficiency*100) / 100,
		})
	}

	return domain.AssignmentResult{
		Success:          true,
		RecommendedTruck: &recommended,
		Alternatives:     alternatives,
		CostComparison:   comparison,
	}
}

// nearestAlternativeDates proposes bookable dates from across the fleet.
// The union of every truck's availability is deduplicated by calendar day,
// sorted chronologically, then the entries nearest the preferred date are
// kept. The proximity sort is stable, so equidistant dates keep the
// earlier one first.
func nearestAlternativeDates(fleet []domain.Truck, preferred time.Time) []time.Time {
	pref := domain.DateOnly(preferred)

	seen := make(map[string]struct{})
	dates := make([]time.Time, 0)
	for _, truck := range fleet {
		for _, a := range truck.Availability {
			d := domain.DateOnly(a)
			key := d.Format("2006-01-02")
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			dates = append(dates, d)
		}
	}

	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })

	slices.SortStableFunc(dates, func(a, b time.Time) int {
		da := absDuration(a.Sub(pref))
		db := absDuration(b.Sub(pref))
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})

	if len(dates) > maxAlternativeDates {
		dates = dates[:maxAlternativeDates]
	}
	return dates
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
