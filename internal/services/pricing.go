package services

import (
	"math"
	"time"

	"relocation-estimate-service/internal/domain"
)

// rateTier maps an inventory point ceiling to a per-kilometer rate.
type rateTier struct {
	maxPoints int
	ratePerKm int64
}

// RateTable owns the tiered base rates and the optional-service prices.
// It is immutable after construction so a future version can load it from
// configuration without changing the pricing call contract.
type RateTable struct {
	tiers        []rateTier
	topRatePerKm int64
	optionPrices map[string]int64
}

// DefaultRateTable returns the current production tariff.
func DefaultRateTable() RateTable {
	return RateTable{
		tiers: []rateTier{
			{maxPoints: 50, ratePerKm: 800},
			{maxPoints: 100, ratePerKm: 1000},
			{maxPoints: 200, ratePerKm: 1200},
		},
		topRatePerKm: 1500,
		optionPrices: map[string]int64{
			"packing":  10000,
			"cleaning": 15000,
			"storage":  20000,
			"disposal": 8000,
		},
	}
}

// BaseRateFor returns the per-kilometer rate for an inventory point total.
func (rt RateTable) BaseRateFor(points int) int64 {
	for _, tier := range rt.tiers {
		if points <= tier.maxPoints {
			return tier.ratePerKm
		}
	}
	return rt.topRatePerKm
}

// OptionPrice returns the flat price for an option code.
// Unknown codes price at zero.
func (rt RateTable) OptionPrice(code string) int64 {
	return rt.optionPrices[code]
}

// Time-of-day fare multipliers. Unrecognized slots fall back to 1.0.
// Note: the fleet cost model in fleet.go uses its own table with a single
// 1.2 off-hours multiplier; the two must not be unified without a
// business decision.
var pricingTimeMultipliers = map[domain.TimeSlot]float64{
	domain.TimeSlotEarlyMorning: 1.2,
	domain.TimeSlotNight:        1.3,
}

func pricingMultiplier(slot domain.TimeSlot) float64 {
	if m, ok := pricingTimeMultipliers[slot]; ok {
		return m
	}
	return 1.0
}

// PricingEngine prices relocation jobs from itemized inventory, distance,
// time-of-day, and optional services. It holds no mutable state and is
// safe for concurrent use.
type PricingEngine struct {
	rates RateTable
	now   func() time.Time
}

// NewPricingEngine builds an engine around a rate table.
// A nil now func defaults to time.Now.
func NewPricingEngine(rates RateTable, now func() time.Time) *PricingEngine {
	if now == nil {
		now = time.Now
	}
	return &PricingEngine{rates: rates, now: now}
}

// CalculateEstimate prices one move.
//
// All monetary intermediates are floored to whole currency units so the
// estimate never overcharges through rounding. The reported TimeSurcharge
// is the fare delta over the base fare, not the multiplier.
func (e *PricingEngine) CalculateEstimate(req domain.EstimateRequest) (domain.EstimateResult, error) {
	if req.DistanceKm <= 0 {
		return domain.EstimateResult{}, domain.NewInvalidInput("distance must be greater than zero")
	}
	if req.TaxRate < 0 || req.TaxRate > 1 {
		return domain.EstimateResult{}, domain.NewInvalidInput("tax rate must be between 0 and 1")
	}

	today := domain.DateOnly(e.now())
	move := domain.DateOnly(req.MoveDate)
	horizon := domain.AddBusinessDays(today, domain.BookingHorizonBusinessDays)
	if move.Before(today) || move.After(horizon) {
		return domain.EstimateResult{}, domain.NewInvalidInput("move date must be within 60 business days")
	}

	totalPoints := req.TotalPoints()
	baseRate := e.rates.BaseRateFor(totalPoints)
	baseFare := int64(math.Floor(req.DistanceKm * float64(baseRate)))

	fareWithSurcharge := int64(math.Floor(float64(baseFare) * pricingMultiplier(req.TimeSlot)))
	timeSurcharge := fareWithSurcharge - baseFare

	// Options are a set: duplicates in the request count once.
	var optionsTotal int64
	seen := make(map[string]struct{}, len(req.SelectedOptions))
	for _, code := range req.SelectedOptions {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		optionsTotal += e.rates.OptionPrice(code)
	}

	subtotal := fareWithSurcharge + optionsTotal
	total := int64(math.Floor(float64(subtotal) * (1 + req.TaxRate)))
	taxAmount := total - subtotal

	return domain.EstimateResult{
		BaseFare:      baseFare,
		TimeSurcharge: timeSurcharge,
		OptionsTotal:  optionsTotal,
		Subtotal:      subtotal,
		TaxAmount:     taxAmount,
		Total:         total,
		Breakdown: domain.Breakdown{
			DistanceKm:      req.DistanceKm,
			TotalPoints:     totalPoints,
			BaseRate:        baseRate,
			TimeSlot:        req.TimeSlot,
			SelectedOptions: req.SelectedOptions,
		},
	}, nil
}
