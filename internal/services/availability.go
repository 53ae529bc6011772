package services

import (
	"time"

	"relocation-estimate-service/internal/domain"
)

// DateCheck is the outcome of a date availability check.
// Message is a stable developer-facing string; user-facing copy is the
// caller's concern.
type DateCheck struct {
	IsValid bool
	Message string
}

// AvailabilityValidator checks requested service dates against today, the
// booking horizon, and a blackout-date set supplied by the caller.
type AvailabilityValidator struct {
	now func() time.Time
}

// NewAvailabilityValidator builds a validator.
// A nil now func defaults to time.Now.
func NewAvailabilityValidator(now func() time.Time) *AvailabilityValidator {
	if now == nil {
		now = time.Now
	}
	return &AvailabilityValidator{now: now}
}

// ValidateDate checks one requested date.
// All comparisons are date-only; the horizon uses the same business-day
// arithmetic as the pricing engine's move-date bound.
func (v *AvailabilityValidator) ValidateDate(requested time.Time, blackoutDates []time.Time) DateCheck {
	today := domain.DateOnly(v.now())
	req := domain.DateOnly(requested)

	if req.Before(today) {
		return DateCheck{IsValid: false, Message: "date must be today or later"}
	}

	horizon := domain.AddBusinessDays(today, domain.BookingHorizonBusinessDays)
	if req.After(horizon) {
		return DateCheck{IsValid: false, Message: "date must be within 60 business days"}
	}

	for _, b := range blackoutDates {
		if domain.SameDay(b, req) {
			return DateCheck{IsValid: false, Message: "date is already booked"}
		}
	}

	return DateCheck{IsValid: true, Message: "date is available"}
}
