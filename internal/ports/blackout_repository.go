package ports

import (
	"context"
	"time"
)

// Port: a boundary for retrieving blackout dates (days closed to booking).
type BlackoutRepository interface {
	// Return all blackout dates, date-only, in chronological order.
	ListBlackoutDates(ctx context.Context) ([]time.Time, error)
}
