package ports

import (
	"context"

	"relocation-estimate-service/internal/domain"
)

// Port: a snapshot cache for the fleet roster.
// Get reports a miss with ok=false rather than an error.
type FleetCache interface {
	Get(ctx context.Context) (fleet []domain.Truck, ok bool, err error)
	Put(ctx context.Context, fleet []domain.Truck) error
}
