package ports

import (
	"context"

	"relocation-estimate-service/internal/domain"
)

// Port: a boundary for retrieving the fleet roster from a data source.
type FleetRepository interface {
	// Return all trucks with their availability loaded.
	ListFleet(ctx context.Context) ([]domain.Truck, error)
}
