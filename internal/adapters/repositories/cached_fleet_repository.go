package repositories

import (
	"context"
	"log"

	"relocation-estimate-service/internal/domain"
	"relocation-estimate-service/internal/ports"
)

// CachedFleetRepository is a read-through decorator over a FleetRepository.
// Cache failures degrade to the underlying repository; they never fail the
// request.
type CachedFleetRepository struct {
	Repo  ports.FleetRepository
	Cache ports.FleetCache
}

func NewCachedFleetRepository(repo ports.FleetRepository, cache ports.FleetCache) *CachedFleetRepository {
	return &CachedFleetRepository{Repo: repo, Cache: cache}
}

func (r *CachedFleetRepository) ListFleet(ctx context.Context) ([]domain.Truck, error) {
	if fleet, ok, err := r.Cache.Get(ctx); err != nil {
		log.Printf("fleet cache get failed: %v", err)
	} else if ok {
		return fleet, nil
	}

	fleet, err := r.Repo.ListFleet(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.Cache.Put(ctx, fleet); err != nil {
		log.Printf("fleet cache put failed: %v", err)
	}

	return fleet, nil
}
