package repositories

import (
	"context"
	"time"

	"relocation-estimate-service/internal/domain"
)

// In-memory fleet and blackout source for tests and local demos.
type MockFleetRepository struct {
	Trucks   []domain.Truck
	Blackout []time.Time
	Err      error
}

func NewMockFleetRepository(trucks []domain.Truck) *MockFleetRepository {
	return &MockFleetRepository{Trucks: trucks}
}

func (m *MockFleetRepository) ListFleet(ctx context.Context) ([]domain.Truck, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Trucks, nil
}

func (m *MockFleetRepository) ListBlackoutDates(ctx context.Context) ([]time.Time, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Blackout, nil
}
