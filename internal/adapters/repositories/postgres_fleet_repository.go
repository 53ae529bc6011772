package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"relocation-estimate-service/internal/domain"
	"relocation-estimate-service/internal/platform/obs"
)

// Postgres-backed implementation of the FleetRepository port.
type PostgresFleetRepository struct{ DB *sql.DB }

func NewPostgresFleetRepository(db *sql.DB) *PostgresFleetRepository {
	return &PostgresFleetRepository{DB: db}
}

// Return all trucks with their availability dates loaded.
func (r *PostgresFleetRepository) ListFleet(ctx context.Context) (_ []domain.Truck, err error) {
	defer obs.Time(ctx, "fleet.repo.ListFleet")(&err)

	if r.DB == nil {
		return nil, errors.New("fleet repository: DB is nil")
	}

	truckQuery := `
	SELECT
		truck_id,
		name,
		capacity_points,
		cost_per_km
	FROM trucks
	ORDER BY truck_id;
	`
	rows, err := r.DB.QueryContext(ctx, truckQuery)
	if err != nil {
		return nil, fmt.Errorf("list fleet: query trucks table: %w", err)
	}
	defer rows.Close()

	trucks := make([]domain.Truck, 0, 16)
	index := make(map[string]int)
	for rows.Next() {
		var t domain.Truck
		if err := rows.Scan(&t.ID, &t.Name, &t.CapacityPoints, &t.CostPerKm); err != nil {
			return nil, fmt.Errorf("list fleet: scan truck row: %w", err)
		}
		index[t.ID] = len(trucks)
		trucks = append(trucks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fleet: truck row iteration: %w", err)
	}

	availQuery := `
	SELECT
		truck_id,
		avail_date
	FROM truck_availability
	ORDER BY truck_id, avail_date;
	`
	availRows, err := r.DB.QueryContext(ctx, availQuery)
	if err != nil {
		return nil, fmt.Errorf("list fleet: query truck_availability table: %w", err)
	}
	defer availRows.Close()

	for availRows.Next() {
		var id string
		var d time.Time
		if err := availRows.Scan(&id, &d); err != nil {
			return nil, fmt.Errorf("list fleet: scan availability row: %w", err)
		}
		i, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("list fleet: availability for unknown truck_id=%q", id)
		}
		trucks[i].Availability = append(trucks[i].Availability, domain.DateOnly(d))
	}
	if err := availRows.Err(); err != nil {
		return nil, fmt.Errorf("list fleet: availability row iteration: %w", err)
	}

	return trucks, nil
}
