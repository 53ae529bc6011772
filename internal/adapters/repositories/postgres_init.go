package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Initialize the Postgres schema for fleet and booking data.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTrucksQuery := `
	CREATE TABLE IF NOT EXISTS trucks (
		truck_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		capacity_points INTEGER NOT NULL,
		cost_per_km DOUBLE PRECISION NOT NULL
	);
	`

	createAvailabilityQuery := `
	CREATE TABLE IF NOT EXISTS truck_availability (
		truck_id TEXT NOT NULL REFERENCES trucks(truck_id),
		avail_date DATE NOT NULL,
		PRIMARY KEY (truck_id, avail_date)
	);
	`

	createBlackoutQuery := `
	CREATE TABLE IF NOT EXISTS blackout_dates (
		blackout_date DATE PRIMARY KEY
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_truck_availability_date
	ON truck_availability(avail_date, truck_id);
	`

	statements := []string{
		createTrucksQuery,
		createAvailabilityQuery,
		createBlackoutQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type TruckSeed struct {
	TruckID        string   `json:"truck_id"`
	Name           string   `json:"name"`
	CapacityPoints int      `json:"capacity_points"`
	CostPerKm      float64  `json:"cost_per_km"`
	AvailableDates []string `json:"available_dates"`
}

type FleetSeed struct {
	Trucks        []TruckSeed `json:"trucks"`
	BlackoutDates []string    `json:"blackout_dates"`
}

// Populate the database with fleet and blackout data from a JSON file.
// Dates are YYYY-MM-DD strings.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed fleet: read %q: %w", jsonPath, err)
	}

	var seed FleetSeed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return fmt.Errorf("seed fleet: parse json: %w", err)
	}

	for i, t := range seed.Trucks {
		if strings.TrimSpace(t.TruckID) == "" {
			return fmt.Errorf("seed fleet: truck at index %d: truck_id cannot be empty", i+1)
		}
		if t.CapacityPoints <= 0 {
			return fmt.Errorf("seed fleet: truck %q: capacity_points must be positive", t.TruckID)
		}
		if t.CostPerKm <= 0 {
			return fmt.Errorf("seed fleet: truck %q: cost_per_km must be positive", t.TruckID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed fleet: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	truckStmt, err := tx.Prepare(`
	INSERT INTO trucks (truck_id, name, capacity_points, cost_per_km)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (truck_id) DO UPDATE
	SET name = EXCLUDED.name,
		capacity_points = EXCLUDED.capacity_points,
		cost_per_km = EXCLUDED.cost_per_km;
	`)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare truck insert: %w", err)
	}
	defer truckStmt.Close()

	availStmt, err := tx.Prepare(`
	INSERT INTO truck_availability (truck_id, avail_date)
	VALUES ($1, $2)
	ON CONFLICT (truck_id, avail_date) DO NOTHING;
	`)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare availability insert: %w", err)
	}
	defer availStmt.Close()

	for _, t := range seed.Trucks {
		if _, err := truckStmt.Exec(t.TruckID, strings.TrimSpace(t.Name), t.CapacityPoints, t.CostPerKm); err != nil {
			return fmt.Errorf("seed fleet: insert truck_id=%q: %w", t.TruckID, err)
		}
		for _, ds := range t.AvailableDates {
			d, err := time.Parse("2006-01-02", ds)
			if err != nil {
				return fmt.Errorf("seed fleet: truck %q: invalid date %q: %w", t.TruckID, ds, err)
			}
			if _, err := availStmt.Exec(t.TruckID, d); err != nil {
				return fmt.Errorf("seed fleet: insert availability truck_id=%q date=%q: %w", t.TruckID, ds, err)
			}
		}
	}

	blackoutStmt, err := tx.Prepare(`
	INSERT INTO blackout_dates (blackout_date)
	VALUES ($1)
	ON CONFLICT (blackout_date) DO NOTHING;
	`)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare blackout insert: %w", err)
	}
	defer blackoutStmt.Close()

	for _, ds := range seed.BlackoutDates {
		d, err := time.Parse("2006-01-02", ds)
		if err != nil {
			return fmt.Errorf("seed fleet: invalid blackout date %q: %w", ds, err)
		}
		if _, err := blackoutStmt.Exec(d); err != nil {
			return fmt.Errorf("seed fleet: insert blackout date=%q: %w", ds, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed fleet: commit tx: %w", err)
	}

	return nil
}
