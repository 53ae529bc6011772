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

// Postgres-backed implementation of the BlackoutRepository port.
type PostgresBlackoutRepository struct{ DB *sql.DB }

func NewPostgresBlackoutRepository(db *sql.DB) *PostgresBlackoutRepository {
	return &PostgresBlackoutRepository{DB: db}
}

// Return all blackout dates in chronological order.
func (r *PostgresBlackoutRepository) ListBlackoutDates(ctx context.Context) (_ []time.Time, err error) {
	defer obs.Time(ctx, "blackout.repo.ListBlackoutDates")(&err)

	if r.DB == nil {
		return nil, errors.New("blackout repository: DB is nil")
	}

	query := `
	SELECT blackout_date
	FROM blackout_dates
	ORDER BY blackout_date;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list blackout dates: query blackout_dates table: %w", err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0, 16)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("list blackout dates: scan row: %w", err)
		}
		dates = append(dates, domain.DateOnly(d))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list blackout dates: row iteration: %w", err)
	}

	return dates, nil
}
