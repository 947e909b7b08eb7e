package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mehedi-hasan-dev/rentora/libs/db"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/availability"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/model"
)

type MaintenanceRepository struct {
	pool *db.Pool
}

func NewMaintenanceRepository(pool *db.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{pool: pool}
}

func (r *MaintenanceRepository) Create(ctx context.Context, w *model.MaintenanceWindow) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO maintenance_windows (id, product_id, start_at, end_at, reason, blocks_bookings)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, w.ProductID, w.StartAt, w.EndAt, w.Reason, w.BlocksBookings)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM maintenance_windows WHERE id = $1
	`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *MaintenanceRepository) ListByProduct(ctx context.Context, productID string) ([]model.MaintenanceWindow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, product_id, start_at, end_at, COALESCE(reason, ''), blocks_bookings, created_at
		FROM maintenance_windows
		WHERE product_id = $1
		ORDER BY start_at ASC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var windows []model.MaintenanceWindow
	for rows.Next() {
		var w model.MaintenanceWindow
		if err := rows.Scan(&w.ID, &w.ProductID, &w.StartAt, &w.EndAt, &w.Reason, &w.BlocksBookings, &w.CreatedAt); err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return windows, nil
}

// ListBlockingIntervals returns the blackout intervals that actually block
// bookings for the product within the window.
func (r *MaintenanceRepository) ListBlockingIntervals(ctx context.Context, productID string, from, to time.Time) ([]availability.Interval, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_at, end_at
		FROM maintenance_windows
		WHERE product_id = $1
			AND blocks_bookings
			AND start_at <= $3
			AND end_at >= $2
		ORDER BY start_at ASC
	`, productID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intervals []availability.Interval
	for rows.Next() {
		var iv availability.Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return intervals, nil
}
