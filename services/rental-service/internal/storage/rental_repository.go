package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mehedi-hasan-dev/rentora/libs/db"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/availability"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/model"
)

type RentalRepository struct {
	pool *db.Pool
}

type IdempotencyRecord struct {
	ProductID       string
	IdempotencyKey  string
	OrderID         string
	StatusCode      int
	ResponsePayload []byte
}

func NewRentalRepository(pool *db.Pool) *RentalRepository {
	return &RentalRepository{pool: pool}
}

func (r *RentalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

func (r *RentalRepository) LockIdempotencyKey(ctx context.Context, tx pgx.Tx, productID, key string) (IdempotencyRecord, bool, error) {
	rec, err := r.selectIdempotencyForUpdate(ctx, tx, productID, key)
	if err == nil {
		return rec, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return IdempotencyRecord{}, false, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO rental_idempotency_keys (product_id, idempotency_key)
		VALUES ($1, $2)
		ON CONFLICT (product_id, idempotency_key) DO NOTHING
	`, productID, key)
	if err != nil {
		return IdempotencyRecord{}, false, err
	}

	rec, err = r.selectIdempotencyForUpdate(ctx, tx, productID, key)
	if err != nil {
		return IdempotencyRecord{}, false, err
	}
	return rec, false, nil
}

func (r *RentalRepository) FinalizeIdempotency(ctx context.Context, tx pgx.Tx, productID, key, orderID string, statusCode int, response []byte) error {
	_, err := tx.Exec(ctx, `
		UPDATE rental_idempotency_keys
		SET order_id = $3,
			status_code = $4,
			response_payload = $5,
			updated_at = now()
		WHERE product_id = $1 AND idempotency_key = $2
	`, productID, key, orderID, statusCode, response)
	return err
}

func (r *RentalRepository) Create(ctx context.Context, tx pgx.Tx, order *model.RentalOrder) (string, error) {
	var id string
	err := tx.QueryRow(ctx, `
		INSERT INTO rental_orders
			(product_id, customer_name, customer_email, customer_phone, start_date, end_date,
			 quantity, status, unit_price_cents, total_cents, bundle_id, same_day, same_day_fee_cents, delivery_zone_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12, $13, NULLIF($14, ''))
		RETURNING id
	`, order.ProductID, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.StartDate, order.EndDate, order.Quantity, order.Status,
		order.UnitPriceCents, order.TotalCents, order.BundleID, order.SameDay,
		order.SameDayFeeCents, order.DeliveryZoneID).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *RentalRepository) GetOrderForUpdate(ctx context.Context, tx pgx.Tx, orderID string) (model.RentalOrder, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM rental_orders
		WHERE id = $1
		FOR UPDATE
	`, orderID)
	return scanOrder(row)
}

func (r *RentalRepository) CancelOrder(ctx context.Context, tx pgx.Tx, orderID, reason string) (time.Time, error) {
	var cancelledAt time.Time
	err := tx.QueryRow(ctx, `
		UPDATE rental_orders
		SET status = 'cancelled',
			cancelled_at = now(),
			cancellation_reason = $2
		WHERE id = $1
		RETURNING cancelled_at
	`, orderID, reason).Scan(&cancelledAt)
	return cancelledAt, err
}

// ListOccupiedIntervals returns the date intervals of orders that hold
// inventory for the product within the window. Cancelled and completed
// orders do not block.
func (r *RentalRepository) ListOccupiedIntervals(ctx context.Context, productID string, from, to time.Time) ([]availability.Interval, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_date, end_date
		FROM rental_orders
		WHERE product_id = $1
			AND status = ANY($2)
			AND start_date <= $4
			AND end_date >= $3
		ORDER BY start_date ASC
	`, productID, model.OccupyingStatuses(), from, to)
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

func (r *RentalRepository) ListByProduct(ctx context.Context, productID string, limit int) ([]model.RentalOrder, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderColumns+`
		FROM rental_orders
		WHERE product_id = $1
		ORDER BY start_date DESC
		LIMIT $2
	`, productID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.RentalOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return orders, nil
}

// CompleteDueOrders transitions orders whose rental period has ended.
// Rows are locked with SKIP LOCKED so concurrent workers do not collide.
func (r *RentalRepository) CompleteDueOrders(ctx context.Context, tx pgx.Tx, asOf time.Time, limit int) ([]model.RentalOrder, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+orderColumns+`
		FROM rental_orders
		WHERE status IN ('confirmed', 'in_use')
			AND end_date < $1
		ORDER BY end_date
		LIMIT $2
		FOR UPDATE SKIP LOCKED
	`, asOf, limit)
	if err != nil {
		return nil, err
	}
	due, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	if len(due) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(due))
	for _, o := range due {
		ids = append(ids, o.ID)
	}
	if _, err := tx.Exec(ctx, `
		UPDATE rental_orders
		SET status = 'completed'
		WHERE id = ANY($1)
	`, ids); err != nil {
		return nil, err
	}
	return due, nil
}

const orderColumns = `id, product_id, customer_name, customer_email, customer_phone,
	start_date, end_date, quantity, status, unit_price_cents, total_cents,
	COALESCE(bundle_id::text, ''), same_day, same_day_fee_cents, COALESCE(delivery_zone_id::text, ''),
	cancelled_at, COALESCE(cancellation_reason, ''), created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (model.RentalOrder, error) {
	var order model.RentalOrder
	var cancelledAt *time.Time
	err := row.Scan(
		&order.ID,
		&order.ProductID,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.StartDate,
		&order.EndDate,
		&order.Quantity,
		&order.Status,
		&order.UnitPriceCents,
		&order.TotalCents,
		&order.BundleID,
		&order.SameDay,
		&order.SameDayFeeCents,
		&order.DeliveryZoneID,
		&cancelledAt,
		&order.CancelReason,
		&order.CreatedAt,
	)
	if err != nil {
		return model.RentalOrder{}, err
	}
	order.CancelledAt = cancelledAt
	return order, nil
}

func collectOrders(rows pgx.Rows) ([]model.RentalOrder, error) {
	defer rows.Close()
	var orders []model.RentalOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return orders, nil
}

// IsConflict reports an exclusion-constraint violation, i.e. the requested
// dates were taken between validation and insert.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func (r *RentalRepository) selectIdempotencyForUpdate(ctx context.Context, tx pgx.Tx, productID, key string) (IdempotencyRecord, error) {
	var rec IdempotencyRecord
	var responseText string
	err := tx.QueryRow(ctx, `
		SELECT product_id::text,
			idempotency_key,
			COALESCE(order_id::text, ''),
			COALESCE(status_code, 0),
			COALESCE(response_payload::text, '')
		FROM rental_idempotency_keys
		WHERE product_id = $1 AND idempotency_key = $2
		FOR UPDATE
	`, productID, key).Scan(
		&rec.ProductID,
		&rec.IdempotencyKey,
		&rec.OrderID,
		&rec.StatusCode,
		&responseText,
	)
	if err != nil {
		return IdempotencyRecord{}, err
	}
	if responseText != "" {
		rec.ResponsePayload = []byte(responseText)
	}
	return rec, nil
}
