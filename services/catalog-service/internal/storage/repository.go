package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mehedi-hasan-dev/rentora/libs/db"
	"github.com/mehedi-hasan-dev/rentora/services/catalog-service/internal/model"
)

type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

// UpsertProduct writes a product and returns its id. An empty id means a
// new product.
func (r *Repository) UpsertProduct(ctx context.Context, tx pgx.Tx, p *model.Product) (string, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO products (id, name, description, daily_price_cents, active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			description = EXCLUDED.description,
			daily_price_cents = EXCLUDED.daily_price_cents,
			active = EXCLUDED.active,
			updated_at = now()
	`, p.ID, p.Name, p.Description, p.DailyPriceCents, p.Active)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

func (r *Repository) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	var p model.Product
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, COALESCE(description, ''), daily_price_cents, active, created_at, updated_at
		FROM products
		WHERE id = $1
	`, productID).Scan(&p.ID, &p.Name, &p.Description, &p.DailyPriceCents, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *Repository) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, COALESCE(description, ''), daily_price_cents, active, created_at, updated_at
		FROM products
		WHERE active
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.DailyPriceCents, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return products, nil
}

func (r *Repository) UpsertZone(ctx context.Context, tx pgx.Tx, z *model.DeliveryZone) (string, error) {
	if z.ID == "" {
		z.ID = uuid.NewString()
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO delivery_zones (id, name, same_day_available, same_day_fee_cents, cutoff_time)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			same_day_available = EXCLUDED.same_day_available,
			same_day_fee_cents = EXCLUDED.same_day_fee_cents,
			cutoff_time = EXCLUDED.cutoff_time,
			updated_at = now()
	`, z.ID, z.Name, z.SameDayAvailable, z.SameDayFeeCents, z.CutoffTime)
	if err != nil {
		return "", err
	}
	return z.ID, nil
}

func (r *Repository) GetZone(ctx context.Context, zoneID string) (model.DeliveryZone, error) {
	var z model.DeliveryZone
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, same_day_available, same_day_fee_cents, COALESCE(cutoff_time, ''), updated_at
		FROM delivery_zones
		WHERE id = $1
	`, zoneID).Scan(&z.ID, &z.Name, &z.SameDayAvailable, &z.SameDayFeeCents, &z.CutoffTime, &z.UpdatedAt)
	if err != nil {
		return model.DeliveryZone{}, err
	}
	return z, nil
}

func (r *Repository) ListZones(ctx context.Context) ([]model.DeliveryZone, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, same_day_available, same_day_fee_cents, COALESCE(cutoff_time, ''), updated_at
		FROM delivery_zones
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []model.DeliveryZone
	for rows.Next() {
		var z model.DeliveryZone
		if err := rows.Scan(&z.ID, &z.Name, &z.SameDayAvailable, &z.SameDayFeeCents, &z.CutoffTime, &z.UpdatedAt); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return zones, nil
}

// UpsertBundle replaces the bundle row and its member items atomically.
func (r *Repository) UpsertBundle(ctx context.Context, tx pgx.Tx, b *model.Bundle) (string, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO bundles (id, name, discount_percent, active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			discount_percent = EXCLUDED.discount_percent,
			active = EXCLUDED.active,
			updated_at = now()
	`, b.ID, b.Name, b.DiscountPercent, b.Active)
	if err != nil {
		return "", err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM bundle_items WHERE bundle_id = $1`, b.ID); err != nil {
		return "", err
	}
	for _, item := range b.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO bundle_items (bundle_id, product_id, quantity)
			VALUES ($1, $2, $3)
		`, b.ID, item.ProductID, item.Quantity); err != nil {
			return "", err
		}
	}
	return b.ID, nil
}

// GetBundle loads a bundle together with its items and each member's
// current daily price.
func (r *Repository) GetBundle(ctx context.Context, bundleID string) (model.Bundle, error) {
	var b model.Bundle
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, discount_percent, active, updated_at
		FROM bundles
		WHERE id = $1
	`, bundleID).Scan(&b.ID, &b.Name, &b.DiscountPercent, &b.Active, &b.UpdatedAt)
	if err != nil {
		return model.Bundle{}, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT bi.product_id::text, bi.quantity, p.daily_price_cents
		FROM bundle_items bi
		JOIN products p ON p.id = bi.product_id
		WHERE bi.bundle_id = $1
		ORDER BY bi.product_id
	`, bundleID)
	if err != nil {
		return model.Bundle{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.BundleItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.DailyPriceCents); err != nil {
			return model.Bundle{}, err
		}
		b.Items = append(b.Items, item)
	}
	if rows.Err() != nil {
		return model.Bundle{}, rows.Err()
	}
	return b, nil
}

func (r *Repository) ListBundles(ctx context.Context) ([]model.Bundle, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, discount_percent, active, updated_at
		FROM bundles
		WHERE active
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bundles []model.Bundle
	for rows.Next() {
		var b model.Bundle
		if err := rows.Scan(&b.ID, &b.Name, &b.DiscountPercent, &b.Active, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return bundles, nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
