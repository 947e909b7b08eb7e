package storage

import (
	"context"

	"github.com/mehedi-hasan-dev/rentora/libs/db"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/catalog"
)

// CatalogCacheRepository holds the local copies of catalog products and
// delivery zones, kept fresh by the catalog.*.updated.v1 consumers. Reads
// during availability and quote requests hit these tables, not the catalog
// service.
type CatalogCacheRepository struct {
	pool *db.Pool
}

func NewCatalogCacheRepository(pool *db.Pool) *CatalogCacheRepository {
	return &CatalogCacheRepository{pool: pool}
}

func (r *CatalogCacheRepository) UpsertProduct(ctx context.Context, p catalog.Product) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (id, name, daily_price_cents, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			daily_price_cents = EXCLUDED.daily_price_cents,
			updated_at = now()
	`, p.ID, p.Name, p.DailyPriceCents)
	return err
}

func (r *CatalogCacheRepository) GetProduct(ctx context.Context, productID string) (catalog.Product, error) {
	var p catalog.Product
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, daily_price_cents
		FROM products
		WHERE id = $1
	`, productID).Scan(&p.ID, &p.Name, &p.DailyPriceCents)
	if err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

func (r *CatalogCacheRepository) UpsertZone(ctx context.Context, z catalog.Zone) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO delivery_zones (id, name, same_day_available, same_day_fee_cents, cutoff_time, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			same_day_available = EXCLUDED.same_day_available,
			same_day_fee_cents = EXCLUDED.same_day_fee_cents,
			cutoff_time = EXCLUDED.cutoff_time,
			updated_at = now()
	`, z.ID, z.Name, z.SameDayAvailable, z.SameDayFeeCents, z.CutoffTime)
	return err
}

func (r *CatalogCacheRepository) GetZone(ctx context.Context, zoneID string) (catalog.Zone, error) {
	var z catalog.Zone
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, same_day_available, same_day_fee_cents, COALESCE(cutoff_time, '')
		FROM delivery_zones
		WHERE id = $1
	`, zoneID).Scan(&z.ID, &z.Name, &z.SameDayAvailable, &z.SameDayFeeCents, &z.CutoffTime)
	if err != nil {
		return catalog.Zone{}, err
	}
	return z, nil
}
