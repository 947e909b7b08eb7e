package handlers

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/catalog"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/pricing"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/storage"
)

// catalogResolver answers product, zone and bundle lookups, preferring the
// live catalog provider and falling back to the local cache when the
// provider is absent or unreachable. Bundle quotes have no cached form, so
// they degrade to nil without the provider.
type catalogResolver struct {
	cache    CatalogStore
	provider catalog.Provider
	logger   *slog.Logger
}

func (c catalogResolver) product(ctx context.Context, productID string) (catalog.Product, bool, error) {
	if c.provider != nil {
		product, found, err := c.provider.GetProduct(ctx, productID)
		if err == nil {
			return product, found, nil
		}
		c.logger.Warn("catalog provider unavailable, using cache", "err", err)
	}
	product, err := c.cache.GetProduct(ctx, productID)
	if err != nil {
		if storage.IsNotFound(err) {
			return catalog.Product{}, false, nil
		}
		return catalog.Product{}, false, err
	}
	return product, true, nil
}

func (c catalogResolver) bundle(ctx context.Context, bundleID string, start, end time.Time) *pricing.BundleQuote {
	if bundleID == "" || c.provider == nil {
		return nil
	}
	quote, found, err := c.provider.QuoteBundle(ctx, bundleID, start, end)
	if err != nil {
		c.logger.Warn("bundle quote failed", "bundle_id", bundleID, "err", err)
		return nil
	}
	if !found {
		return nil
	}
	return &pricing.BundleQuote{
		BasePriceCents:   quote.BasePriceCents,
		BundlePriceCents: quote.BundlePriceCents,
		SavingsCents:     quote.SavingsCents,
		DiscountPercent:  quote.DiscountPercent,
	}
}

// sameDay maps an opt-in plus zone lookup onto pricing input. Lookup
// failures leave the zone nil so the fee is omitted, never an error.
func (c catalogResolver) sameDay(ctx context.Context, optedIn bool, zoneID string) pricing.SameDayOption {
	opt := pricing.SameDayOption{OptedIn: optedIn}
	zoneID = strings.TrimSpace(zoneID)
	if !optedIn || zoneID == "" {
		return opt
	}

	if c.provider != nil {
		zone, found, err := c.provider.CheckSameDay(ctx, zoneID)
		if err == nil {
			if found {
				opt.Zone = zoneToPricing(zone)
			}
			return opt
		}
		c.logger.Warn("catalog provider unavailable, using cache", "err", err)
	}

	zone, err := c.cache.GetZone(ctx, zoneID)
	if err != nil {
		if !storage.IsNotFound(err) {
			c.logger.Warn("zone lookup failed", "zone_id", zoneID, "err", err)
		}
		return opt
	}
	opt.Zone = zoneToPricing(zone)
	return opt
}

func zoneToPricing(zone catalog.Zone) *pricing.SameDayZone {
	return &pricing.SameDayZone{
		Available:  zone.SameDayAvailable,
		FeeCents:   zone.SameDayFeeCents,
		CutoffTime: zone.CutoffTime,
	}
}
