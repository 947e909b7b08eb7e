package catalog

import (
	"context"
	"time"
)

// Product is the subset of catalog product data the rental engine needs.
type Product struct {
	ID              string
	Name            string
	DailyPriceCents int64
}

// Zone is the same-day delivery zone info: whether the zone currently offers
// same-day delivery, its flat fee, and the order cutoff time ("15:04").
// Comparing the cutoff against the current time is the catalog's job, not
// ours; we only honor the Available flag.
type Zone struct {
	ID               string
	Name             string
	SameDayAvailable bool
	SameDayFeeCents  int64
	CutoffTime       string
}

// BundleQuote is the bundle pricing source's answer for one date range.
type BundleQuote struct {
	BundleID         string
	BasePriceCents   int64
	BundlePriceCents int64
	SavingsCents     int64
	DiscountPercent  float64
}

// Provider resolves catalog data live (gRPC to catalog-service). The rental
// service treats it as optional: when absent, the locally cached copies fed
// by catalog events are used instead, and bundle pricing is unavailable.
type Provider interface {
	GetProduct(ctx context.Context, productID string) (Product, bool, error)
	CheckSameDay(ctx context.Context, zoneID string) (Zone, bool, error)
	QuoteBundle(ctx context.Context, bundleID string, start, end time.Time) (BundleQuote, bool, error)
}
