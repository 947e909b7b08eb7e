package bundles

import (
	"math"
	"time"

	"github.com/mehedi-hasan-dev/rentora/services/catalog-service/internal/model"
)

// Quote is the priced view of a bundle over a date range. Base is what the
// members would cost individually, Bundle is the discounted price, Savings
// the difference.
type Quote struct {
	BundleID         string
	BasePriceCents   int64
	BundlePriceCents int64
	SavingsCents     int64
	DiscountPercent  float64
	TotalDays        int
}

// TotalDays counts calendar days end-inclusive. An inverted range counts
// zero days.
func TotalDays(start, end time.Time) int {
	startDay := start.UTC().Truncate(24 * time.Hour)
	endDay := end.UTC().Truncate(24 * time.Hour)
	if endDay.Before(startDay) {
		return 0
	}
	return int(endDay.Sub(startDay)/(24*time.Hour)) + 1
}

// Compute prices a bundle for a range. The base rate is the sum of each
// member's daily price times its quantity; the discount is applied to the
// whole base and rounded to the nearest cent.
func Compute(b model.Bundle, start, end time.Time) Quote {
	days := TotalDays(start, end)

	var perDay int64
	for _, item := range b.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		perDay += item.DailyPriceCents * int64(qty)
	}

	base := perDay * int64(days)
	discount := b.DiscountPercent
	if discount < 0 {
		discount = 0
	}
	if discount > 100 {
		discount = 100
	}
	savings := int64(math.Round(float64(base) * discount / 100))

	return Quote{
		BundleID:         b.ID,
		BasePriceCents:   base,
		BundlePriceCents: base - savings,
		SavingsCents:     savings,
		DiscountPercent:  discount,
		TotalDays:        days,
	}
}
