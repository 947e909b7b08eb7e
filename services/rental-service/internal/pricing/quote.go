package pricing

import (
	"time"

	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/availability"
)

// SameDayZone mirrors the delivery zone check from the catalog. CutoffTime is
// informational only; whether "now" beats the cutoff is decided upstream,
// where the zone's Available flag is maintained.
type SameDayZone struct {
	Available  bool
	FeeCents   int64
	CutoffTime string
}

// SameDayOption combines the shopper's opt-in with the resolved zone info.
// A nil Zone means the zone data was not available; the fee is then omitted
// rather than the quote failing.
type SameDayOption struct {
	OptedIn bool
	Zone    *SameDayZone
}

// BundleQuote mirrors the bundle pricing source for a date range. Bundle
// pricing is computed from the bundle's own combined per-day rate and
// discount, independent of the individual product's price.
type BundleQuote struct {
	BasePriceCents   int64
	BundlePriceCents int64
	SavingsCents     int64
	DiscountPercent  float64
}

type Modifiers struct {
	Bundle  *BundleQuote
	SameDay SameDayOption
}

// Breakdown is the priced result for one line item. All amounts are minor
// currency units; no rounding policy beyond that is applied here.
type Breakdown struct {
	BasePriceCents      int64 `json:"base_price_cents"`
	TotalDays           int   `json:"total_days"`
	Quantity            int   `json:"quantity"`
	BundleDiscountCents int64 `json:"bundle_discount_cents"`
	SameDayFeeCents     int64 `json:"same_day_fee_cents"`
	FinalTotalCents     int64 `json:"final_total_cents"`
}

// TotalDays counts calendar days in [start, end] with both ends included:
// a same-day range is one day. An end before the start counts zero.
func TotalDays(start, end time.Time) int {
	s := availability.DayOf(start)
	e := availability.DayOf(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s)/(24*time.Hour)) + 1
}

// Quote prices a validated range. It is pure: identical inputs produce an
// identical breakdown, and there is no error path. Invalid inputs (negative
// price, inverted range) are expected to have been excluded upstream by the
// range selector's invariants.
func Quote(start, end time.Time, unitPriceCents int64, quantity int, mods Modifiers) Breakdown {
	days := TotalDays(start, end)
	qty := int64(quantity)
	bd := Breakdown{TotalDays: days, Quantity: quantity}

	if mods.Bundle != nil {
		// Bundle pricing replaces the single-product rate entirely; the two
		// are mutually exclusive within one line item.
		bd.BasePriceCents = mods.Bundle.BasePriceCents * qty
		bd.BundleDiscountCents = mods.Bundle.SavingsCents * qty
		bd.FinalTotalCents = mods.Bundle.BundlePriceCents * qty
	} else {
		bd.BasePriceCents = unitPriceCents * int64(days) * qty
		bd.FinalTotalCents = bd.BasePriceCents
	}

	if mods.SameDay.OptedIn && mods.SameDay.Zone != nil && mods.SameDay.Zone.Available {
		// Flat surcharge: never multiplied by days or quantity.
		bd.SameDayFeeCents = mods.SameDay.Zone.FeeCents
		bd.FinalTotalCents += bd.SameDayFeeCents
	}

	return bd
}
