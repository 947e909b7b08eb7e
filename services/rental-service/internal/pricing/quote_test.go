package pricing

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalDays_Inclusive(t *testing.T) {
	if got := TotalDays(day(2024, 3, 1), day(2024, 3, 1)); got != 1 {
		t.Fatalf("same-day range must count 1 day, got %d", got)
	}
	if got := TotalDays(day(2024, 3, 1), day(2024, 3, 4)); got != 4 {
		t.Fatalf("expected 4 days, got %d", got)
	}
	if got := TotalDays(day(2024, 3, 4), day(2024, 3, 1)); got != 0 {
		t.Fatalf("inverted range must count 0 days, got %d", got)
	}
}

func TestQuote_BaseOnly(t *testing.T) {
	bd := Quote(day(2024, 3, 1), day(2024, 3, 3), 1000, 1, Modifiers{})
	if bd.TotalDays != 3 {
		t.Fatalf("expected 3 days, got %d", bd.TotalDays)
	}
	if bd.FinalTotalCents != 3000 {
		t.Fatalf("expected total 3000, got %d", bd.FinalTotalCents)
	}
	if bd.FinalTotalCents != bd.BasePriceCents {
		t.Fatalf("without modifiers total must equal base, got %d vs %d", bd.FinalTotalCents, bd.BasePriceCents)
	}
}

func TestQuote_QuantityMultiplies(t *testing.T) {
	bd := Quote(day(2024, 3, 1), day(2024, 3, 3), 1000, 2, Modifiers{})
	if bd.BasePriceCents != 6000 || bd.FinalTotalCents != 6000 {
		t.Fatalf("expected 6000, got base %d total %d", bd.BasePriceCents, bd.FinalTotalCents)
	}
}

func TestQuote_SameDayFee(t *testing.T) {
	mods := Modifiers{SameDay: SameDayOption{
		OptedIn: true,
		Zone:    &SameDayZone{Available: true, FeeCents: 500, CutoffTime: "14:00"},
	}}
	bd := Quote(day(2024, 3, 1), day(2024, 3, 3), 1000, 1, mods)
	if bd.SameDayFeeCents != 500 {
		t.Fatalf("expected fee 500, got %d", bd.SameDayFeeCents)
	}
	if bd.FinalTotalCents != 3500 {
		t.Fatalf("expected total 3500, got %d", bd.FinalTotalCents)
	}
}

func TestQuote_SameDayFeeIsFlat(t *testing.T) {
	mods := Modifiers{SameDay: SameDayOption{
		OptedIn: true,
		Zone:    &SameDayZone{Available: true, FeeCents: 500},
	}}
	// 5 days, quantity 3: the fee must still be added exactly once.
	bd := Quote(day(2024, 3, 1), day(2024, 3, 5), 1000, 3, mods)
	if bd.SameDayFeeCents != 500 {
		t.Fatalf("fee must not scale with days or quantity, got %d", bd.SameDayFeeCents)
	}
	if bd.FinalTotalCents != 15500 {
		t.Fatalf("expected 15500, got %d", bd.FinalTotalCents)
	}
}

func TestQuote_SameDayGating(t *testing.T) {
	zone := &SameDayZone{Available: true, FeeCents: 500}

	// Not opted in: fee omitted even though the zone offers it.
	bd := Quote(day(2024, 3, 1), day(2024, 3, 3), 1000, 1, Modifiers{
		SameDay: SameDayOption{OptedIn: false, Zone: zone},
	})
	if bd.SameDayFeeCents != 0 || bd.FinalTotalCents != bd.BasePriceCents {
		t.Fatalf("fee must be omitted without opt-in: %+v", bd)
	}

	// Opted in but zone unavailable.
	bd = Quote(day(2024, 3, 1), day(2024, 3, 3), 1000, 1, Modifiers{
		SameDay: SameDayOption{OptedIn: true, Zone: &SameDayZone{Available: false, FeeCents: 500}},
	})
	if bd.SameDayFeeCents != 0 {
		t.Fatalf("fee must be omitted when zone is unavailable: %+v", bd)
	}

	// Opted in but zone info never resolved: degrade, don't fail.
	bd = Quote(day(2024, 3, 1), day(2024, 3, 3), 1000, 1, Modifiers{
		SameDay: SameDayOption{OptedIn: true, Zone: nil},
	})
	if bd.SameDayFeeCents != 0 || bd.FinalTotalCents != 3000 {
		t.Fatalf("missing zone info must omit the fee: %+v", bd)
	}
}

func TestQuote_BundleReplacesUnitPrice(t *testing.T) {
	mods := Modifiers{Bundle: &BundleQuote{
		BasePriceCents:   9000,
		BundlePriceCents: 7200,
		SavingsCents:     1800,
		DiscountPercent:  20,
	}}
	// The individual product's unit price must be ignored.
	bd := Quote(day(2024, 3, 1), day(2024, 3, 3), 99999, 1, mods)
	if bd.BasePriceCents != 9000 {
		t.Fatalf("expected bundle base 9000, got %d", bd.BasePriceCents)
	}
	if bd.BundleDiscountCents != 1800 {
		t.Fatalf("expected discount 1800, got %d", bd.BundleDiscountCents)
	}
	if bd.FinalTotalCents != 7200 {
		t.Fatalf("expected total 7200, got %d", bd.FinalTotalCents)
	}
}

func TestQuote_BundleWithSameDay(t *testing.T) {
	mods := Modifiers{
		Bundle: &BundleQuote{BasePriceCents: 9000, BundlePriceCents: 7200, SavingsCents: 1800},
		SameDay: SameDayOption{
			OptedIn: true,
			Zone:    &SameDayZone{Available: true, FeeCents: 500},
		},
	}
	bd := Quote(day(2024, 3, 1), day(2024, 3, 3), 0, 1, mods)
	if bd.FinalTotalCents != 7700 {
		t.Fatalf("expected 7700, got %d", bd.FinalTotalCents)
	}
}

func TestQuote_Idempotent(t *testing.T) {
	mods := Modifiers{SameDay: SameDayOption{
		OptedIn: true,
		Zone:    &SameDayZone{Available: true, FeeCents: 500},
	}}
	first := Quote(day(2024, 3, 1), day(2024, 3, 3), 1000, 2, mods)
	second := Quote(day(2024, 3, 1), day(2024, 3, 3), 1000, 2, mods)
	if first != second {
		t.Fatalf("identical inputs must produce identical breakdowns: %+v vs %+v", first, second)
	}
}
