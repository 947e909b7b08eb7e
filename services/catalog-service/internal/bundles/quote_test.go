package bundles

import (
	"testing"
	"time"

	"github.com/mehedi-hasan-dev/rentora/services/catalog-service/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalDays(t *testing.T) {
	if got := TotalDays(day(2024, 3, 1), day(2024, 3, 1)); got != 1 {
		t.Fatalf("same-day range must count 1 day, got %d", got)
	}
	if got := TotalDays(day(2024, 3, 1), day(2024, 3, 3)); got != 3 {
		t.Fatalf("expected 3 days, got %d", got)
	}
	if got := TotalDays(day(2024, 3, 3), day(2024, 3, 1)); got != 0 {
		t.Fatalf("inverted range must count 0 days, got %d", got)
	}
}

func TestCompute_DiscountOffMemberSum(t *testing.T) {
	b := model.Bundle{
		ID:              "bun-1",
		DiscountPercent: 20,
		Items: []model.BundleItem{
			{ProductID: "p1", Quantity: 1, DailyPriceCents: 2000},
			{ProductID: "p2", Quantity: 2, DailyPriceCents: 500},
		},
	}
	// Per-day rate 3000, 3 days: base 9000, 20% off.
	q := Compute(b, day(2024, 3, 1), day(2024, 3, 3))
	if q.BasePriceCents != 9000 {
		t.Fatalf("expected base 9000, got %d", q.BasePriceCents)
	}
	if q.SavingsCents != 1800 {
		t.Fatalf("expected savings 1800, got %d", q.SavingsCents)
	}
	if q.BundlePriceCents != 7200 {
		t.Fatalf("expected bundle price 7200, got %d", q.BundlePriceCents)
	}
	if q.BundlePriceCents+q.SavingsCents != q.BasePriceCents {
		t.Fatalf("bundle price plus savings must equal base: %+v", q)
	}
}

func TestCompute_RoundsToNearestCent(t *testing.T) {
	b := model.Bundle{
		DiscountPercent: 15,
		Items:           []model.BundleItem{{ProductID: "p1", Quantity: 1, DailyPriceCents: 333}},
	}
	q := Compute(b, day(2024, 3, 1), day(2024, 3, 1))
	// 15% of 333 is 49.95, rounds to 50.
	if q.SavingsCents != 50 {
		t.Fatalf("expected savings 50, got %d", q.SavingsCents)
	}
	if q.BundlePriceCents != 283 {
		t.Fatalf("expected bundle price 283, got %d", q.BundlePriceCents)
	}
}

func TestCompute_ClampsDiscount(t *testing.T) {
	b := model.Bundle{
		DiscountPercent: 150,
		Items:           []model.BundleItem{{ProductID: "p1", Quantity: 1, DailyPriceCents: 1000}},
	}
	q := Compute(b, day(2024, 3, 1), day(2024, 3, 2))
	if q.BundlePriceCents != 0 || q.SavingsCents != q.BasePriceCents {
		t.Fatalf("discount above 100%% must clamp: %+v", q)
	}
}

func TestCompute_ZeroQuantityCountsAsOne(t *testing.T) {
	b := model.Bundle{
		DiscountPercent: 0,
		Items:           []model.BundleItem{{ProductID: "p1", Quantity: 0, DailyPriceCents: 1000}},
	}
	q := Compute(b, day(2024, 3, 1), day(2024, 3, 1))
	if q.BasePriceCents != 1000 {
		t.Fatalf("expected base 1000, got %d", q.BasePriceCents)
	}
}
