package availability

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuild_ExpandsInclusive(t *testing.T) {
	blocked := Build([]Interval{
		{Start: day(2024, 3, 1), End: day(2024, 3, 3)},
	}, nil)

	if len(blocked) != 3 {
		t.Fatalf("expected 3 blocked days, got %d", len(blocked))
	}
	for d := 1; d <= 3; d++ {
		if !blocked.Blocked(day(2024, 3, d)) {
			t.Fatalf("expected 2024-03-%02d to be blocked", d)
		}
	}
	if blocked.Blocked(day(2024, 2, 29)) || blocked.Blocked(day(2024, 3, 4)) {
		t.Fatal("days outside the interval must not be blocked")
	}
}

func TestBuild_UnionOfSources(t *testing.T) {
	rentals := []Interval{{Start: day(2024, 3, 1), End: day(2024, 3, 2)}}
	maintenance := []Interval{{Start: day(2024, 3, 10), End: day(2024, 3, 10)}}

	blocked := Build(rentals, maintenance)
	if !blocked.Blocked(day(2024, 3, 1)) {
		t.Fatal("rental-blocked day missing")
	}
	if !blocked.Blocked(day(2024, 3, 10)) {
		t.Fatal("maintenance-blocked day missing")
	}
	if blocked.Blocked(day(2024, 3, 5)) {
		t.Fatal("uncovered day must not be blocked")
	}
}

func TestBuild_TimeOfDayIgnored(t *testing.T) {
	late := time.Date(2024, 3, 1, 23, 45, 0, 0, time.UTC)
	early := time.Date(2024, 3, 2, 0, 15, 0, 0, time.UTC)

	blocked := Build(nil, []Interval{{Start: late, End: early}})
	if !blocked.Blocked(day(2024, 3, 1)) || !blocked.Blocked(day(2024, 3, 2)) {
		t.Fatal("expected both calendar days blocked regardless of hour")
	}
	if len(blocked) != 2 {
		t.Fatalf("expected 2 blocked days, got %d", len(blocked))
	}
}

func TestBuild_InvertedIntervalContributesNothing(t *testing.T) {
	blocked := Build([]Interval{
		{Start: day(2024, 3, 5), End: day(2024, 3, 1)},
	}, nil)
	if len(blocked) != 0 {
		t.Fatalf("inverted interval must block zero days, got %d", len(blocked))
	}
}

func TestRangeClear(t *testing.T) {
	blocked := Build(nil, []Interval{{Start: day(2024, 3, 3), End: day(2024, 3, 3)}})

	if blocked.RangeClear(day(2024, 3, 1), day(2024, 3, 5)) {
		t.Fatal("range spanning a blocked day must not be clear")
	}
	if !blocked.RangeClear(day(2024, 3, 4), day(2024, 3, 5)) {
		t.Fatal("range with no blocked day must be clear")
	}
	if !blocked.RangeClear(day(2024, 3, 1), day(2024, 3, 1)) {
		t.Fatal("single unblocked day must be clear")
	}
}

func TestDays_Sorted(t *testing.T) {
	blocked := Build([]Interval{
		{Start: day(2024, 3, 9), End: day(2024, 3, 10)},
		{Start: day(2024, 3, 1), End: day(2024, 3, 1)},
	}, nil)

	days := blocked.Days()
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i := 1; i < len(days); i++ {
		if !days[i-1].Before(days[i]) {
			t.Fatalf("days not sorted: %v", days)
		}
	}
	if !days[0].Equal(day(2024, 3, 1)) {
		t.Fatalf("expected first day 2024-03-01, got %s", days[0].Format("2006-01-02"))
	}
}
