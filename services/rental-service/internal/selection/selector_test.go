package selection

import (
	"testing"
	"time"

	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/availability"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func blockedOn(days ...time.Time) availability.BlockedDates {
	var intervals []availability.Interval
	for _, d := range days {
		intervals = append(intervals, availability.Interval{Start: d, End: d})
	}
	return availability.Build(intervals, nil)
}

func TestSelect_FirstClickAnchors(t *testing.T) {
	s := New(blockedOn())
	res := s.Select(day(2024, 3, 1))
	if !res.Accepted || res.State != StateStartOnly {
		t.Fatalf("expected accepted start_only, got %+v", res)
	}
	if !res.Start.Equal(day(2024, 3, 1)) {
		t.Fatalf("unexpected anchor: %s", res.Start)
	}
}

func TestSelect_BlockedAnchorRejected(t *testing.T) {
	s := New(blockedOn(day(2024, 3, 1)))
	res := s.Select(day(2024, 3, 1))
	if res.Accepted {
		t.Fatal("blocked anchor must be rejected")
	}
	if res.Reason != ReasonAnchorBlocked {
		t.Fatalf("expected anchor_blocked, got %q", res.Reason)
	}
	if s.State() != StateEmpty {
		t.Fatalf("state must stay empty, got %s", s.State())
	}
}

func TestSelect_RangeWithBlockedDayRejected(t *testing.T) {
	s := New(blockedOn(day(2024, 3, 3)))
	if res := s.Select(day(2024, 3, 1)); !res.Accepted {
		t.Fatalf("anchor click should be accepted: %+v", res)
	}

	res := s.Select(day(2024, 3, 5))
	if res.Accepted {
		t.Fatal("range spanning a blocked day must be rejected")
	}
	if res.Reason != ReasonRangeBlocked {
		t.Fatalf("expected range_blocked, got %q", res.Reason)
	}
	if s.State() != StateStartOnly || !res.Start.Equal(day(2024, 3, 1)) {
		t.Fatalf("state must remain StartOnly(2024-03-01), got %s %s", s.State(), res.Start)
	}
}

func TestSelect_CleanRangeAccepted(t *testing.T) {
	s := New(blockedOn(day(2024, 3, 10)))
	s.Select(day(2024, 3, 1))

	res := s.Select(day(2024, 3, 4))
	if !res.Accepted || res.State != StateRange {
		t.Fatalf("expected accepted range, got %+v", res)
	}
	start, end, ok := s.Range()
	if !ok || !start.Equal(day(2024, 3, 1)) || !end.Equal(day(2024, 3, 4)) {
		t.Fatalf("unexpected range: %s..%s ok=%v", start, end, ok)
	}
}

func TestSelect_SameDayRange(t *testing.T) {
	s := New(blockedOn())
	s.Select(day(2024, 3, 1))
	res := s.Select(day(2024, 3, 1))
	if !res.Accepted || res.State != StateRange {
		t.Fatalf("same-day completing click must form a range, got %+v", res)
	}
	if !res.Start.Equal(res.End) {
		t.Fatalf("expected start == end, got %s..%s", res.Start, res.End)
	}
}

func TestSelect_EarlierClickReanchors(t *testing.T) {
	s := New(blockedOn())
	s.Select(day(2024, 3, 10))

	res := s.Select(day(2024, 3, 5))
	if !res.Accepted || res.State != StateStartOnly {
		t.Fatalf("earlier click must re-anchor, got %+v", res)
	}
	if !res.Start.Equal(day(2024, 3, 5)) {
		t.Fatalf("unexpected anchor: %s", res.Start)
	}
}

func TestSelect_EarlierBlockedClickKeepsAnchor(t *testing.T) {
	s := New(blockedOn(day(2024, 3, 5)))
	s.Select(day(2024, 3, 10))

	res := s.Select(day(2024, 3, 5))
	if res.Accepted {
		t.Fatal("blocked re-anchor must be rejected")
	}
	if s.State() != StateStartOnly || !res.Start.Equal(day(2024, 3, 10)) {
		t.Fatalf("prior anchor must survive, got %s %s", s.State(), res.Start)
	}
}

func TestSelect_ClickOnRangeStartsOver(t *testing.T) {
	s := New(blockedOn())
	s.Select(day(2024, 3, 1))
	s.Select(day(2024, 3, 4))

	res := s.Select(day(2024, 3, 20))
	if !res.Accepted || res.State != StateStartOnly {
		t.Fatalf("click after a range must start a new selection, got %+v", res)
	}
	if !res.Start.Equal(day(2024, 3, 20)) {
		t.Fatalf("unexpected new anchor: %s", res.Start)
	}
	if _, _, ok := s.Range(); ok {
		t.Fatal("old range must be discarded")
	}
}

func TestSelect_TimeOfDayNormalized(t *testing.T) {
	s := New(blockedOn())
	res := s.Select(time.Date(2024, 3, 1, 17, 30, 0, 0, time.UTC))
	if !res.Start.Equal(day(2024, 3, 1)) {
		t.Fatalf("anchor must be normalized to midnight, got %s", res.Start)
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	s := New(blockedOn())
	s.Select(day(2024, 3, 1))

	restored := Restore(blockedOn(), s.Snapshot())
	if restored.State() != StateStartOnly {
		t.Fatalf("expected start_only after restore, got %s", restored.State())
	}
	res := restored.Select(day(2024, 3, 3))
	if !res.Accepted || res.State != StateRange {
		t.Fatalf("restored selector must complete the range, got %+v", res)
	}
}

func TestRestore_GarbageSnapshotDegradesToEmpty(t *testing.T) {
	restored := Restore(blockedOn(), Snapshot{State: "bogus"})
	if restored.State() != StateEmpty {
		t.Fatalf("expected empty, got %s", restored.State())
	}
	inverted := Restore(blockedOn(), Snapshot{
		State: StateRange,
		Start: day(2024, 3, 5),
		End:   day(2024, 3, 1),
	})
	if inverted.State() != StateEmpty {
		t.Fatalf("inverted range snapshot must degrade to empty, got %s", inverted.State())
	}
}

func TestReset(t *testing.T) {
	s := New(blockedOn())
	s.Select(day(2024, 3, 1))
	s.Reset()
	if s.State() != StateEmpty {
		t.Fatalf("expected empty after reset, got %s", s.State())
	}
}
