package availability

import (
	"sort"
	"time"
)

// Interval is an inclusive calendar range attached to one rental order or
// maintenance window. Time of day is ignored; two intervals block the same
// day regardless of hour.
type Interval struct {
	Start time.Time
	End   time.Time
}

// BlockedDates is the set of individual days a product cannot be newly rented,
// keyed by midnight UTC. It is always rebuilt from freshly fetched intervals,
// never mutated in place.
type BlockedDates map[time.Time]struct{}

// DayOf truncates t to its calendar day (midnight UTC).
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Build expands every interval day by day and unions the results. Rental and
// maintenance intervals block equally: a day is blocked when any interval of
// either source covers it. An interval whose End precedes its Start
// contributes zero days.
func Build(rentals, maintenance []Interval) BlockedDates {
	blocked := BlockedDates{}
	blocked.addAll(rentals)
	blocked.addAll(maintenance)
	return blocked
}

func (b BlockedDates) addAll(intervals []Interval) {
	for _, iv := range intervals {
		end := DayOf(iv.End)
		for d := DayOf(iv.Start); !d.After(end); d = d.AddDate(0, 0, 1) {
			b[d] = struct{}{}
		}
	}
}

func (b BlockedDates) Blocked(day time.Time) bool {
	_, ok := b[DayOf(day)]
	return ok
}

// RangeClear reports whether no day in [start, end], both ends included,
// is blocked.
func (b BlockedDates) RangeClear(start, end time.Time) bool {
	e := DayOf(end)
	for d := DayOf(start); !d.After(e); d = d.AddDate(0, 0, 1) {
		if _, ok := b[d]; ok {
			return false
		}
	}
	return true
}

// Days returns the blocked days in ascending order.
func (b BlockedDates) Days() []time.Time {
	out := make([]time.Time, 0, len(b))
	for d := range b {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
