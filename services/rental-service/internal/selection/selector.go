package selection

import (
	"time"

	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/availability"
)

// State names the three resting points of the two-click picker.
type State string

const (
	StateEmpty     State = "empty"
	StateStartOnly State = "start_only"
	StateRange     State = "range"
)

// RejectReason explains why a click produced no transition.
type RejectReason string

const (
	ReasonAnchorBlocked RejectReason = "anchor_blocked"
	ReasonRangeBlocked  RejectReason = "range_blocked"
)

// Result reports the outcome of a single click. When Accepted is false the
// selector state is unchanged and Reason is set; callers can tell "rejected"
// apart from "no input" instead of inferring it from nothing happening.
type Result struct {
	Accepted bool
	State    State
	Start    time.Time
	End      time.Time
	Reason   RejectReason
}

// Snapshot is the persistable portion of a selector, scoped to one session
// and one product. Restoring against a freshly built blocked-day set is how
// upstream data changes are picked up between clicks.
type Snapshot struct {
	State State
	Start time.Time
	End   time.Time
}

// Selector mediates date-range picking against a blocked-day set. A finalized
// range never contains a blocked day at the moment it is established; the
// machine has no terminal state and any click on an established range starts
// a new selection.
type Selector struct {
	blocked availability.BlockedDates
	state   State
	start   time.Time
	end     time.Time
}

func New(blocked availability.BlockedDates) *Selector {
	return &Selector{blocked: blocked, state: StateEmpty}
}

// Restore rebuilds a selector from a snapshot. An unrecognized or internally
// inconsistent snapshot degrades to the empty state rather than erroring.
func Restore(blocked availability.BlockedDates, snap Snapshot) *Selector {
	s := New(blocked)
	switch snap.State {
	case StateStartOnly:
		if !snap.Start.IsZero() {
			s.state = StateStartOnly
			s.start = availability.DayOf(snap.Start)
		}
	case StateRange:
		start := availability.DayOf(snap.Start)
		end := availability.DayOf(snap.End)
		if !snap.Start.IsZero() && !snap.End.IsZero() && !end.Before(start) {
			s.state = StateRange
			s.start = start
			s.end = end
		}
	}
	return s
}

func (s *Selector) State() State { return s.state }

func (s *Selector) Snapshot() Snapshot {
	return Snapshot{State: s.state, Start: s.start, End: s.end}
}

// Range returns the established range, if any.
func (s *Selector) Range() (start, end time.Time, ok bool) {
	if s.state != StateRange {
		return time.Time{}, time.Time{}, false
	}
	return s.start, s.end, true
}

// Select applies one click. Transitions:
//
//	Empty        --click--> StartOnly(click)          anchor must be unblocked
//	StartOnly(a) --click < a--> StartOnly(click)      re-anchors, same check
//	StartOnly(a) --click >= a--> Range(a, click)      iff [a, click] is clear
//	Range(_, _)  --click--> StartOnly(click)          starts over
//
// A rejected click leaves the state exactly as it was.
func (s *Selector) Select(date time.Time) Result {
	day := availability.DayOf(date)

	anchoring := s.state == StateEmpty || s.state == StateRange ||
		(s.state == StateStartOnly && day.Before(s.start))
	if anchoring {
		if s.blocked.Blocked(day) {
			return s.rejected(ReasonAnchorBlocked)
		}
		s.state = StateStartOnly
		s.start = day
		s.end = time.Time{}
		return s.accepted()
	}

	// Completing click: candidate range [start, day], end-inclusive.
	if !s.blocked.RangeClear(s.start, day) {
		return s.rejected(ReasonRangeBlocked)
	}
	s.state = StateRange
	s.end = day
	return s.accepted()
}

// Reset discards any selection, e.g. when the shopper navigates to a
// different product.
func (s *Selector) Reset() {
	s.state = StateEmpty
	s.start = time.Time{}
	s.end = time.Time{}
}

func (s *Selector) accepted() Result {
	return Result{Accepted: true, State: s.state, Start: s.start, End: s.end}
}

func (s *Selector) rejected(reason RejectReason) Result {
	return Result{Accepted: false, State: s.state, Start: s.start, End: s.end, Reason: reason}
}
