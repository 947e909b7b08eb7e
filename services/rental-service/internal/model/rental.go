package model

import "time"

// Order statuses that occupy inventory: pending, confirmed, in_use.
// Cancelled and completed orders release their dates.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusInUse     = "in_use"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

func OccupyingStatuses() []string {
	return []string{StatusPending, StatusConfirmed, StatusInUse}
}

type RentalOrder struct {
	ID              string
	ProductID       string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	StartDate       time.Time
	EndDate         time.Time
	Quantity        int
	Status          string
	UnitPriceCents  int64
	TotalCents      int64
	BundleID        string
	SameDay         bool
	SameDayFeeCents int64
	DeliveryZoneID  string
	CancelledAt     *time.Time
	CancelReason    string
	CreatedAt       time.Time
}

// MaintenanceWindow is a scheduled blackout period. Only windows with
// BlocksBookings set contribute to the blocked-date set; the rest are
// informational (e.g. an inspection that does not pull stock).
type MaintenanceWindow struct {
	ID             string
	ProductID      string
	StartAt        time.Time
	EndAt          time.Time
	Reason         string
	BlocksBookings bool
	CreatedAt      time.Time
}
