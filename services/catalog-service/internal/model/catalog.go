package model

import "time"

type Product struct {
	ID              string
	Name            string
	Description     string
	DailyPriceCents int64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DeliveryZone struct {
	ID               string
	Name             string
	SameDayAvailable bool
	SameDayFeeCents  int64
	CutoffTime       string
	UpdatedAt        time.Time
}

// Bundle groups products rented together at a percentage discount off the
// sum of the members' individual daily rates.
type Bundle struct {
	ID              string
	Name            string
	DiscountPercent float64
	Active          bool
	Items           []BundleItem
	UpdatedAt       time.Time
}

type BundleItem struct {
	ProductID       string
	Quantity        int
	DailyPriceCents int64
}
