// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// MonthlySummary aggregates a user's month. All amounts are minor units.
type MonthlySummary struct {
	MonthStart          time.Time
	Income              int64
	Bills               int64
	Saving              int64
	Investment          int64
	DisposableSpending  int64
	Total               int64
	Budget              int64
	RemainingDisposable int64
}

// WeeklySummary aggregates one week clipped to the month.
type WeeklySummary struct {
	WeekStart time.Time
	WeekEnd   time.Time // Inclusive last day
	Income    int64
	Cost      int64
	Net       int64
}

// DaySummary aggregates a single calendar day.
type DaySummary struct {
	Date        time.Time
	Income      int64
	Expenditure int64
}
