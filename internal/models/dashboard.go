package models

import "time"

// StatTrend is the month-over-month movement shown on a stat card.
type StatTrend struct {
	Value      int  `json:"value"` // percent
	IsPositive bool `json:"is_positive"`
}

// StatCard is one headline figure on the dashboard.
type StatCard struct {
	Title       string    `json:"title"`
	Value       string    `json:"value"` // pre-formatted for display, e.g. "1,245" or "68%"
	Description string    `json:"description"`
	Trend       StatTrend `json:"trend"`
}

// OccupancySlice is one segment of the room occupancy pie.
type OccupancySlice struct {
	Name  string `json:"name"` // Available | Occupied | Reserved
	Value int    `json:"value"`
	Color string `json:"color"`
}

// MonthlyTotals is one bar group of the donations/bookings chart.
type MonthlyTotals struct {
	Month     string `json:"month"`
	Donations int    `json:"donations"`
	Bookings  int    `json:"bookings"`
}

// Activity is a single recent-activity feed entry.
type Activity struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"` // booking | donation
	Name       string    `json:"name"`
	Details    string    `json:"details"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DashboardSummary is the full snapshot the dashboard page renders.
type DashboardSummary struct {
	Cards     []StatCard       `json:"cards"`
	Occupancy []OccupancySlice `json:"occupancy"`
	Monthly   []MonthlyTotals  `json:"monthly"`
	UpdatedAt time.Time        `json:"updated_at"`
}
