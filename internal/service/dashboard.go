package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"duttmandir/internal/models"
)

// Baseline figures shown on first render. The ticker drifts some of them so
// the live feed moves; there is no persistence behind any of this.
const (
	baseVisitors     = 1245
	baseOccupancyPct = 68
	totalRooms       = 50
	maxActivities    = 20
)

var monthlySeries = []models.MonthlyTotals{
	{Month: "Jan", Donations: 4000, Bookings: 2400},
	{Month: "Feb", Donations: 3000, Bookings: 1398},
	{Month: "Mar", Donations: 2000, Bookings: 9800},
	{Month: "Apr", Donations: 2780, Bookings: 3908},
	{Month: "May", Donations: 1890, Bookings: 4800},
	{Month: "Jun", Donations: 2390, Bookings: 3800},
	{Month: "Jul", Donations: 3490, Bookings: 4300},
}

// DashboardService serves the mock statistics snapshot. Reads come from
// handlers and the websocket feed; writes come from the ticker only.
type DashboardService struct {
	mu           sync.RWMutex
	visitors     int
	occupancyPct int
	available    int
	occupied     int
	reserved     int
	activities   []models.Activity
	updatedAt    time.Time
}

func NewDashboardService() *DashboardService {
	now := time.Now().UTC()
	return &DashboardService{
		visitors:     baseVisitors,
		occupancyPct: baseOccupancyPct,
		available:    28,
		occupied:     15,
		reserved:     7,
		activities:   seedActivities(now),
		updatedAt:    now,
	}
}

func seedActivities(now time.Time) []models.Activity {
	return []models.Activity{
		{ID: "1", Type: "booking", Name: "Rohan Sharma", Details: "Booked Room 305 for 3 nights", OccurredAt: now.Add(-2 * time.Hour)},
		{ID: "2", Type: "donation", Name: "Priya Patel", Details: "Donated ₹5,000 for temple renovation", OccurredAt: now.Add(-5 * time.Hour)},
		{ID: "3", Type: "booking", Name: "Amit Verma", Details: "Booked Room 212 for 1 night", OccurredAt: now.Add(-24 * time.Hour)},
		{ID: "4", Type: "donation", Name: "Rajesh Kumar", Details: "Donated ₹2,500 for daily puja", OccurredAt: now.Add(-26 * time.Hour)},
		{ID: "5", Type: "booking", Name: "Neha Singh", Details: "Booked Room 110 for 2 nights", OccurredAt: now.Add(-48 * time.Hour)},
	}
}

// Summary returns the full snapshot: stat cards, occupancy pie and the
// monthly donations/bookings series.
func (s *DashboardService) Summary(ctx context.Context) (models.DashboardSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := []models.StatCard{
		{
			Title:       "Total Visitors",
			Value:       groupDigits(s.visitors),
			Description: "This month",
			Trend:       models.StatTrend{Value: 12, IsPositive: true},
		},
		{
			Title:       "Room Occupancy",
			Value:       strconv.Itoa(s.occupancyPct) + "%",
			Description: strconv.Itoa(totalRooms) + " rooms total",
			Trend:       models.StatTrend{Value: 5, IsPositive: true},
		},
		{
			Title:       "Donations",
			Value:       "₹52,489",
			Description: "This month",
			Trend:       models.StatTrend{Value: 8, IsPositive: true},
		},
		{
			Title:       "Upcoming Events",
			Value:       "8",
			Description: "Next 30 days",
			Trend:       models.StatTrend{Value: 2, IsPositive: true},
		},
	}

	occupancy := []models.OccupancySlice{
		{Name: "Available", Value: s.available, Color: "#22c55e"},
		{Name: "Occupied", Value: s.occupied, Color: "#ef4444"},
		{Name: "Reserved", Value: s.reserved, Color: "#f59e0b"},
	}

	monthly := make([]models.MonthlyTotals, len(monthlySeries))
	copy(monthly, monthlySeries)

	return models.DashboardSummary{
		Cards:     cards,
		Occupancy: occupancy,
		Monthly:   monthly,
		UpdatedAt: s.updatedAt,
	}, nil
}

// Activities returns the recent-activity feed, newest first.
func (s *DashboardService) Activities(ctx context.Context) ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Activity, len(s.activities))
	copy(out, s.activities)
	return out, nil
}

// driftVisitors nudges the visitor count, clamped at zero.
func (s *DashboardService) driftVisitors(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visitors += delta
	if s.visitors < 0 {
		s.visitors = 0
	}
	s.updatedAt = time.Now().UTC()
}

// shiftOccupancy moves one room between Available and Occupied.
func (s *DashboardService) shiftOccupancy(checkIn bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case checkIn && s.available > 0:
		s.available--
		s.occupied++
	case !checkIn && s.occupied > 0:
		s.occupied--
		s.available++
	default:
		return
	}
	s.occupancyPct = (s.occupied + s.reserved) * 100 / totalRooms
	s.updatedAt = time.Now().UTC()
}

// prependActivity adds a feed entry, keeping the list bounded.
func (s *DashboardService) prependActivity(a models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = append([]models.Activity{a}, s.activities...)
	if len(s.activities) > maxActivities {
		s.activities = s.activities[:maxActivities]
	}
	s.updatedAt = time.Now().UTC()
}

// groupDigits renders n with thousands separators, e.g. 1245 -> "1,245".
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return s
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
