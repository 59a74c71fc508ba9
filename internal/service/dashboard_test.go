package service

import (
	"context"
	"testing"
)

func TestDashboardService_Summary(t *testing.T) {
	svc := NewDashboardService()

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}

	if len(summary.Cards) != 4 {
		t.Fatalf("expected 4 stat cards, got %d", len(summary.Cards))
	}
	if summary.Cards[0].Title != "Total Visitors" || summary.Cards[0].Value != "1,245" {
		t.Fatalf("unexpected visitors card: %+v", summary.Cards[0])
	}
	if summary.Cards[1].Value != "68%" {
		t.Fatalf("unexpected occupancy card: %+v", summary.Cards[1])
	}

	if len(summary.Occupancy) != 3 {
		t.Fatalf("expected 3 occupancy slices, got %d", len(summary.Occupancy))
	}
	wantSlices := map[string]int{"Available": 28, "Occupied": 15, "Reserved": 7}
	for _, slice := range summary.Occupancy {
		if wantSlices[slice.Name] != slice.Value {
			t.Fatalf("slice %s = %d, want %d", slice.Name, slice.Value, wantSlices[slice.Name])
		}
	}

	if len(summary.Monthly) != 7 || summary.Monthly[0].Month != "Jan" || summary.Monthly[2].Bookings != 9800 {
		t.Fatalf("unexpected monthly series: %+v", summary.Monthly)
	}
	if summary.UpdatedAt.IsZero() {
		t.Fatalf("UpdatedAt not set")
	}
}

func TestDashboardService_Activities(t *testing.T) {
	svc := NewDashboardService()

	activities, err := svc.Activities(context.Background())
	if err != nil {
		t.Fatalf("Activities returned error: %v", err)
	}
	if len(activities) != 5 {
		t.Fatalf("expected 5 seeded activities, got %d", len(activities))
	}
	if activities[0].Name != "Rohan Sharma" || activities[0].Type != "booking" {
		t.Fatalf("unexpected first activity: %+v", activities[0])
	}
	// newest first
	for i := 1; i < len(activities); i++ {
		if activities[i].OccurredAt.After(activities[i-1].OccurredAt) {
			t.Fatalf("activities out of order at %d", i)
		}
	}
}

func TestDashboardService_DriftAndShift(t *testing.T) {
	svc := NewDashboardService()

	svc.driftVisitors(5)
	summary, _ := svc.Summary(context.Background())
	if summary.Cards[0].Value != "1,250" {
		t.Fatalf("drift not applied: %q", summary.Cards[0].Value)
	}

	// clamped at zero
	svc.driftVisitors(-10_000)
	summary, _ = svc.Summary(context.Background())
	if summary.Cards[0].Value != "0" {
		t.Fatalf("visitors not clamped: %q", summary.Cards[0].Value)
	}

	svc.shiftOccupancy(true)
	summary, _ = svc.Summary(context.Background())
	for _, slice := range summary.Occupancy {
		switch slice.Name {
		case "Available":
			if slice.Value != 27 {
				t.Fatalf("Available = %d after check-in", slice.Value)
			}
		case "Occupied":
			if slice.Value != 16 {
				t.Fatalf("Occupied = %d after check-in", slice.Value)
			}
		}
	}
	// (16 occupied + 7 reserved) / 50 rooms
	if summary.Cards[1].Value != "46%" {
		t.Fatalf("occupancy pct not recomputed: %q", summary.Cards[1].Value)
	}
}

func TestDashboardService_ActivityFeedBounded(t *testing.T) {
	svc := NewDashboardService()

	for i := 0; i < maxActivities+10; i++ {
		svc.prependActivity(seedActivities(svc.updatedAt)[0])
	}

	activities, _ := svc.Activities(context.Background())
	if len(activities) != maxActivities {
		t.Fatalf("feed not bounded: %d entries", len(activities))
	}
}

func TestGroupDigits(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1245, "1,245"},
		{52489, "52,489"},
		{1234567, "1,234,567"},
	}
	for _, tc := range cases {
		if got := groupDigits(tc.in); got != tc.want {
			t.Fatalf("groupDigits(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
