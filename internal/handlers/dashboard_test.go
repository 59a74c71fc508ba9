package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"duttmandir/internal/models"
	"duttmandir/internal/service"
)

func getAuthed(t *testing.T, dash *mockDashboard, path string) *httptest.ResponseRecorder {
	t.Helper()
	auth := &mockAuth{currentUser: adminIdentity(), currentOK: true}
	r := newTestRouter(&service.Service{Authorization: auth, Dashboard: dash})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestDashboardSummaryHandler(t *testing.T) {
	dash := &mockDashboard{summary: models.DashboardSummary{
		Cards: []models.StatCard{
			{Title: "Total Visitors", Value: "1,245", Description: "This month"},
		},
		Occupancy: []models.OccupancySlice{
			{Name: "Available", Value: 28, Color: "#22c55e"},
		},
		UpdatedAt: time.Now().UTC(),
	}}

	w := getAuthed(t, dash, "/api/v1/dashboard/summary")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var resp models.DashboardSummary
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Cards) != 1 || resp.Cards[0].Value != "1,245" {
		t.Fatalf("unexpected cards: %+v", resp.Cards)
	}
}

func TestDashboardSummaryHandler_ServiceError(t *testing.T) {
	dash := &mockDashboard{summaryErr: errors.New("boom")}

	w := getAuthed(t, dash, "/api/v1/dashboard/summary")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestDashboardActivitiesHandler(t *testing.T) {
	dash := &mockDashboard{feed: []models.Activity{
		{ID: "1", Type: "booking", Name: "Rohan Sharma", Details: "Booked Room 305 for 3 nights"},
		{ID: "2", Type: "donation", Name: "Priya Patel", Details: "Donated ₹5,000 for temple renovation"},
	}}

	w := getAuthed(t, dash, "/api/v1/dashboard/activities")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Activities []models.Activity `json:"activities"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Activities) != 2 || resp.Activities[1].Type != "donation" {
		t.Fatalf("unexpected activities: %+v", resp.Activities)
	}
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	var out struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Status != "ok" {
		t.Fatalf("unexpected status %q", out.Status)
	}
}
