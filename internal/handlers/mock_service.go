package handlers

import (
	"context"
	"net/http"

	"duttmandir/internal/models"
	"duttmandir/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginUser    models.Identity
	loginErr     error
	registerUser models.Identity
	registerErr  error
	logoutErr    error
	currentUser  models.Identity
	currentOK    bool

	lastLoginEmail  string
	lastLoginSecret string
	lastRegister    service.RegisterParams
	logoutCalls     int
	currentCalls    int
}

func (m *mockAuth) Login(ctx context.Context, email, secret string) (models.Identity, error) {
	m.lastLoginEmail = email
	m.lastLoginSecret = secret
	return m.loginUser, m.loginErr
}

func (m *mockAuth) Register(ctx context.Context, p service.RegisterParams) (models.Identity, error) {
	m.lastRegister = p
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Logout(ctx context.Context) error {
	m.logoutCalls++
	return m.logoutErr
}

func (m *mockAuth) Current(ctx context.Context) (models.Identity, bool) {
	m.currentCalls++
	return m.currentUser, m.currentOK
}

type mockNavigation struct {
	items    []models.NavItem
	lastRole models.Role
}

func (m *mockNavigation) MenuFor(role models.Role) []models.NavItem {
	m.lastRole = role
	return m.items
}

type mockDashboard struct {
	summary    models.DashboardSummary
	summaryErr error
	feed       []models.Activity
	feedErr    error
}

func (m *mockDashboard) Summary(ctx context.Context) (models.DashboardSummary, error) {
	return m.summary, m.summaryErr
}

func (m *mockDashboard) Activities(ctx context.Context) ([]models.Activity, error) {
	return m.feed, m.feedErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func adminIdentity() models.Identity {
	return models.Identity{
		ID:     1,
		Name:   "Admin User",
		Email:  "admin@duttmandir.com",
		Role:   models.RoleAdmin,
		Avatar: "/admin-avatar.png",
	}
}

func jsonHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return h
}
