package service

import (
	"context"
	"time"

	"duttmandir/internal/logger"
	"duttmandir/internal/models"
	"duttmandir/internal/repository"
)

// Authorization owns the session state machine: Anonymous <-> Authenticated.
type Authorization interface {
	Login(ctx context.Context, email, secret string) (models.Identity, error)
	Register(ctx context.Context, p RegisterParams) (models.Identity, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (models.Identity, bool)
}

// Navigation projects the static sidebar menu for a role.
type Navigation interface {
	MenuFor(role models.Role) []models.NavItem
}

// Dashboard exposes the mock statistics the dashboard page renders.
type Dashboard interface {
	Summary(ctx context.Context) (models.DashboardSummary, error)
	Activities(ctx context.Context) ([]models.Activity, error)
}

// Ticker runs the background loop that keeps the live feed moving.
// Stop via context cancellation in main() for graceful shutdown.
type Ticker interface {
	Run(ctx context.Context, tick time.Duration)
}

// Options carries the tunables main() reads from config.
type Options struct {
	SigningKey    string
	LoginDelay    time.Duration
	RegisterDelay time.Duration
	Delayer       Delayer // nil selects the real sleeping delayer
	Log           *logger.Logger
}

type Service struct {
	Authorization
	Navigation
	Dashboard
	Ticker
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	dash := NewDashboardService()
	return &Service{
		Authorization: NewAuthService(repos.Directory, repos.Session, opts),
		Navigation:    NewNavigationService(),
		Dashboard:     dash,
		Ticker:        NewTickerService(dash),
	}
}
