package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"duttmandir/internal/logger"
	"duttmandir/internal/models"
	"duttmandir/internal/repository"
)

// Simulated latency defaults, matching the observed UX timing.
const (
	defaultLoginDelay    = 1000 * time.Millisecond
	defaultRegisterDelay = 1500 * time.Millisecond

	defaultSigningKey = "dutt-mandir-session" // TODO: require auth.signing_key in config
)

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
)

// AuthService holds the session state machine over the fixed directory.
// In-memory session and the persisted record are updated together in every
// mutating operation; a failed operation leaves both untouched.
type AuthService struct {
	directory     repository.Directory
	sessions      repository.SessionRepo
	delay         Delayer
	loginDelay    time.Duration
	registerDelay time.Duration
	signingKey    []byte
	log           *logger.Logger

	mu      sync.Mutex
	current *models.Identity
}

func NewAuthService(directory repository.Directory, sessions repository.SessionRepo, opts Options) *AuthService {
	s := &AuthService{
		directory:     directory,
		sessions:      sessions,
		delay:         opts.Delayer,
		loginDelay:    opts.LoginDelay,
		registerDelay: opts.RegisterDelay,
		signingKey:    []byte(opts.SigningKey),
		log:           opts.Log,
	}
	if s.delay == nil {
		s.delay = sleepDelayer{}
	}
	if s.loginDelay == 0 {
		s.loginDelay = defaultLoginDelay
	}
	if s.registerDelay == 0 {
		s.registerDelay = defaultRegisterDelay
	}
	if len(s.signingKey) == 0 {
		s.signingKey = []byte(defaultSigningKey)
	}
	return s
}

// Login matches email and secret exactly against the directory. On success
// the identity (secret stripped) becomes the current session. Calling while
// already authenticated overwrites: last write wins.
func (s *AuthService) Login(ctx context.Context, email, secret string) (models.Identity, error) {
	s.delay.Delay(s.loginDelay)

	entry := s.directory.Authenticate(email, secret)
	if entry == nil {
		return models.Identity{}, ErrInvalidCredentials
	}

	identity := entry.Identity
	if err := s.commit(ctx, identity); err != nil {
		return models.Identity{}, err
	}
	return identity, nil
}

// Register creates a session-local identity with role user. The directory is
// never grown, so the new identity cannot log in after the session is gone.
// Its id is directory size + 1, preserved from the original even though it
// repeats across registrations in one process run.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (models.Identity, error) {
	if err := validateRegistration(p); err != nil {
		return models.Identity{}, err
	}

	s.delay.Delay(s.registerDelay)

	if s.directory.FindByEmail(p.Email) != nil {
		return models.Identity{}, ErrEmailAlreadyExists
	}

	identity := models.Identity{
		ID:    s.directory.Size() + 1,
		Name:  p.Name,
		Email: p.Email,
		Role:  models.RoleUser,
	}
	if err := s.commit(ctx, identity); err != nil {
		return models.Identity{}, err
	}
	return identity, nil
}

// Logout clears the session unconditionally. Safe to call while anonymous.
func (s *AuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.current = nil
	return nil
}

// Current reports the authenticated identity, if any. The first call after
// startup restores the session from storage best-effort: corrupt persisted
// data is deleted and reported as absent, never as an error.
func (s *AuthService) Current(ctx context.Context) (models.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return *s.current, true
	}

	token, err := s.sessions.Load(ctx)
	if err != nil {
		if s.log != nil {
			s.log.Warnw("session_load_failed", "err", err)
		}
		return models.Identity{}, false
	}
	if token == "" {
		return models.Identity{}, false
	}

	identity, err := decodeSession(token, s.signingKey)
	if err != nil {
		// Discard the record so the next load does not fail again.
		if s.log != nil {
			s.log.Warnw("session_discarded", "err", err)
		}
		_ = s.sessions.Clear(ctx)
		return models.Identity{}, false
	}

	s.current = &identity
	return identity, true
}

// commit persists the identity and swaps the in-memory session in one step.
func (s *AuthService) commit(ctx context.Context, identity models.Identity) error {
	token, err := encodeSession(identity, s.signingKey)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Save(ctx, token); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.current = &identity
	return nil
}
