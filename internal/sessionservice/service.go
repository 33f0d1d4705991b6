// Package sessionservice manages business logic layer of the single active session.
package sessionservice

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/pkg/delaypkg"
)

// Repo provides data access layer interface needed by session service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package sessionservice
type Repo interface {
	Get(ctx context.Context) (domain.Profile, error)
	Set(ctx context.Context, profile domain.Profile) error
	Clear(ctx context.Context) error
}

// Directory provides the account directory interface needed by session service layer.
type Directory interface {
	FindByCredentials(ctx context.Context, username, password string) (domain.Profile, error)
}

// Audit provides the security log interface needed by session service layer.
type Audit interface {
	Append(ctx context.Context, userID string, activity domain.ActivityType, description string, success bool) (domain.SecurityEvent, error)
}

// Service owns the current-session reference. At most one session is active
// per process; the mutex guards the in-memory copy against concurrent
// requests.
type Service struct {
	repo      Repo
	directory Directory
	audit     Audit
	latency   time.Duration

	mu      sync.Mutex
	current *domain.Profile
	loaded  bool
}

// New returns session service struct to manage session business logic.
func New(sr Repo, directory Directory, audit Audit, latency time.Duration) *Service {
	return &Service{
		repo:      sr,
		directory: directory,
		audit:     audit,
		latency:   latency,
	}
}

// currentLocked lazily hydrates the session from the repo. Callers must hold mu.
func (s *Service) currentLocked(ctx context.Context) (domain.Profile, error) {
	if !s.loaded {
		profile, err := s.repo.Get(ctx)

		s.loaded = true

		if err == nil {
			s.current = &profile
		} else if err != domain.ErrSessionNotFound {
			s.loaded = false
			return domain.Profile{}, err
		}
	}

	if s.current == nil {
		return domain.Profile{}, domain.ErrSessionNotFound
	}

	return *s.current, nil
}

// Login authenticates the given credentials after the simulated network
// delay. Success starts the session and appends one success event; failure
// leaves the session untouched and appends one failure event attributed to
// the system user.
func (s *Service) Login(ctx context.Context, username, password string) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	if err := delaypkg.Wait(ctx, s.latency); err != nil {
		return domain.Profile{}, err
	}

	profile, err := s.directory.FindByCredentials(ctx, username, password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			description := fmt.Sprintf("Failed login attempt with username: %s", username)
			if _, auditErr := s.audit.Append(ctx, domain.SystemUserID, domain.ActivityLogin, description, false); auditErr != nil {
				l.Error().Err(auditErr).Send()
			}
		}

		return domain.Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &profile
	s.loaded = true

	if err := s.repo.Set(ctx, profile); err != nil {
		return domain.Profile{}, err
	}

	description := fmt.Sprintf("Successful login by %s", username)
	if _, auditErr := s.audit.Append(ctx, profile.ID, domain.ActivityLogin, description, true); auditErr != nil {
		l.Error().Err(auditErr).Send()
	}

	return profile, nil
}

// Logout ends the current session, if any, and appends a logout event.
// Logging out with no active session is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.currentLocked(ctx)
	if err != nil {
		if err == domain.ErrSessionNotFound {
			return nil
		}

		return err
	}

	description := fmt.Sprintf("User %s logged out", profile.Username)
	if _, auditErr := s.audit.Append(ctx, profile.ID, domain.ActivityLogin, description, true); auditErr != nil {
		l.Error().Err(auditErr).Send()
	}

	s.current = nil

	return s.repo.Clear(ctx)
}

// Current returns the profile of the authenticated account, if any.
func (s *Service) Current(ctx context.Context) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentLocked(ctx)
}

// UpdateBalance keeps the session projection in sync with the directory
// after a balance change. Accounts other than the current one are ignored.
func (s *Service) UpdateBalance(ctx context.Context, accountID, balance string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.currentLocked(ctx)
	if err != nil {
		if err == domain.ErrSessionNotFound {
			return nil
		}

		return err
	}

	if profile.ID != accountID {
		return nil
	}

	profile.Balance = balance
	s.current = &profile

	return s.repo.Set(ctx, profile)
}
