// Package securityservice manages business logic layer of the security log
// and the simulated threat toggle.
package securityservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/engineering-bank/backend/internal/domain"
)

// Repo provides data access layer interface needed by security service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package securityservice
type Repo interface {
	List(ctx context.Context) ([]domain.SecurityEvent, error)
	Insert(ctx context.Context, event domain.SecurityEvent) (domain.SecurityEvent, error)
	ProtocolActive(ctx context.Context) (bool, error)
	SetProtocolActive(ctx context.Context, active bool) error
}

// Service facilitates security log business logic.
type Service struct {
	repo Repo
}

// New returns security service struct to manage security log business logic.
func New(sr Repo) *Service {
	return &Service{
		repo: sr,
	}
}

// Append stores a new event with a generated id and the current wall-clock
// timestamp and returns it. The log is append-only and ordered newest first.
func (s *Service) Append(ctx context.Context, userID string, activity domain.ActivityType, description string, success bool) (domain.SecurityEvent, error) {
	event := domain.SecurityEvent{
		ID:           uuid.NewString(),
		UserID:       userID,
		ActivityType: activity,
		Description:  description,
		Success:      success,
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Insert(ctx, event)
}

// List returns the full security log, newest first.
func (s *Service) List(ctx context.Context) ([]domain.SecurityEvent, error) {
	return s.repo.List(ctx)
}

// ProtocolActive reports whether the security protocol is active.
func (s *Service) ProtocolActive(ctx context.Context) (bool, error) {
	return s.repo.ProtocolActive(ctx)
}

// ActivateProtocol performs the one-way inactive to active transition and
// logs it. Activating an already active protocol is a no-op and appends no
// event.
func (s *Service) ActivateProtocol(ctx context.Context, userID string) error {
	active, err := s.repo.ProtocolActive(ctx)
	if err != nil {
		return err
	}

	if active {
		return nil
	}

	if err := s.repo.SetProtocolActive(ctx, true); err != nil {
		return err
	}

	_, err = s.Append(ctx, userID, domain.ActivitySecurityProtocol, "Security protocol activated", true)

	return err
}

// SimulateThreat logs a simulated hack attempt of the given kind. An active
// protocol blocks the attempt (success=false); otherwise the attempt is
// recorded as successful. No account or transaction data is ever touched.
func (s *Service) SimulateThreat(ctx context.Context, userID, kind string) (domain.SecurityEvent, error) {
	active, err := s.repo.ProtocolActive(ctx)
	if err != nil {
		return domain.SecurityEvent{}, err
	}

	if active {
		description := fmt.Sprintf("Blocked %s hack attempt - Security Protocol Active", kind)
		return s.Append(ctx, userID, domain.ActivityHackAttempt, description, false)
	}

	description := fmt.Sprintf("Successful %s hack attempt", kind)

	return s.Append(ctx, userID, domain.ActivityHackAttempt, description, true)
}
