// Package accountservice manages business logic layer of the account directory.
package accountservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/pkg/delaypkg"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	List(ctx context.Context) ([]domain.Account, error)
	Get(ctx context.Context, username string) (domain.Account, error)
	GetByID(ctx context.Context, id string) (domain.Account, error)
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	UpdateBalance(ctx context.Context, id, balance string) (domain.Account, error)
}

// Audit provides the security log interface needed by account service layer.
type Audit interface {
	Append(ctx context.Context, userID string, activity domain.ActivityType, description string, success bool) (domain.SecurityEvent, error)
}

// Service facilitates account directory business logic.
type Service struct {
	repo    Repo
	audit   Audit
	latency time.Duration
}

// New returns account service struct to manage account business logic.
func New(ar Repo, audit Audit, latency time.Duration) *Service {
	return &Service{
		repo:    ar,
		audit:   audit,
		latency: latency,
	}
}

// NewProfile returns account data with the credential secret removed.
func NewProfile(a domain.Account) domain.Profile {
	return domain.Profile{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
	}
}

// Create validates the opening balance and inserts a new account.
// A duplicate username fails, leaves the directory unchanged and appends
// exactly one failure event to the security log; success appends exactly
// one success event. Session state is never touched.
func (s *Service) Create(ctx context.Context, username, password, email, initialBalance string) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	if err := delaypkg.Wait(ctx, s.latency); err != nil {
		return domain.Profile{}, err
	}

	balance, err := decimal.NewFromString(initialBalance)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Profile{}, domain.ErrInvalidBalance
	}

	if balance.IsNegative() {
		return domain.Profile{}, domain.ErrInvalidBalance
	}

	account := domain.Account{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  password,
		Email:     email,
		Balance:   balance.String(),
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		if err == domain.ErrUsernameAlreadyExists {
			description := fmt.Sprintf("Failed account creation: Username %q already exists", username)
			if _, auditErr := s.audit.Append(ctx, domain.SystemUserID, domain.ActivitySecurityProtocol, description, false); auditErr != nil {
				l.Error().Err(auditErr).Send()
			}
		}

		return domain.Profile{}, err
	}

	description := fmt.Sprintf("Account created for user %q", username)
	if _, auditErr := s.audit.Append(ctx, created.ID, domain.ActivitySecurityProtocol, description, true); auditErr != nil {
		l.Error().Err(auditErr).Send()
	}

	return NewProfile(created), nil
}

// FindByCredentials scans the directory for an exact username and password
// match. The comparison is plain text on purpose; see domain.Account.
func (s *Service) FindByCredentials(ctx context.Context, username, password string) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	accounts, err := s.repo.List(ctx)
	if err != nil {
		return domain.Profile{}, err
	}

	for _, a := range accounts {
		if a.Username == username && a.Password == password {
			return NewProfile(a), nil
		}
	}

	l.Warn().Str("username", username).Msg("credentials did not match any account")

	return domain.Profile{}, domain.ErrInvalidCredentials
}

// GetByID returns the authoritative account record for the given id.
func (s *Service) GetByID(ctx context.Context, id string) (domain.Account, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return account, err
	}

	return account, nil
}

// UpdateBalance writes the new balance back through the directory so the
// persisted snapshot stays authoritative.
func (s *Service) UpdateBalance(ctx context.Context, id, balance string) (domain.Account, error) {
	account, err := s.repo.UpdateBalance(ctx, id, balance)
	if err != nil {
		return account, err
	}

	return account, nil
}
