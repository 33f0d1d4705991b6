// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/pkg/delaypkg"
)

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	Insert(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	ListForAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

// Directory provides the account directory interface needed by transfer service layer.
type Directory interface {
	GetByID(ctx context.Context, id string) (domain.Account, error)
	UpdateBalance(ctx context.Context, id, balance string) (domain.Account, error)
}

// Sessions provides the session store interface needed by transfer service layer.
type Sessions interface {
	Current(ctx context.Context) (domain.Profile, error)
	UpdateBalance(ctx context.Context, accountID, balance string) error
}

// Audit provides the security log interface needed by transfer service layer.
type Audit interface {
	Append(ctx context.Context, userID string, activity domain.ActivityType, description string, success bool) (domain.SecurityEvent, error)
}

// Service facilitates transfer business logic. The mutex serializes
// transfers so the read-validate-write flow stays atomic within the process.
type Service struct {
	repo      Repo
	directory Directory
	sessions  Sessions
	audit     Audit
	latency   time.Duration

	mu sync.Mutex
}

// New returns transfer service struct to manage transfer business logic.
func New(tr Repo, directory Directory, sessions Sessions, audit Audit, latency time.Duration) *Service {
	return &Service{
		repo:      tr,
		directory: directory,
		sessions:  sessions,
		audit:     audit,
		latency:   latency,
	}
}

// Transfer validates and applies a transfer from the current session account.
// Insufficient funds abort before any state change and append no security
// event. Success decrements the sender, credits the receiver when it is a
// directory account, records one debit transaction and one transfer event.
func (s *Service) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	sender, err := s.sessions.Current(ctx)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err := delaypkg.Wait(ctx, s.latency); err != nil {
		return domain.Transaction{}, err
	}

	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Transaction{}, domain.ErrInvalidAmount
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.Transaction{}, domain.ErrNegativeAmount
	}

	if arg.ReceiverID == sender.ID {
		return domain.Transaction{}, domain.ErrSelfTransfer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	senderAccount, err := s.directory.GetByID(ctx, sender.ID)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Transaction{}, err
	}

	balance, err := decimal.NewFromString(senderAccount.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Transaction{}, err
	}

	if balance.LessThan(amount) {
		return domain.Transaction{}, domain.ErrInsufficientFunds
	}

	newBalance := balance.Sub(amount)

	if _, err := s.directory.UpdateBalance(ctx, sender.ID, newBalance.String()); err != nil {
		return domain.Transaction{}, err
	}

	if err := s.sessions.UpdateBalance(ctx, sender.ID, newBalance.String()); err != nil {
		return domain.Transaction{}, err
	}

	if err := s.creditReceiver(ctx, arg.ReceiverID, amount); err != nil {
		return domain.Transaction{}, err
	}

	transaction := domain.Transaction{
		ID:          uuid.NewString(),
		SenderID:    sender.ID,
		ReceiverID:  arg.ReceiverID,
		Amount:      amount.String(),
		Kind:        domain.KindDebit,
		Description: arg.Description,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, transaction)
	if err != nil {
		return domain.Transaction{}, err
	}

	description := fmt.Sprintf("Transferred %s to account %s", amount, arg.ReceiverID)
	if _, auditErr := s.audit.Append(ctx, sender.ID, domain.ActivityTransfer, description, true); auditErr != nil {
		l.Error().Err(auditErr).Send()
	}

	return created, nil
}

// creditReceiver increments the receiver balance when the receiver is a
// directory account. External receiver ids are allowed and simply not
// credited.
func (s *Service) creditReceiver(ctx context.Context, receiverID string, amount decimal.Decimal) error {
	receiver, err := s.directory.GetByID(ctx, receiverID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil
		}

		return err
	}

	balance, err := decimal.NewFromString(receiver.Balance)
	if err != nil {
		return err
	}

	_, err = s.directory.UpdateBalance(ctx, receiver.ID, balance.Add(amount).String())

	return err
}

// History returns the transactions visible to the current session account,
// newest first.
func (s *Service) History(ctx context.Context) ([]domain.Transaction, error) {
	viewer, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.ListForAccount(ctx, viewer.ID)
}
