// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/internal/keyvalue"
	"github.com/engineering-bank/backend/pkg/errorspkg"
)

// storageKey is the snapshot key of the account directory. The name is part
// of the persisted data format and must not change.
const storageKey = "engineeringBankUsers"

// RepoKV facilitates account repository layer logic over the key-value store.
type RepoKV struct {
	store *keyvalue.Store
}

// NewRepoKV returns account RepoKV.
func NewRepoKV(store *keyvalue.Store) *RepoKV {
	return &RepoKV{
		store: store,
	}
}

// List returns all accounts in insertion order.
func (r *RepoKV) List(ctx context.Context) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	var accounts []domain.Account

	err := r.store.Get(storageKey, &accounts)
	if err != nil {
		if errors.Is(err, keyvalue.ErrKeyNotFound) {
			return nil, nil
		}

		l.Error().Err(err).Send()

		return nil, errorspkg.ErrInternal
	}

	return accounts, nil
}

// Get returns the account with the given username.
func (r *RepoKV) Get(ctx context.Context, username string) (domain.Account, error) {
	accounts, err := r.List(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	for _, a := range accounts {
		if a.Username == username {
			return a, nil
		}
	}

	return domain.Account{}, domain.ErrAccountNotFound
}

// GetByID returns the account with the given id.
func (r *RepoKV) GetByID(ctx context.Context, id string) (domain.Account, error) {
	accounts, err := r.List(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	for _, a := range accounts {
		if a.ID == id {
			return a, nil
		}
	}

	return domain.Account{}, domain.ErrAccountNotFound
}

// Create appends the account to the directory and persists the full snapshot.
// It fails with domain.ErrUsernameAlreadyExists on a duplicate username and
// leaves the directory unchanged.
func (r *RepoKV) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	accounts, err := r.List(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	for _, a := range accounts {
		if a.Username == account.Username {
			return domain.Account{}, domain.ErrUsernameAlreadyExists
		}
	}

	accounts = append(accounts, account)

	if err := r.store.Set(storageKey, accounts); err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, errorspkg.ErrInternal
	}

	return account, nil
}

// UpdateBalance sets the balance of the account with the given id and writes
// the directory snapshot back, keeping it authoritative.
func (r *RepoKV) UpdateBalance(ctx context.Context, id, balance string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	accounts, err := r.List(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	for i := range accounts {
		if accounts[i].ID != id {
			continue
		}

		accounts[i].Balance = balance

		if err := r.store.Set(storageKey, accounts); err != nil {
			l.Error().Err(err).Send()
			return domain.Account{}, errorspkg.ErrInternal
		}

		return accounts[i], nil
	}

	return domain.Account{}, domain.ErrAccountNotFound
}
