// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/internal/keyvalue"
	"github.com/engineering-bank/backend/pkg/errorspkg"
)

// storageKey is the snapshot key of the unfiltered transaction log across
// all accounts. Readers filter to their own participant set at load time.
const storageKey = "engineeringBankTransactions"

// RepoKV facilitates transaction repository layer logic over the key-value store.
type RepoKV struct {
	store *keyvalue.Store
}

// NewRepoKV returns transaction RepoKV.
func NewRepoKV(store *keyvalue.Store) *RepoKV {
	return &RepoKV{
		store: store,
	}
}

func (r *RepoKV) list(ctx context.Context) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var transactions []domain.Transaction

	err := r.store.Get(storageKey, &transactions)
	if err != nil {
		if errors.Is(err, keyvalue.ErrKeyNotFound) {
			return nil, nil
		}

		l.Error().Err(err).Send()

		return nil, errorspkg.ErrInternal
	}

	return transactions, nil
}

// Insert prepends the transaction to the log and persists the full snapshot.
func (r *RepoKV) Insert(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	transactions, err := r.list(ctx)
	if err != nil {
		return domain.Transaction{}, err
	}

	transactions = append([]domain.Transaction{transaction}, transactions...)

	if err := r.store.Set(storageKey, transactions); err != nil {
		l.Error().Err(err).Send()
		return domain.Transaction{}, errorspkg.ErrInternal
	}

	return transaction, nil
}

// ListForAccount returns the transactions where the given account is the
// sender or the receiver, newest first.
func (r *RepoKV) ListForAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	transactions, err := r.list(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []domain.Transaction

	for _, t := range transactions {
		if t.SenderID == accountID || t.ReceiverID == accountID {
			filtered = append(filtered, t)
		}
	}

	return filtered, nil
}
