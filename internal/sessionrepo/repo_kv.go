// Package sessionrepo manages repository layer of the current session.
package sessionrepo

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/internal/keyvalue"
	"github.com/engineering-bank/backend/pkg/errorspkg"
)

// storageKey is the snapshot key of the current-session record.
const storageKey = "engineeringBankUser"

// RepoKV facilitates session repository layer logic over the key-value store.
type RepoKV struct {
	store *keyvalue.Store
}

// NewRepoKV returns session RepoKV.
func NewRepoKV(store *keyvalue.Store) *RepoKV {
	return &RepoKV{
		store: store,
	}
}

// Get returns the persisted session profile, if any.
func (r *RepoKV) Get(ctx context.Context) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	var profile domain.Profile

	err := r.store.Get(storageKey, &profile)
	if err != nil {
		if errors.Is(err, keyvalue.ErrKeyNotFound) {
			return profile, domain.ErrSessionNotFound
		}

		l.Error().Err(err).Send()

		return profile, errorspkg.ErrInternal
	}

	return profile, nil
}

// Set persists the given profile as the current session.
func (r *RepoKV) Set(ctx context.Context, profile domain.Profile) error {
	l := zerolog.Ctx(ctx)

	if err := r.store.Set(storageKey, profile); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

// Clear removes the persisted session record.
func (r *RepoKV) Clear(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	if err := r.store.Delete(storageKey); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
