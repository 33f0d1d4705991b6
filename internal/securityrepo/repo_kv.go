// Package securityrepo manages repository layer of the security log and
// protocol flag.
package securityrepo

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/internal/keyvalue"
	"github.com/engineering-bank/backend/pkg/errorspkg"
)

// Snapshot keys are part of the persisted data format and must not change.
// The protocol flag is stored as a boolean-in-a-string.
const (
	logKey      = "engineeringBankLogs"
	protocolKey = "securityProtocolActive"
)

// RepoKV facilitates security repository layer logic over the key-value store.
type RepoKV struct {
	store *keyvalue.Store
}

// NewRepoKV returns security RepoKV.
func NewRepoKV(store *keyvalue.Store) *RepoKV {
	return &RepoKV{
		store: store,
	}
}

// List returns all security events, newest first.
func (r *RepoKV) List(ctx context.Context) ([]domain.SecurityEvent, error) {
	l := zerolog.Ctx(ctx)

	var events []domain.SecurityEvent

	err := r.store.Get(logKey, &events)
	if err != nil {
		if errors.Is(err, keyvalue.ErrKeyNotFound) {
			return nil, nil
		}

		l.Error().Err(err).Send()

		return nil, errorspkg.ErrInternal
	}

	return events, nil
}

// Insert prepends the event to the log and persists the full snapshot.
// Prepending keeps the log ordered newest first; ties on identical
// timestamps break by insertion order.
func (r *RepoKV) Insert(ctx context.Context, event domain.SecurityEvent) (domain.SecurityEvent, error) {
	l := zerolog.Ctx(ctx)

	events, err := r.List(ctx)
	if err != nil {
		return domain.SecurityEvent{}, err
	}

	events = append([]domain.SecurityEvent{event}, events...)

	if err := r.store.Set(logKey, events); err != nil {
		l.Error().Err(err).Send()
		return domain.SecurityEvent{}, errorspkg.ErrInternal
	}

	return event, nil
}

// ProtocolActive reports whether the security protocol flag is set.
// A missing record means inactive.
func (r *RepoKV) ProtocolActive(ctx context.Context) (bool, error) {
	l := zerolog.Ctx(ctx)

	var raw string

	err := r.store.Get(protocolKey, &raw)
	if err != nil {
		if errors.Is(err, keyvalue.ErrKeyNotFound) {
			return false, nil
		}

		l.Error().Err(err).Send()

		return false, errorspkg.ErrInternal
	}

	return raw == "true", nil
}

// SetProtocolActive persists the protocol flag.
func (r *RepoKV) SetProtocolActive(ctx context.Context, active bool) error {
	l := zerolog.Ctx(ctx)

	if err := r.store.Set(protocolKey, strconv.FormatBool(active)); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
