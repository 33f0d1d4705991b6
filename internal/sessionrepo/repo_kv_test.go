package sessionrepo

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/internal/keyvalue"
	"github.com/engineering-bank/backend/pkg/randompkg"
)

func newTestRepo(t *testing.T) *RepoKV {
	t.Helper()

	store, err := keyvalue.Open(t.TempDir())
	require.NoError(t, err)

	return NewRepoKV(store)
}

func TestSetGetClear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	profile := domain.Profile{
		ID:        randompkg.String(9),
		Username:  randompkg.Username(),
		Email:     randompkg.Email(),
		Balance:   "10000",
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}

	require.NoError(t, repo.Set(ctx, profile))

	got, err := repo.Get(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(profile, got); diff != "" {
		t.Errorf("repo.Get() mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, repo.Clear(ctx))

	_, err = repo.Get(ctx)
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestGetWithoutSession(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}
