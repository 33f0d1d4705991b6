package accountrepo

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

func newTestRepo(t *testing.T) (*RepoKV, *keyvalue.Store) {
	t.Helper()

	store, err := keyvalue.Open(t.TempDir())
	require.NoError(t, err)

	return NewRepoKV(store), store
}

func randomAccount() domain.Account {
	return domain.Account{
		ID:        randompkg.String(9),
		Username:  randompkg.Username(),
		Password:  randompkg.String(8),
		Email:     randompkg.Email(),
		Balance:   randompkg.MoneyAmountBetween(100, 10_000),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func TestCreate(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	account := randomAccount()

	created, err := repo.Create(ctx, account)
	require.NoError(t, err)

	if diff := cmp.Diff(account, created); diff != "" {
		t.Errorf("repo.Create() mismatch (-want +got):\n%s", diff)
	}

	got, err := repo.Get(ctx, account.Username)
	require.NoError(t, err)

	if diff := cmp.Diff(account, got); diff != "" {
		t.Errorf("repo.Get() mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateDuplicateUsername(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	account := randomAccount()

	_, err := repo.Create(ctx, account)
	require.NoError(t, err)

	duplicate := randomAccount()
	duplicate.Username = account.Username

	_, err = repo.Create(ctx, duplicate)
	require.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)

	// The directory must be left unchanged.
	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	require.Equal(t, account.ID, accounts[0].ID)
}

func TestGetNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Get(context.Background(), "nobody")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = repo.GetByID(context.Background(), "42")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestUpdateBalance(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	account := randomAccount()
	account.Balance = "10000"

	_, err := repo.Create(ctx, account)
	require.NoError(t, err)

	updated, err := repo.UpdateBalance(ctx, account.ID, "7500")
	require.NoError(t, err)
	require.Equal(t, "7500", updated.Balance)

	// The persisted snapshot stays authoritative across a reopen.
	reopened := NewRepoKV(store)

	got, err := reopened.GetByID(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, "7500", got.Balance)
}

func TestUpdateBalanceNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.UpdateBalance(context.Background(), "42", "1")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestListEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, accounts)
}
