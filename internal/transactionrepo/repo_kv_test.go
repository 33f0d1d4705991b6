package transactionrepo

import (
	"context"
	"testing"
	"time"

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

func randomTransaction(senderID, receiverID string) domain.Transaction {
	return domain.Transaction{
		ID:         randompkg.String(9),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Amount:     randompkg.MoneyAmountBetween(1, 1000),
		Kind:       domain.KindDebit,
		CreatedAt:  time.Now().Truncate(time.Second).UTC(),
	}
}

func TestListForAccountFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	sent := randomTransaction("alice", "bob")
	received := randomTransaction("carol", "alice")
	unrelated := randomTransaction("carol", "bob")

	for _, tx := range []domain.Transaction{sent, received, unrelated} {
		_, err := repo.Insert(ctx, tx)
		require.NoError(t, err)
	}

	got, err := repo.ListForAccount(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first: last inserted visible transaction leads.
	require.Equal(t, received.ID, got[0].ID)
	require.Equal(t, sent.ID, got[1].ID)

	got, err = repo.ListForAccount(ctx, "dave")
	require.NoError(t, err)
	require.Empty(t, got)
}
