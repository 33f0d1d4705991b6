package keyvalue

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/engineering-bank/backend/internal/domain"
)

func TestRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	want := []domain.Account{
		{
			ID:        "1",
			Username:  "jaya",
			Password:  "ntr",
			Email:     "jaya@example.com",
			Balance:   "10000",
			CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, store.Set("engineeringBankUsers", want))

	var got []domain.Account
	require.NoError(t, store.Get("engineeringBankUsers", &got))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("store.Get() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetMissingKey(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	var dst string
	require.ErrorIs(t, store.Get("missing", &dst), ErrKeyNotFound)
}

func TestSetOverwrites(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("securityProtocolActive", "false"))
	require.NoError(t, store.Set("securityProtocolActive", "true"))

	var got string
	require.NoError(t, store.Get("securityProtocolActive", &got))
	require.Equal(t, "true", got)
}

func TestDelete(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("engineeringBankUser", "jaya"))
	require.NoError(t, store.Delete("engineeringBankUser"))

	var dst string
	require.ErrorIs(t, store.Get("engineeringBankUser", &dst), ErrKeyNotFound)

	// Deleting again is not an error.
	require.NoError(t, store.Delete("engineeringBankUser"))
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("engineeringBankLogs", []string{"a", "b"}))

	reopened, err := Open(dir)
	require.NoError(t, err)

	var got []string
	require.NoError(t, reopened.Get("engineeringBankLogs", &got))
	require.Equal(t, []string{"a", "b"}, got)
}
