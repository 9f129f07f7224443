package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"cardgame/internal/domain"
	"cardgame/internal/ports"
	"cardgame/internal/ports/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cardgame.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) ports.UserStore {
		return openTestStore(t)
	})
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cardgame.db")

	store, err := Open(path)
	require.NoError(t, err)
	user := domain.NewUser("alice", domain.DefaultPoolSize, domain.DefaultStartingLife)
	_, version, err := store.Create(ctx, user)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, gotVersion, err := reopened.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Equal(t, version, gotVersion)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestOpenInMemory(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	created, _, err := store.Create(context.Background(), domain.NewUser("bob", domain.DefaultPoolSize, domain.DefaultStartingLife))
	require.NoError(t, err)
	assert.True(t, created)
}
