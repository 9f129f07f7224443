// Package storetest holds the behavior every ports.UserStore must share.
package storetest

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"cardgame/internal/domain"
	"cardgame/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises store against the UserStore contract. Each subtest gets a fresh store.
func Run(t *testing.T, newStore func(t *testing.T) ports.UserStore) {
	t.Run("load missing", func(t *testing.T) {
		_, _, err := newStore(t).Load(context.Background(), "nobody")
		assert.ErrorIs(t, err, ports.ErrRecordNotFound)
	})

	t.Run("create then load", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		user := domain.NewUser("alice", domain.DefaultPoolSize, domain.DefaultStartingLife)

		created, version, err := store.Create(ctx, user)
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEmpty(t, version)

		got, gotVersion, err := store.Load(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user, got)
		assert.Equal(t, version, gotVersion)
	})

	t.Run("create is if-absent", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		first := domain.NewUser("alice", domain.DefaultPoolSize, domain.DefaultStartingLife)
		_, _, err := store.Create(ctx, first)
		require.NoError(t, err)

		second := first.Clone()
		second.WinCount = 9
		created, _, err := store.Create(ctx, second)
		require.NoError(t, err)
		assert.False(t, created)

		got, _, err := store.Load(ctx, "alice")
		require.NoError(t, err)
		assert.Zero(t, got.WinCount)
	})

	t.Run("concurrent creates converge", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			winners int
		)
		for i := 0; i < 6; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				created, _, err := store.Create(ctx, domain.NewUser("alice", domain.DefaultPoolSize, domain.DefaultStartingLife))
				assert.NoError(t, err)
				if created {
					mu.Lock()
					winners++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, winners)
	})

	t.Run("save checks version", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		user := domain.NewUser("alice", domain.DefaultPoolSize, domain.DefaultStartingLife)
		_, v1, err := store.Create(ctx, user)
		require.NoError(t, err)

		updated := user.Clone()
		updated.WinCount = 1
		v2, err := store.Save(ctx, updated, v1)
		require.NoError(t, err)
		assert.NotEqual(t, v1, v2)

		stale := user.Clone()
		stale.LossCount = 3
		_, err = store.Save(ctx, stale, v1)
		assert.ErrorIs(t, err, ports.ErrVersionConflict)

		got, version, err := store.Load(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, updated, got)
		assert.Equal(t, v2, version)
	})

	t.Run("save missing record", func(t *testing.T) {
		user := domain.NewUser("ghost", domain.DefaultPoolSize, domain.DefaultStartingLife)
		_, err := newStore(t).Save(context.Background(), user, "any")
		assert.ErrorIs(t, err, ports.ErrVersionConflict)
	})

	t.Run("mid-match record round-trips", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		user := domain.NewUser("alice", domain.DefaultPoolSize, domain.DefaultStartingLife)
		_, version, err := store.Create(ctx, user)
		require.NoError(t, err)

		mid := user.Clone()
		mid.WinCount, mid.LossCount = 4, 2
		mid.GameData = domain.NewStartedMatch(domain.DefaultPoolSize, domain.DefaultStartingLife, rand.New(rand.NewSource(3)))
		id, err := mid.GameData.HandPlayer.Take(2)
		require.NoError(t, err)
		mid.GameData.SelectedCardPlayer = id
		mid.GameData.ApplyDamage(domain.Damage{Player: 2, AI: 1})

		_, err = store.Save(ctx, mid, version)
		require.NoError(t, err)
		got, _, err := store.Load(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, mid, got)
	})
}
