package repository_kv

import (
	"context"
	"sort"
	"testing"

	"github.com/Super-Badmen-Viper/NineSongProject/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runKVStoreContract 所有 KVStore 实现共享的行为校验
func runKVStoreContract(t *testing.T, store domain.KVStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "project:missing")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "project:p1", `{"id":"p1"}`))
		got, err := store.Get(ctx, "project:p1")
		require.NoError(t, err)
		assert.Equal(t, `{"id":"p1"}`, got)
	})

	t.Run("put overwrites", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "project:p1", `{"id":"p1","name":"v2"}`))
		got, err := store.Get(ctx, "project:p1")
		require.NoError(t, err)
		assert.Equal(t, `{"id":"p1","name":"v2"}`, got)
	})

	t.Run("list by prefix", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "project:p2", `{}`))
		require.NoError(t, store.Put(ctx, "lyrics:l1", `{}`))
		require.NoError(t, store.Put(ctx, "projects-index", `{}`))

		keys, err := store.List(ctx, domain.KeyPrefixProject)
		require.NoError(t, err)
		sort.Strings(keys)
		assert.Equal(t, []string{"project:p1", "project:p2"}, keys)
	})

	t.Run("list empty prefix match", func(t *testing.T) {
		keys, err := store.List(ctx, "audio:")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "project:p2"))
		require.NoError(t, store.Delete(ctx, "project:p2"))

		_, err := store.Get(ctx, "project:p2")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)

		keys, err := store.List(ctx, domain.KeyPrefixProject)
		require.NoError(t, err)
		assert.Equal(t, []string{"project:p1"}, keys)
	})
}
