package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lequangminh/fitstreak/internal/adapters/cache"
	"github.com/lequangminh/fitstreak/internal/core/domain"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "v", 0))

	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	require.NoError(t, store.Delete(ctx, "k"))

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestMemoryStore_TTL(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "v", time.Millisecond))

	time.Sleep(5 * time.Millisecond)

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestMemoryStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "old", 0))
	require.NoError(t, store.Set(ctx, "k", "new", 0))

	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", val)
}
