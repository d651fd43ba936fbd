package repository_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lequangminh/fitstreak/internal/adapters/repository"
	"github.com/lequangminh/fitstreak/internal/core/domain"
)

func setupCachedRepo(t *testing.T) (*repository.CachedCompletionRepository, *repository.InMemoryCompletionRepository, *miniredis.Miniredis) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })

	next := repository.NewInMemoryCompletionRepository()
	return repository.NewCachedCompletionRepository(next, client), next, s
}

func mustComplete(t *testing.T, repo domain.CompletionRepository, userID, day string) {
	t.Helper()
	c, err := domain.NewCompletion(userID, day)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
}

func TestCachedCompletionRepository_ListDaysByMonth(t *testing.T) {
	ctx := context.Background()
	cached, next, _ := setupCachedRepo(t)

	mustComplete(t, next, "user-1", "2024-03-01")
	mustComplete(t, next, "user-1", "2024-03-02")

	days, err := cached.ListDaysByMonth(ctx, "user-1", "2024-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, days)

	// Second read is served from the cache: bypassing the decorator to add
	// a day is not visible until invalidation.
	mustComplete(t, next, "user-1", "2024-03-03")

	days, err = cached.ListDaysByMonth(ctx, "user-1", "2024-03")
	require.NoError(t, err)
	assert.Len(t, days, 2, "stale cache expected before invalidation")
}

func TestCachedCompletionRepository_CreateInvalidates(t *testing.T) {
	ctx := context.Background()
	cached, _, _ := setupCachedRepo(t)

	mustComplete(t, cached, "user-1", "2024-03-01")

	days, err := cached.ListDaysByMonth(ctx, "user-1", "2024-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01"}, days)

	// Writing through the decorator drops the cached lists.
	mustComplete(t, cached, "user-1", "2024-03-02")

	days, err = cached.ListDaysByMonth(ctx, "user-1", "2024-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, days)

	all, err := cached.ListDays(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCachedCompletionRepository_CorruptedCacheRecovers(t *testing.T) {
	ctx := context.Background()
	cached, next, s := setupCachedRepo(t)

	mustComplete(t, next, "user-1", "2024-03-01")

	require.NoError(t, s.Set("calendar:user-1:2024-03", "{not json"))

	days, err := cached.ListDaysByMonth(ctx, "user-1", "2024-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01"}, days)
}

func TestCachedCompletionRepository_RedisDownDegrades(t *testing.T) {
	ctx := context.Background()
	cached, next, s := setupCachedRepo(t)

	mustComplete(t, next, "user-1", "2024-03-01")

	s.Close()

	days, err := cached.ListDaysByMonth(ctx, "user-1", "2024-03")
	require.NoError(t, err, "cache faults must degrade to the source")
	assert.Equal(t, []string{"2024-03-01"}, days)
}

func TestCachedCompletionRepository_DuplicatePropagates(t *testing.T) {
	cached, _, _ := setupCachedRepo(t)

	mustComplete(t, cached, "user-1", "2024-03-01")

	c, err := domain.NewCompletion("user-1", "2024-03-01")
	require.NoError(t, err)
	assert.ErrorIs(t, cached.Create(context.Background(), c), domain.ErrAlreadyCompleted)
}
