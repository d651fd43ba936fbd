package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lequangminh/fitstreak/internal/core/domain"
)

func completeDay(t *testing.T, repo *PostgresCompletionRepository, userID, day string) {
	t.Helper()
	c, err := domain.NewCompletion(userID, day)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
}

func TestPostgresCompletionRepository_Create(t *testing.T) {
	db := requirePostgres(t)
	users := NewPostgresUserRepository(db)
	repo := NewPostgresCompletionRepository(db)
	ctx := context.Background()

	t.Run("records a completion once per day", func(t *testing.T) {
		user := createTestUser(t, users)

		completeDay(t, repo, user.ID, "2024-03-10")

		exists, err := repo.ExistsOnDay(ctx, user.ID, "2024-03-10")
		require.NoError(t, err)
		assert.True(t, exists)

		c, err := domain.NewCompletion(user.ID, "2024-03-10")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, c), domain.ErrAlreadyCompleted)
	})

	t.Run("rejects completions for unknown users", func(t *testing.T) {
		c, err := domain.NewCompletion(uuid.NewString(), "2024-03-10")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, c), domain.ErrUserNotFound)
	})
}

func TestPostgresCompletionRepository_Listing(t *testing.T) {
	db := requirePostgres(t)
	users := NewPostgresUserRepository(db)
	repo := NewPostgresCompletionRepository(db)
	ctx := context.Background()

	user := createTestUser(t, users)
	for _, day := range []string{"2024-02-28", "2024-03-01", "2024-03-15"} {
		completeDay(t, repo, user.ID, day)
	}

	t.Run("lists only the requested month in order", func(t *testing.T) {
		days, err := repo.ListDaysByMonth(ctx, user.ID, "2024-03")
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-03-01", "2024-03-15"}, days)
	})

	t.Run("lists full history in order", func(t *testing.T) {
		days, err := repo.ListDays(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-02-28", "2024-03-01", "2024-03-15"}, days)
	})

	t.Run("counts per month and total", func(t *testing.T) {
		monthly, err := repo.CountByMonth(ctx, user.ID, "2024-03")
		require.NoError(t, err)
		assert.Equal(t, 2, monthly)

		total, err := repo.CountTotal(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})

	t.Run("returns empty results for another user", func(t *testing.T) {
		days, err := repo.ListDays(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, days)
	})
}
