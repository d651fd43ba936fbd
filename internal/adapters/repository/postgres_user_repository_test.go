package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lequangminh/fitstreak/internal/core/domain"
)

// testDB stays nil when no database is reachable; the integration tests
// skip themselves in that case so the suite still passes locally.
var testDB *sqlx.DB

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envDefault("DB_USER", "fitstreak_user"),
		envDefault("DB_PASSWORD", "secret"),
		envDefault("DB_HOST", "localhost"),
		envDefault("DB_PORT", "5432"),
		envDefault("DB_NAME", "fitstreak_db"),
	)

	db, err := sqlx.Open("pgx", dsn)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if pingErr := db.PingContext(ctx); pingErr == nil {
			testDB = db
		} else {
			db.Close()
		}
		cancel()
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func requirePostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("postgres not available, skipping integration test")
	}
	return testDB
}

func createTestUser(t *testing.T, repo *PostgresUserRepository) *domain.User {
	t.Helper()

	username := fmt.Sprintf("test_%s", uuid.NewString()[:8])
	user, err := domain.NewUser(uuid.NewString(), username, domain.LevelBeginner)
	require.NoError(t, err)
	require.NoError(t, user.SetPassword("passwordStrong123"))
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestPostgresUserRepository_Create(t *testing.T) {
	repo := NewPostgresUserRepository(requirePostgres(t))
	ctx := context.Background()

	t.Run("creates a user and reads it back", func(t *testing.T) {
		user := createTestUser(t, repo)

		saved, err := repo.GetByUsername(ctx, user.Username)
		require.NoError(t, err)
		assert.Equal(t, user.ID, saved.ID)
		assert.Equal(t, domain.LevelBeginner, saved.Level)
		assert.False(t, saved.CreatedAt.IsZero())
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		user := createTestUser(t, repo)

		dup, err := domain.NewUser(uuid.NewString(), user.Username, domain.LevelAdvanced)
		require.NoError(t, err)
		require.NoError(t, dup.SetPassword("otherPassword456"))

		assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrUsernameAlreadyUsed)
	})
}

func TestPostgresUserRepository_GetByID(t *testing.T) {
	repo := NewPostgresUserRepository(requirePostgres(t))
	ctx := context.Background()

	t.Run("retrieves an existing user", func(t *testing.T) {
		user := createTestUser(t, repo)

		found, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Username, found.Username)
	})

	t.Run("returns ErrUserNotFound for an unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPostgresUserRepository_UpdateStreaks(t *testing.T) {
	repo := NewPostgresUserRepository(requirePostgres(t))
	ctx := context.Background()

	t.Run("persists new streak values", func(t *testing.T) {
		user := createTestUser(t, repo)

		require.NoError(t, repo.UpdateStreaks(ctx, user.ID, 5, 12))

		saved, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, saved.CurrentStreak)
		assert.Equal(t, 12, saved.LongestStreak)
	})

	t.Run("returns ErrUserNotFound for an unknown id", func(t *testing.T) {
		err := repo.UpdateStreaks(ctx, uuid.NewString(), 1, 1)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
