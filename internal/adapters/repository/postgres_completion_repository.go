package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lequangminh/fitstreak/internal/core/domain"
)

type PostgresCompletionRepository struct {
	db *sqlx.DB
}

func NewPostgresCompletionRepository(db *sqlx.DB) *PostgresCompletionRepository {
	return &PostgresCompletionRepository{db: db}
}

func (r *PostgresCompletionRepository) Create(ctx context.Context, completion *domain.Completion) error {
	if completion.ID == "" {
		completion.ID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	query := `
		INSERT INTO completions (id, user_id, completion_day, created_at)
		VALUES (:id, :user_id, :completion_day, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, completion)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			// unique (user_id, completion_day)
			if pqErr.Code == "23505" {
				return domain.ErrAlreadyCompleted
			}
			if pqErr.Code == "23503" {
				return domain.ErrUserNotFound
			}
		}
		return fmt.Errorf("repository: create completion failed: %w", err)
	}
	return nil
}

func (r *PostgresCompletionRepository) ExistsOnDay(ctx context.Context, userID, day string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM completions WHERE user_id = $1 AND completion_day = $2)`

	if err := r.db.GetContext(ctx, &exists, query, userID, day); err != nil {
		return false, fmt.Errorf("repository: completion existence check failed: %w", err)
	}
	return exists, nil
}

func (r *PostgresCompletionRepository) ListDaysByMonth(ctx context.Context, userID, month string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	days := []string{}
	query := `
		SELECT completion_day FROM completions
		WHERE user_id = $1 AND completion_day LIKE $2
		ORDER BY completion_day ASC`

	if err := r.db.SelectContext(ctx, &days, query, userID, month+"-%"); err != nil {
		return nil, fmt.Errorf("repository: list month completions failed: %w", err)
	}
	return days, nil
}

func (r *PostgresCompletionRepository) ListDays(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	days := []string{}
	query := `
		SELECT completion_day FROM completions
		WHERE user_id = $1
		ORDER BY completion_day ASC`

	if err := r.db.SelectContext(ctx, &days, query, userID); err != nil {
		return nil, fmt.Errorf("repository: list completions failed: %w", err)
	}
	return days, nil
}

func (r *PostgresCompletionRepository) CountByMonth(ctx context.Context, userID, month string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var count int
	query := `SELECT COUNT(*) FROM completions WHERE user_id = $1 AND completion_day LIKE $2`

	if err := r.db.GetContext(ctx, &count, query, userID, month+"-%"); err != nil {
		return 0, fmt.Errorf("repository: month count failed: %w", err)
	}
	return count, nil
}

func (r *PostgresCompletionRepository) CountTotal(ctx context.Context, userID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var count int
	query := `SELECT COUNT(*) FROM completions WHERE user_id = $1`

	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("repository: total count failed: %w", err)
	}
	return count, nil
}
