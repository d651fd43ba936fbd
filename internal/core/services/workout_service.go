package services

import (
	"context"
	"fmt"

	"github.com/lequangminh/fitstreak/internal/core/domain"
	"github.com/lequangminh/fitstreak/internal/core/workers"
)

// WorkoutService owns the daily assignment and its completion record.
type WorkoutService struct {
	users       domain.UserRepository
	completions domain.CompletionRepository
	worker      *workers.StreakWorker
}

func NewWorkoutService(users domain.UserRepository, completions domain.CompletionRepository, worker *workers.StreakWorker) *WorkoutService {
	return &WorkoutService{
		users:       users,
		completions: completions,
		worker:      worker,
	}
}

// Today returns the user's assigned routine and whether the given day is
// already completed.
func (s *WorkoutService) Today(ctx context.Context, userID, day string) (*domain.TodayWorkout, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	routine, err := domain.RoutineForLevel(user.Level)
	if err != nil {
		return nil, err
	}

	completed, err := s.completions.ExistsOnDay(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("workout service: completion check failed: %w", err)
	}

	return &domain.TodayWorkout{
		Level:     user.Level,
		Routine:   routine,
		Completed: completed,
		Day:       day,
	}, nil
}

// Complete records the user's completion for the given day. A duplicate for
// the same day surfaces as domain.ErrAlreadyCompleted; the repository's
// uniqueness constraint is the arbiter, so two racing requests cannot both
// win.
func (s *WorkoutService) Complete(ctx context.Context, userID, day string) (*domain.Completion, error) {
	completion, err := domain.NewCompletion(userID, day)
	if err != nil {
		return nil, err
	}

	if err := s.completions.Create(ctx, completion); err != nil {
		return nil, err
	}

	s.worker.Enqueue(userID)

	return completion, nil
}

// Calendar lists the user's completed days for a YYYY-MM month, or the full
// history when month is empty.
func (s *WorkoutService) Calendar(ctx context.Context, userID, month string) ([]string, error) {
	if month == "" {
		return s.completions.ListDays(ctx, userID)
	}
	return s.completions.ListDaysByMonth(ctx, userID, month)
}
