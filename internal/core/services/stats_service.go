package services

import (
	"context"
	"fmt"

	"github.com/lequangminh/fitstreak/internal/core/domain"
)

// StatsService derives the profile counters from the completions table.
type StatsService struct {
	users       domain.UserRepository
	completions domain.CompletionRepository
}

func NewStatsService(users domain.UserRepository, completions domain.CompletionRepository) *StatsService {
	return &StatsService{
		users:       users,
		completions: completions,
	}
}

// Profile assembles the /user/me payload for the given reference day.
func (s *StatsService) Profile(ctx context.Context, userID, day string) (*domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	month, err := domain.MonthOf(day)
	if err != nil {
		return nil, err
	}

	monthly, err := s.completions.CountByMonth(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("stats service: monthly count failed: %w", err)
	}

	total, err := s.completions.CountTotal(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats service: total count failed: %w", err)
	}

	return &domain.Profile{
		Username:         user.Username,
		Level:            user.Level,
		StartedAt:        domain.FormatDay(user.CreatedAt),
		MonthlyCompleted: monthly,
		TotalCompleted:   total,
		CurrentStreak:    user.CurrentStreak,
		LongestStreak:    user.LongestStreak,
	}, nil
}
