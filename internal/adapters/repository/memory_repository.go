package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/lequangminh/fitstreak/internal/core/domain"
)

type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if u.Username == user.Username {
			return domain.ErrUsernameAlreadyUsed
		}
	}

	r.store[user.ID] = user
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *InMemoryUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.store[id]
	if !ok {
		return domain.ErrUserNotFound
	}

	user.UpdateStreak(current, longest)
	return nil
}

type InMemoryCompletionRepository struct {
	// days[userID] is the set of completed days.
	days map[string]map[string]bool

	mu sync.RWMutex
}

func NewInMemoryCompletionRepository() *InMemoryCompletionRepository {
	return &InMemoryCompletionRepository{
		days: make(map[string]map[string]bool),
	}
}

func (r *InMemoryCompletionRepository) Create(ctx context.Context, completion *domain.Completion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.days[completion.UserID]
	if !ok {
		set = make(map[string]bool)
		r.days[completion.UserID] = set
	}

	if set[completion.CompletionDay] {
		return domain.ErrAlreadyCompleted
	}

	set[completion.CompletionDay] = true
	return nil
}

func (r *InMemoryCompletionRepository) ExistsOnDay(ctx context.Context, userID, day string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.days[userID][day], nil
}

func (r *InMemoryCompletionRepository) ListDaysByMonth(ctx context.Context, userID, month string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := []string{}
	for d := range r.days[userID] {
		if strings.HasPrefix(d, month+"-") {
			days = append(days, d)
		}
	}
	sort.Strings(days)
	return days, nil
}

func (r *InMemoryCompletionRepository) ListDays(ctx context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := []string{}
	for d := range r.days[userID] {
		days = append(days, d)
	}
	sort.Strings(days)
	return days, nil
}

func (r *InMemoryCompletionRepository) CountByMonth(ctx context.Context, userID, month string) (int, error) {
	days, _ := r.ListDaysByMonth(ctx, userID, month)
	return len(days), nil
}

func (r *InMemoryCompletionRepository) CountTotal(ctx context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.days[userID]), nil
}
