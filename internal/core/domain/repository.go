package domain

import "context"

type UserRepository interface {
	// Create persists a new account.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves an account by its unique identifier.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByUsername retrieves an account by its (lowercased) username.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// UpdateStreaks stores recomputed streak counters for an account.
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type CompletionRepository interface {
	// Create persists a completion. Implementations must enforce the one
	// completion per (user, day) invariant and return ErrAlreadyCompleted
	// on a duplicate.
	Create(ctx context.Context, completion *Completion) error

	// ExistsOnDay reports whether the user has a completion for the given day.
	ExistsOnDay(ctx context.Context, userID, day string) (bool, error)

	// ListDaysByMonth returns the user's completed days (YYYY-MM-DD,
	// ascending) within the month given as a YYYY-MM prefix.
	ListDaysByMonth(ctx context.Context, userID, month string) ([]string, error)

	// ListDays returns every completed day for the user, ascending.
	ListDays(ctx context.Context, userID string) ([]string, error)

	// CountByMonth returns how many days the user completed in a month.
	CountByMonth(ctx context.Context, userID, month string) (int, error)

	// CountTotal returns the user's lifetime completion count.
	CountTotal(ctx context.Context, userID string) (int, error)
}
