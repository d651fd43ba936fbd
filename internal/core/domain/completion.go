package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrAlreadyCompleted = errors.New("routine already completed for this day")
	ErrInvalidDay       = errors.New("invalid completion day")
)

// Completion records that a user finished their assigned routine on a given
// civil day. At most one completion exists per (user, day).
type Completion struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	CompletionDay string    `json:"completion_day" db:"completion_day"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

func NewCompletion(userID, day string) (*Completion, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user_id is required")
	}
	if _, err := ParseDay(day); err != nil {
		return nil, ErrInvalidDay
	}

	return &Completion{
		UserID:        userID,
		CompletionDay: day,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
