package widget

import (
	"context"
	"errors"
	"fmt"

	"github.com/lequangminh/fitstreak/internal/core/domain"
)

var ErrNotAuthenticated = errors.New("session is not authenticated")

// CalendarDay is one reconciled cell of the monthly view.
type CalendarDay struct {
	Day     string `json:"day"`
	Done    bool   `json:"done"`
	IsToday bool   `json:"is_today"`
}

// Overview bundles the derived figures the widget renders after a refresh.
type Overview struct {
	Streak           int `json:"streak"`
	MonthlyCompleted int `json:"monthly_completed"`
	MonthlyRate      int `json:"monthly_rate"`
}

// Session is the widget's per-login state: identity, bearer token, and the
// components scoped to them. It replaces any notion of ambient globals; one
// is created on login and dropped on logout.
type Session struct {
	remote  RemoteService
	markers *MarkerStore
	rec     *Reconciler

	token    string
	username string

	// now yields the reference day, overridable in tests. Derived fresh on
	// every call so an open session survives day rollover.
	now func() string
}

func NewSession(remote RemoteService, markers *MarkerStore) *Session {
	return &Session{
		remote:  remote,
		markers: markers,
		rec:     NewReconciler(markers),
		now:     domain.Today,
	}
}

// Login authenticates against the remote service and binds the session to
// the account.
func (s *Session) Login(ctx context.Context, username, password string) error {
	token, err := s.remote.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	s.token = token
	s.username = username
	return nil
}

// Logout drops the session's identity and token. The pending marker is left
// in place: it stays scoped to the user and ages out on its own.
func (s *Session) Logout() {
	s.token = ""
	s.username = ""
}

func (s *Session) Authenticated() bool {
	return s.token != ""
}

func (s *Session) Username() string {
	return s.username
}

// LoadToday fetches the day's assignment and reconciles its completion flag
// with the local pending marker.
func (s *Session) LoadToday(ctx context.Context) (*TodayPayload, error) {
	if !s.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	payload, err := s.remote.Today(ctx, s.token)
	if err != nil {
		return nil, fmt.Errorf("fetching today's workout: %w", err)
	}

	state := s.rec.ReconcileToday(ctx, s.username, payload.Completed, s.now())
	payload.Completed = state.CompletedToday
	return payload, nil
}

// MarkComplete records today's completion on the remote service and, only on
// confirmed success, sets the local pending marker so the completion shows
// immediately even if the remote record lags on the next fetch.
func (s *Session) MarkComplete(ctx context.Context) error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}

	success, err := s.remote.Complete(ctx, s.token)
	if err != nil {
		return fmt.Errorf("completing workout: %w", err)
	}
	if !success {
		return domain.ErrAlreadyCompleted
	}

	_ = s.markers.Set(ctx, s.username, s.now())
	return nil
}

// CalendarMonth fetches the current month's completed days and reconciles
// each cell, augmenting only today from the local marker.
func (s *Session) CalendarMonth(ctx context.Context) ([]CalendarDay, error) {
	if !s.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	today := s.now()
	month, err := domain.MonthOf(today)
	if err != nil {
		return nil, err
	}

	remoteDays, err := s.remote.Calendar(ctx, s.token, month)
	if err != nil {
		return nil, fmt.Errorf("fetching calendar: %w", err)
	}

	total, err := domain.DaysInMonth(today)
	if err != nil {
		return nil, err
	}

	days := make([]CalendarDay, 0, total)
	for d := 1; d <= total; d++ {
		day := fmt.Sprintf("%s-%02d", month, d)
		days = append(days, CalendarDay{
			Day:     day,
			Done:    s.rec.ReconcileCalendarDay(ctx, s.username, day, remoteDays, today),
			IsToday: day == today,
		})
	}
	return days, nil
}

// RefreshOverview derives streak and monthly rate from a fresh calendar
// fetch plus the local marker.
func (s *Session) RefreshOverview(ctx context.Context) (*Overview, error) {
	if !s.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	today := s.now()
	month, err := domain.MonthOf(today)
	if err != nil {
		return nil, err
	}

	// Full history, not just the month: a streak may run across a month
	// boundary.
	remoteDays, err := s.remote.Calendar(ctx, s.token, "")
	if err != nil {
		return nil, fmt.Errorf("fetching calendar: %w", err)
	}

	marker := ""
	if res := s.markers.Get(ctx, s.username); res.OK {
		marker = res.Day
	}

	completed := MonthlyCompleted(remoteDays, month, today, marker)

	return &Overview{
		Streak:           Streak(remoteDays, today, marker),
		MonthlyCompleted: completed,
		MonthlyRate:      ClampRate(MonthlyRate(completed, today)),
	}, nil
}
