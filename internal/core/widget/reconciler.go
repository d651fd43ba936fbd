package widget

import "context"

// TodayState is the reconciled answer to "is today complete".
type TodayState struct {
	CompletedToday bool
	// ClearedStale reports that a marker dated before today was found and
	// removed during reconciliation.
	ClearedStale bool
}

// Reconciler merges the authoritative remote completion signals with the
// local pending marker into a single view. It never fails: marker reads
// absorb storage faults, and nil date sets are empty sets.
type Reconciler struct {
	markers *MarkerStore
}

func NewReconciler(markers *MarkerStore) *Reconciler {
	return &Reconciler{markers: markers}
}

// ReconcileToday resolves the day's completion flag. A marker equal to today
// forces completed regardless of the remote flag: it bridges the window
// between a confirmed completion call and the remote record catching up. A
// marker dated any other day can never be valid, so it is cleared and the
// remote flag stands.
func (r *Reconciler) ReconcileToday(ctx context.Context, user string, remoteCompletedToday bool, today string) TodayState {
	res := r.markers.Get(ctx, user)
	if !res.OK {
		return TodayState{CompletedToday: remoteCompletedToday}
	}

	if res.Day == today {
		return TodayState{CompletedToday: true}
	}

	_ = r.markers.Clear(ctx, user)
	return TodayState{CompletedToday: remoteCompletedToday, ClearedStale: true}
}

// ReconcileCalendarDay reports whether a calendar day should render as done.
// The marker augmentation applies only to today; every other day relies
// solely on the remote set.
func (r *Reconciler) ReconcileCalendarDay(ctx context.Context, user, day string, remoteDays []string, today string) bool {
	for _, d := range remoteDays {
		if d == day {
			return true
		}
	}

	if day != today {
		return false
	}

	res := r.markers.Get(ctx, user)
	return res.OK && res.Day == today
}
