package widget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lequangminh/fitstreak/internal/core/domain"
)

// markerTTL bounds how long a pending marker may sit in storage. A marker
// older than a day is stale anyway, so letting it expire matches the
// reconciler's own clearing behavior.
const markerTTL = 48 * time.Hour

// MarkerResult is the outcome of a marker lookup. Storage faults never
// propagate: they are absorbed into Err and the lookup degrades to "no
// marker" (OK false). Err exists so tests and logs can observe the fallback.
type MarkerResult struct {
	Day string
	OK  bool
	Err error
}

// MarkerStore keeps the per-user pending-completion marker: at most one day
// string per user, namespaced so two accounts on a shared device never read
// each other's slot. It is a convenience layer, not a durability guarantee.
type MarkerStore struct {
	kv domain.KeyValueStore
}

func NewMarkerStore(kv domain.KeyValueStore) *MarkerStore {
	return &MarkerStore{kv: kv}
}

// Key returns the namespaced slot for a user. ok is false for an empty
// identity: callers must treat that as "no cache available" rather than
// substituting a shared key.
func (s *MarkerStore) Key(user string) (string, bool) {
	if user == "" {
		return "", false
	}
	return fmt.Sprintf("pending:%s", user), true
}

// Get reads the user's pending marker. Absent identity, absent key and
// storage faults all come back as OK=false.
func (s *MarkerStore) Get(ctx context.Context, user string) MarkerResult {
	key, ok := s.Key(user)
	if !ok {
		return MarkerResult{}
	}

	val, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return MarkerResult{}
		}
		return MarkerResult{Err: err}
	}

	return MarkerResult{Day: val, OK: true}
}

// Set stores the marker for the user. No-op for an empty identity. The
// returned error is advisory; callers absorb it.
func (s *MarkerStore) Set(ctx context.Context, user, day string) error {
	key, ok := s.Key(user)
	if !ok {
		return nil
	}
	return s.kv.Set(ctx, key, day, markerTTL)
}

// Clear removes the marker for the user. No-op for an empty identity or a
// missing key. The returned error is advisory; callers absorb it.
func (s *MarkerStore) Clear(ctx context.Context, user string) error {
	key, ok := s.Key(user)
	if !ok {
		return nil
	}
	if err := s.kv.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return err
	}
	return nil
}
