package domain

import (
	"context"
	"errors"
	"time"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the generic scoped-storage capability the widget's marker
// cache sits on. Implementations: redis (production), in-memory (tests).
// A zero TTL means no expiry.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
