package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lequangminh/fitstreak/internal/core/domain"
)

var _ domain.CompletionRepository = (*CachedCompletionRepository)(nil)

// CachedCompletionRepository caches the calendar day lists in redis. The
// lists are read on every widget refresh and only change when a completion
// lands, so they are ideal cache candidates. Cache faults degrade to the
// underlying repository.
type CachedCompletionRepository struct {
	next  domain.CompletionRepository
	cache *redis.Client
}

func NewCachedCompletionRepository(next domain.CompletionRepository, cache *redis.Client) *CachedCompletionRepository {
	return &CachedCompletionRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedCompletionRepository) cacheKey(userID, month string) string {
	if month == "" {
		return fmt.Sprintf("calendar:%s:all", userID)
	}
	return fmt.Sprintf("calendar:%s:%s", userID, month)
}

func (r *CachedCompletionRepository) invalidate(ctx context.Context, userID, day string) {
	keys := []string{r.cacheKey(userID, "")}
	if month, err := domain.MonthOf(day); err == nil {
		keys = append(keys, r.cacheKey(userID, month))
	}
	if err := r.cache.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate calendar for user %s: %v", userID, err)
	}
}

func (r *CachedCompletionRepository) listThrough(ctx context.Context, key string, load func() ([]string, error)) ([]string, error) {
	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var days []string
		if err := json.Unmarshal([]byte(val), &days); err == nil {
			return days, nil
		}

		log.Printf("[CACHE] Corrupted data at %s, cleaning up key", key)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	days, err := load()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(days); err == nil {
		if setErr := r.cache.Set(ctx, key, data, 30*time.Minute).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return days, nil
}

func (r *CachedCompletionRepository) ListDaysByMonth(ctx context.Context, userID, month string) ([]string, error) {
	return r.listThrough(ctx, r.cacheKey(userID, month), func() ([]string, error) {
		return r.next.ListDaysByMonth(ctx, userID, month)
	})
}

func (r *CachedCompletionRepository) ListDays(ctx context.Context, userID string) ([]string, error) {
	return r.listThrough(ctx, r.cacheKey(userID, ""), func() ([]string, error) {
		return r.next.ListDays(ctx, userID)
	})
}

func (r *CachedCompletionRepository) Create(ctx context.Context, completion *domain.Completion) error {
	if err := r.next.Create(ctx, completion); err != nil {
		return err
	}
	r.invalidate(ctx, completion.UserID, completion.CompletionDay)
	return nil
}

func (r *CachedCompletionRepository) ExistsOnDay(ctx context.Context, userID, day string) (bool, error) {
	return r.next.ExistsOnDay(ctx, userID, day)
}

func (r *CachedCompletionRepository) CountByMonth(ctx context.Context, userID, month string) (int, error) {
	return r.next.CountByMonth(ctx, userID, month)
}

func (r *CachedCompletionRepository) CountTotal(ctx context.Context, userID string) (int, error) {
	return r.next.CountTotal(ctx, userID)
}
