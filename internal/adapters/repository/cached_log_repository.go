package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

var _ domain.DailyLogRepository = (*CachedLogRepository)(nil)

const logCacheTTL = 30 * time.Minute

// CachedLogRepository caches the full per-user log history that every dashboard read needs.
type CachedLogRepository struct {
	next  domain.DailyLogRepository
	cache *redis.Client
}

func NewCachedLogRepository(next domain.DailyLogRepository, cache *redis.Client) *CachedLogRepository {
	return &CachedLogRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedLogRepository) cacheKey(userID string) string {
	return fmt.Sprintf("logs:%s", userID)
}

func (r *CachedLogRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate logs for user %s: %v", userID, err)
	}
}

func (r *CachedLogRepository) ListByUserID(ctx context.Context, userID string) ([]domain.DailyLog, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var logs []domain.DailyLog
		if err := json.Unmarshal([]byte(val), &logs); err == nil {
			return logs, nil
		}

		log.Printf("[CACHE] Corrupted log data for user %s, cleaning up key", userID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	logs, err := r.next.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(logs); err == nil {
		if setErr := r.cache.Set(ctx, key, data, logCacheTTL).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return logs, nil
}

func (r *CachedLogRepository) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyLog, error) {
	return r.next.ListByUserIDAndDateRange(ctx, userID, from, to)
}

func (r *CachedLogRepository) GetByID(ctx context.Context, id string) (*domain.DailyLog, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedLogRepository) GetChanges(ctx context.Context, userID string, since time.Time) ([]domain.DailyLog, error) {
	return r.next.GetChanges(ctx, userID, since)
}

func (r *CachedLogRepository) Create(ctx context.Context, entry *domain.DailyLog) error {
	if err := r.next.Create(ctx, entry); err != nil {
		return err
	}
	r.invalidate(ctx, entry.UserID)
	return nil
}

func (r *CachedLogRepository) Update(ctx context.Context, entry *domain.DailyLog) error {
	if err := r.next.Update(ctx, entry); err != nil {
		return err
	}
	r.invalidate(ctx, entry.UserID)
	return nil
}

func (r *CachedLogRepository) Delete(ctx context.Context, id string, userID string) error {
	if err := r.next.Delete(ctx, id, userID); err != nil {
		return err
	}
	r.invalidate(ctx, userID)
	return nil
}
