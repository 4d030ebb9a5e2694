package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
	"github.com/redis/go-redis/v9"
)

// ModerationCacheRepository caches assembled moderation queues in Redis,
// one key per status, as JSON.
type ModerationCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached queues
}

// NewModerationCacheRepository creates a new repository instance with the given TTL
func NewModerationCacheRepository(client *redis.Client, expiration time.Duration) *ModerationCacheRepository {
	return &ModerationCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func moderationKey(status string) string {
	return fmt.Sprintf("moderation_queue:%s", status)
}

// Get fetches a cached moderation queue for the given status.
func (r *ModerationCacheRepository) Get(ctx context.Context, status string) ([]models.Release, error) {
	key := moderationKey(status)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache miss",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("moderation queue not cached for status %s", status)
		}
		return nil, err
	}

	var releases []models.Release
	if err := json.Unmarshal([]byte(val), &releases); err != nil {
		logger.Log.Errorw("failed to decode cached moderation queue",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache hit",
		"key", key,
		"rows", len(releases),
	)

	return releases, nil
}

// Set caches a moderation queue for the given status with expiration.
func (r *ModerationCacheRepository) Set(ctx context.Context, status string, releases []models.Release) error {
	key := moderationKey(status)

	data, err := json.Marshal(releases)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"rows", len(releases),
		"error", err,
	)

	return err
}

// Invalidate drops the cached queues for the given statuses.
func (r *ModerationCacheRepository) Invalidate(ctx context.Context, statuses ...string) error {
	keys := make([]string, 0, len(statuses))
	for _, status := range statuses {
		keys = append(keys, moderationKey(status))
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow("cache invalidated",
		"keys", keys,
		"error", err,
	)

	return err
}
