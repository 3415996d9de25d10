package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-expense-note/internal/logger"
)

const attemptKeyPrefix = "attempts:"

// AttemptCacheRepository counts attempts per key in fixed Redis windows.
type AttemptCacheRepository struct {
	client *redis.Client
	window time.Duration
}

func NewAttemptCacheRepository(client *redis.Client, window time.Duration) *AttemptCacheRepository {
	return &AttemptCacheRepository{client: client, window: window}
}

// Increment records one attempt for key and returns the count in the current window.
// The window starts with the first attempt.
func (r *AttemptCacheRepository) Increment(ctx context.Context, key string) (int64, error) {
	fullKey := attemptKeyPrefix + key

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, fullKey)
		pipe.ExpireNX(ctx, fullKey, r.window)
		return nil
	})

	var count int64
	if err == nil {
		count = incr.Val()
	}

	logger.Log.Infow("redis command",
		"key", fullKey,
		"result", count,
		"error", err,
	)

	return count, err
}

// Reset forgets every attempt recorded for key.
func (r *AttemptCacheRepository) Reset(ctx context.Context, key string) error {
	fullKey := attemptKeyPrefix + key
	err := r.client.Del(ctx, fullKey).Err()

	logger.Log.Infow("redis command",
		"key", fullKey,
		"result", "deleted",
		"error", err,
	)

	return err
}
