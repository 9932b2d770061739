package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const quotaKeyPrefix = "leadmarket:upload-quota:"

// UploadQuota caps upload batches per account in fixed hourly windows backed
// by Redis counters. A zero limit disables the quota.
type UploadQuota struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewUploadQuota creates an UploadQuota allowing limit batches per hour.
func NewUploadQuota(client *redis.Client, limit int) *UploadQuota {
	return &UploadQuota{
		client: client,
		limit:  limit,
		window: time.Hour,
		now:    time.Now,
	}
}

// Allow counts one batch for key and reports whether it is within the quota.
func (q *UploadQuota) Allow(ctx context.Context, key string) (bool, error) {
	if q.limit <= 0 {
		return true, nil
	}

	windowStart := q.now().Truncate(q.window)
	redisKey := fmt.Sprintf("%s%s:%d", quotaKeyPrefix, key, windowStart.Unix())

	pipe := q.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, q.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("upload quota check failed: %w", err)
	}

	return incr.Val() <= int64(q.limit), nil
}

// Ping checks the Redis connection.
func (q *UploadQuota) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}
