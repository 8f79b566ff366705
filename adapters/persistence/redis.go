package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/namdhoang/portfolio-hub/internal/config"
	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
	"github.com/namdhoang/portfolio-hub/pkg/apperror"
)

func NewRedisClient(cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("cannot connect Redis: %w", err)
	}

	return rdb, nil
}

// RedisStats keeps the best-effort counters: per-profile view counts and
// per-event-type totals maintained by the worker.
type RedisStats struct {
	rdb *redis.Client
}

func NewRedisStats(rdb *redis.Client) *RedisStats {
	return &RedisStats{rdb: rdb}
}

var _ profile.ViewCounter = (*RedisStats)(nil)

func viewsKey(id uuid.UUID) string {
	return "profile:views:" + id.String()
}

func (s *RedisStats) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := s.rdb.Incr(ctx, viewsKey(id)).Result()
	if err != nil {
		return 0, apperror.NewInternal("failed to increment view counter", err)
	}
	return n, nil
}

func (s *RedisStats) Views(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := s.rdb.Get(ctx, viewsKey(id)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, apperror.NewInternal("failed to read view counter", err)
	}
	return n, nil
}

func (s *RedisStats) IncrementEvent(ctx context.Context, eventType string) error {
	if err := s.rdb.Incr(ctx, "profile:events:"+eventType).Err(); err != nil {
		return apperror.NewInternal("failed to increment event counter", err)
	}
	return nil
}
