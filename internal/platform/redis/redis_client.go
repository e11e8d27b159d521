package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"listing_backend/internal/platform/config"
)

// NewRedisClient builds a Redis client from configuration and verifies the
// connection with a ping. The caller decides whether a failure is fatal; the
// server can run without a cache.
func NewRedisClient(cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Addr(), "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Addr())
	return rdb, nil
}
