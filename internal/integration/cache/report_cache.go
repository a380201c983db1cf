// Package cache implements the report cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/brecho/backoffice/internal/application/adapter"
)

const keyPrefix = "reports"

// RedisReportCache stores reports under a per-user version, so invalidating a
// user only needs to bump that version. Stale entries expire with the TTL.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisReportCache creates a new Redis report cache.
func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{
		client: client,
		ttl:    ttl,
	}
}

// Get loads a cached report into dest.
func (c *RedisReportCache) Get(ctx context.Context, userID uuid.UUID, key string, dest any) (bool, error) {
	version, err := c.version(ctx, userID)
	if err != nil {
		return false, err
	}

	raw, err := c.client.Get(ctx, entryKey(userID, version, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read report cache: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		slog.Warn("Discarding undecodable report cache entry", "user_id", userID, "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// Set stores a report for the current version of the user.
func (c *RedisReportCache) Set(ctx context.Context, userID uuid.UUID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	version, err := c.version(ctx, userID)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, entryKey(userID, version, key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write report cache: %w", err)
	}
	return nil
}

// Invalidate bumps the version of the user.
func (c *RedisReportCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Incr(ctx, versionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return nil
}

func (c *RedisReportCache) version(ctx context.Context, userID uuid.UUID) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read report cache version: %w", err)
	}
	return version, nil
}

func versionKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:version", keyPrefix, userID)
}

func entryKey(userID uuid.UUID, version int64, key string) string {
	return fmt.Sprintf("%s:%s:v%d:%s", keyPrefix, userID, version, key)
}

// NoopReportCache never stores anything. It is used when Redis is disabled.
type NoopReportCache struct{}

// Get always reports a miss.
func (NoopReportCache) Get(context.Context, uuid.UUID, string, any) (bool, error) {
	return false, nil
}

// Set does nothing.
func (NoopReportCache) Set(context.Context, uuid.UUID, string, any) error {
	return nil
}

// Invalidate does nothing.
func (NoopReportCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}

var (
	_ adapter.ReportCache = (*RedisReportCache)(nil)
	_ adapter.ReportCache = NoopReportCache{}
)
