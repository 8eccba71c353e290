// Package cache holds the short-TTL availability response cache. It is
// advisory only: the committing transaction re-checks conflicts under its own
// lock, so a stale cache entry can never cause a double booking.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"office-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAvailabilityCache returns nil when caching is disabled; callers treat a
// nil cache as a permanent miss.
func NewAvailabilityCache(client *redis.Client, cfg config.RedisConfig) *AvailabilityCache {
	if client == nil || cfg.DisableCache {
		return nil
	}
	return &AvailabilityCache{client: client, ttl: cfg.AvailabilityTTL}
}

// GetSlots returns the cached slot list for the key, or (nil, false). Cache
// errors are logged at debug level and reported as misses.
func (c *AvailabilityCache) GetSlots(ctx context.Context, key string) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("availability cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		slog.Debug("availability cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) SetSlots(ctx context.Context, key string, slots []string) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Debug("availability cache write failed", "key", key, "error", err)
	}
}

// InvalidateOffice drops every availability entry for the office after a
// commit, so interactive clients see the change before the TTL expires.
func (c *AvailabilityCache) InvalidateOffice(ctx context.Context, officeID string) {
	if c == nil {
		return
	}
	pattern := "availability:" + officeID + ":*"
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Debug("availability cache scan failed", "office_id", officeID, "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Debug("availability cache invalidation failed", "office_id", officeID, "error", err)
	}
}

// SlotKey builds the cache key for a room slot query.
func SlotKey(officeID, roomID, date string, durationMinutes int) string {
	return "availability:" + officeID + ":slots:" + roomID + ":" + date + ":" + strconv.Itoa(durationMinutes)
}
