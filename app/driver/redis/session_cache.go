package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"member-service/app/port"
)

// SessionCache implements port.SessionCache over Redis. Entries expire by
// TTL on the server side; last writer wins on concurrent SETs for a key.
type SessionCache struct {
	rdb    *redis.Client
	logger *slog.Logger
}

// NewSessionCache creates a session cache backed by the given client
func NewSessionCache(client *Client, logger *slog.Logger) port.SessionCache {
	return &SessionCache{
		rdb:    client.rdb,
		logger: logger.With("component", "session_cache"),
	}
}

// Set stores a value under key with the given TTL, overwriting any prior entry
func (c *SessionCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Error("failed to set cache entry", "key", key, "error", err)
		return fmt.Errorf("failed to set cache entry: %w", err)
	}
	return nil
}

// Get retrieves the value for key; an absent or expired entry yields ErrCacheMiss
func (c *SessionCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", port.ErrCacheMiss
		}
		c.logger.Error("failed to get cache entry", "key", key, "error", err)
		return "", fmt.Errorf("failed to get cache entry: %w", err)
	}
	return value, nil
}

// Delete removes the entry for key. Deleting an absent key is not an error.
func (c *SessionCache) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.logger.Error("failed to delete cache entry", "key", key, "error", err)
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}
