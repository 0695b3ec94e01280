package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Client wraps redis.Client and fails safe: a broken or absent Redis
// degrades reads to cache misses and writes to no-ops instead of
// surfacing errors to callers.
type Client struct {
	client *redis.Client
}

// New creates a Redis-backed cache client.
func New(addr, password string, db int) *Client {
	return &Client{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Get returns the cached value, or nil on a miss or when Redis is unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logrus.WithError(err).WithField("key", key).Debug("cache get failed, treating as miss")
		return nil, nil
	}
	return res, nil
}

// Set stores a value with the given TTL, ignoring Redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Debug("cache set failed, skipping")
	}
	return nil
}

// Delete removes a key, ignoring Redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Debug("cache delete failed, skipping")
	}
	return nil
}

// Close releases the underlying Redis connection.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
