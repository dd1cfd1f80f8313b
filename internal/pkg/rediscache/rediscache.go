package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache adapts a Redis client to the byte-oriented cache port with sliding
// plus absolute expiration. Redis itself only knows a single TTL, so each
// entry is wrapped in an envelope carrying the absolute deadline: the key's
// TTL realizes the sliding window (refreshed on every read), and the envelope
// deadline bounds the entry's total lifetime.
type Cache struct {
	client *redis.Client

	// now is swappable for tests.
	now func() time.Time
}

// envelope is the stored representation of a cache entry.
type envelope struct {
	Deadline time.Time       `json:"deadline"`
	Sliding  time.Duration   `json:"sliding"`
	Payload  json.RawMessage `json:"payload"`
}

func New(client *redis.Client) *Cache {
	return &Cache{client: client, now: func() time.Time { return time.Now().UTC() }}
}

// Get returns the payload stored under key. Absent, expired or undecodable
// entries report a miss. A successful read refreshes the sliding window.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("rediscache: get %q: %w", key, err)
	}

	env, err := decodeEnvelope(data)
	if err != nil {
		// Treat a corrupt entry as a miss and drop it.
		_ = c.client.Del(ctx, key).Err()
		return nil, false, nil
	}

	now := c.now()
	if !now.Before(env.Deadline) {
		_ = c.client.Del(ctx, key).Err()
		return nil, false, nil
	}

	if ttl := entryTTL(env.Sliding, env.Deadline, now); ttl > 0 {
		_ = c.client.Expire(ctx, key, ttl).Err()
	}

	return env.Payload, true, nil
}

// Set stores value under key with the given sliding and absolute expirations.
func (c *Cache) Set(ctx context.Context, key string, value []byte, sliding, absolute time.Duration) error {
	now := c.now()
	env := envelope{
		Deadline: now.Add(absolute),
		Sliding:  sliding,
		Payload:  value,
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("rediscache: encode %q: %w", key, err)
	}

	ttl := entryTTL(sliding, env.Deadline, now)
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("rediscache: set %q: %w", key, err)
	}
	return nil
}

// Delete removes the given keys. Missing keys are not an error.
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("rediscache: del: %w", err)
	}
	return nil
}

func decodeEnvelope(data []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return envelope{}, err
	}
	if env.Deadline.IsZero() {
		return envelope{}, fmt.Errorf("rediscache: envelope missing deadline")
	}
	return env, nil
}

// entryTTL returns the key TTL honoring whichever bound comes first: the
// sliding window or the time remaining until the absolute deadline.
func entryTTL(sliding time.Duration, deadline, now time.Time) time.Duration {
	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return 0
	}
	if sliding <= 0 || sliding > remaining {
		return remaining
	}
	return sliding
}
