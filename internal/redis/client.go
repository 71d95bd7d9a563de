package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/plentylife/mattermost-redux/internal/models"
	goredis "github.com/redis/go-redis/v9"
)

// Client wraps a Redis connection used as a read-through cache for user
// preferences.
type Client struct {
	rdb *goredis.Client
	ttl time.Duration
}

const (
	preferencePrefix = "prefs:"
	// cachedMarker is stored in every cached hash so that a user with no
	// preferences in a category is still a cache hit.
	cachedMarker      = "\x00cached"
	defaultCacheTTL   = 10 * time.Minute
	connectionTimeout = 5 * time.Second
)

// NewClient creates a Redis client from a URL and verifies the connection.
// A non-positive ttl uses the default of ten minutes.
func NewClient(redisURL string, ttl time.Duration) (*Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	rdb := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Client{rdb: rdb, ttl: ttl}, nil
}

// Ping checks the Redis connection.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

func preferenceKey(userID, category string) string {
	return preferencePrefix + userID + ":" + category
}

// CachePreferences replaces the cached preferences of one user and category.
// prefs may be empty.
func (c *Client) CachePreferences(ctx context.Context, userID, category string, prefs []models.Preference) error {
	key := preferenceKey(userID, category)
	values := make([]any, 0, 2*len(prefs)+2)
	values = append(values, cachedMarker, "1")
	for _, p := range prefs {
		values = append(values, p.Name, p.Value)
	}

	_, err := c.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, values...)
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("caching preferences: %w", err)
	}
	return nil
}

// GetPreferences returns the cached preferences of one user and category.
// ok is false on a cache miss.
func (c *Client) GetPreferences(ctx context.Context, userID, category string) (prefs []models.Preference, ok bool, err error) {
	vals, err := c.rdb.HGetAll(ctx, preferenceKey(userID, category)).Result()
	if err != nil {
		return nil, false, fmt.Errorf("getting preferences: %w", err)
	}
	if _, cached := vals[cachedMarker]; !cached {
		return nil, false, nil
	}
	delete(vals, cachedMarker)

	prefs = make([]models.Preference, 0, len(vals))
	for name, value := range vals {
		prefs = append(prefs, models.Preference{
			UserID:   userID,
			Category: category,
			Name:     name,
			Value:    value,
		})
	}
	return prefs, true, nil
}

// InvalidatePreferences drops the cached preferences of one user and category.
func (c *Client) InvalidatePreferences(ctx context.Context, userID, category string) error {
	return c.rdb.Del(ctx, preferenceKey(userID, category)).Err()
}
