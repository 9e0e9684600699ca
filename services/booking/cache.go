package booking

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// errCacheMiss marks an absent or expired quote session. ConfirmQuote
// translates it into ErrQuoteExpired.
var errCacheMiss = errors.New("quote session not in cache")

// QuoteCache is the narrow cache surface the quote flow needs: store a
// session under a TTL, load it back, drop it.
type QuoteCache interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Del(ctx context.Context, key string) error
}

// RedisQuoteCache backs QuoteCache with redis, where expiry is handled
// by the key TTL.
type RedisQuoteCache struct {
	Client *redis.Client
}

func NewRedisQuoteCache(client *redis.Client) *RedisQuoteCache {
	return &RedisQuoteCache{Client: client}
}

func (c *RedisQuoteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisQuoteCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, errCacheMiss
	}
	return data, err
}

func (c *RedisQuoteCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
