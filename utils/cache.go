package utils

import (
	"context"
	"log"
	"time"

	"pitchbook/config"

	"github.com/go-redis/redis/v8"
)

// QuoteCacheClient holds pending quote sessions between the advisory
// availability check and booking confirmation.
var QuoteCacheClient *redis.Client

// InitQuoteCache initializes the Redis client for the quote session cache.
func InitQuoteCache() {
	QuoteCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQuoteDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := QuoteCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Quote Cache): %v", err)
	}
}

// GetQuoteCacheClient returns the quote cache client.
func GetQuoteCacheClient() *redis.Client {
	if QuoteCacheClient == nil {
		InitQuoteCache()
	}
	return QuoteCacheClient
}
