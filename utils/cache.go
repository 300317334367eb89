package utils

import (
	"context"
	"log"
	"time"

	"wanderbook/config"

	"github.com/go-redis/redis/v8"
)

// CheckoutCacheClient is the Redis client holding in-flight checkout sessions.
var CheckoutCacheClient *redis.Client

// InitCache initializes the Redis client for checkout session caching.
func InitCache() {
	CheckoutCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CheckoutCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (checkout cache): %v", err)
	}
}

// GetCheckoutCacheClient returns the checkout session cache client.
func GetCheckoutCacheClient() *redis.Client {
	if CheckoutCacheClient == nil {
		InitCache()
	}
	return CheckoutCacheClient
}
