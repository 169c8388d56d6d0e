// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"fixeify/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SnapshotCacheClient caches booking/quota snapshots read from the backend.
	SnapshotCacheClient *redis.Client
	// PaymentCacheClient is the dedicated client for payment-attempt state.
	PaymentCacheClient *redis.Client
)

// InitSnapshotCache initializes the Redis client for backend snapshot caching.
func InitSnapshotCache() {
	SnapshotCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SnapshotCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Snapshot Cache): %v", err)
	}
}

// GetSnapshotCacheClient returns the snapshot cache client.
func GetSnapshotCacheClient() *redis.Client {
	if SnapshotCacheClient == nil {
		InitSnapshotCache()
	}
	return SnapshotCacheClient
}

// InitPaymentCache initializes the Redis client for payment-attempt state.
func InitPaymentCache() {
	PaymentCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPaymentDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := PaymentCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Payment Cache): %v", err)
	}
}

// GetPaymentCacheClient returns the Redis client for payment-attempt state.
func GetPaymentCacheClient() *redis.Client {
	if PaymentCacheClient == nil {
		InitPaymentCache()
	}
	return PaymentCacheClient
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	InitSnapshotCache()
	InitPaymentCache()
}
