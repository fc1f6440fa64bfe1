// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"neobook/config"

	"github.com/go-redis/redis/v8"
)

// SlotCacheClient backs the per-session slot store.
var SlotCacheClient *redis.Client

// InitSlotCache initializes the Redis client for booking slot state.
func InitSlotCache() {
	SlotCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisSlotDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SlotCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Slot Cache): %v", err)
	}
}

// GetSlotCacheClient returns the slot cache client.
func GetSlotCacheClient() *redis.Client {
	if SlotCacheClient == nil {
		InitSlotCache()
	}
	return SlotCacheClient
}
