// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"voicesalon/config"

	"github.com/go-redis/redis/v8"
)

// ContextCacheClient backs the per-conversation context store.
var ContextCacheClient *redis.Client

// InitContextCache initializes the Redis client used for conversation context
// (using REDIS_CONTEXT_DB).
func InitContextCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisContextDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to redis (context cache): %w", err)
	}
	ContextCacheClient = client
	return nil
}

// GetContextCacheClient returns the conversation context client, or nil when
// redis is not configured or unreachable.
func GetContextCacheClient() *redis.Client {
	if ContextCacheClient == nil && config.RedisEnabled() {
		if err := InitContextCache(); err != nil {
			GetLogger().Sugar().Warnf("redis unavailable, falling back to memory: %v", err)
			return nil
		}
	}
	return ContextCacheClient
}
