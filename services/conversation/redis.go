package conversation

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"voicesalon/models"
)

const contextPrefix = "voice:ctx:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get returns an empty context for unknown conversations.
func (s *RedisStore) Get(ctx context.Context, conversationID string) (*models.ConversationContext, error) {
	data, err := s.client.Get(ctx, contextPrefix+conversationID).Bytes()
	if err == redis.Nil {
		return &models.ConversationContext{ConversationID: conversationID}, nil
	}
	if err != nil {
		return nil, err
	}
	var convCtx models.ConversationContext
	if err := json.Unmarshal(data, &convCtx); err != nil {
		return nil, err
	}
	return &convCtx, nil
}

// Set stores the context and restarts its expiry.
func (s *RedisStore) Set(ctx context.Context, convCtx *models.ConversationContext) error {
	b, err := json.Marshal(convCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, contextPrefix+convCtx.ConversationID, b, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, conversationID string) error {
	return s.client.Del(ctx, contextPrefix+conversationID).Err()
}
