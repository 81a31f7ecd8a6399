package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizforge/internal/cache"
	"quizforge/internal/domain"

	"github.com/redis/go-redis/v9"
)

const activationTokenTTL = 24 * time.Hour

// RedisTokenStore implements domain.ActivationTokenStore on Redis. The TTL
// bounds how long a registration can stay unactivated; Consume deletes the
// key so each link works once.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore creates a RedisTokenStore.
func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Put(ctx context.Context, userID string, token string) error {
	key := cache.ActivationTokenKey(userID)
	if err := s.client.Set(ctx, key, token, activationTokenTTL).Err(); err != nil {
		return fmt.Errorf("failed to store activation token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Consume(ctx context.Context, userID string, token string) (bool, error) {
	key := cache.ActivationTokenKey(userID)
	stored, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read activation token: %w", err)
	}
	if stored != token {
		return false, nil
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return false, fmt.Errorf("failed to consume activation token: %w", err)
	}
	return true, nil
}

var _ domain.ActivationTokenStore = (*RedisTokenStore)(nil)
