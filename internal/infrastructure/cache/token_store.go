package cache

import (
	"context"
	"fmt"
	"time"

	domainRepo "dental-clinic-portal/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type redisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore keeps issued token ids in redis keyed by username and jti,
// expiring alongside the token itself.
func NewRedisTokenStore(client *redis.Client) domainRepo.TokenStore {
	return &redisTokenStore{client: client}
}

func tokenKey(username, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", username, tokenID)
}

func (s *redisTokenStore) Save(ctx context.Context, username, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(username, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, username, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(username, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Delete(ctx context.Context, username, tokenID string) error {
	return s.client.Del(ctx, tokenKey(username, tokenID)).Err()
}
