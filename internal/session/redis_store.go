package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jnvillamor/blogsite/pkg/constant"
)

// RedisStore keeps one live refresh token per user. TTL expiry is the
// only garbage collection; there is no background sweep.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func sessionKey(userID uuid.UUID) string {
	return constant.SessionKeyPrefix + userID.String()
}

// Set overwrites any existing session for the user (rotation).
func (s *RedisStore) Set(ctx context.Context, userID uuid.UUID, refreshToken string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(userID), refreshToken, ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

// Get returns the stored refresh token, or "" when no session exists.
func (s *RedisStore) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	val, err := s.client.Get(ctx, sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session get: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}
