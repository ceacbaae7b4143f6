package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/giladbarnea/assetvista-core/internal/domain"
)

const keyPrefix = "session:"

type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(token string) string {
	return keyPrefix + token
}

func (s *RedisStore) Create(ctx context.Context, token string, record domain.Session, ttl time.Duration) error {
	if token == "" {
		return errors.New("session token is empty")
	}
	if ttl <= 0 {
		return errors.New("session ttl must be positive")
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(token), data, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (domain.Session, error) {
	raw, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	var record domain.Session
	if err := json.Unmarshal(raw, &record); err != nil {
		// A record we cannot parse is treated as absent, never as valid.
		return domain.Session{}, ErrSessionNotFound
	}
	return record, nil
}

// Delete is idempotent; deleting an absent token is not an error.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
