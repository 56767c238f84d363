package entitlement

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Key layout mirrors the original persisted shape: the counter as a decimal
// string, the premium flag as "true" or absent.
const (
	countKeyPrefix   = "entitlement:count:"
	premiumKeyPrefix = "entitlement:premium:"
)

// RedisStore is a Redis-backed Store implementation.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store over an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Count(ctx context.Context, clientID string) (int, error) {
	val, err := s.client.Get(ctx, countKeyPrefix+clientID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read counter: %w", err)
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		// Corrupt state reads as no prior state.
		return 0, fmt.Errorf("corrupt counter %q: %w", val, err)
	}
	return n, nil
}

func (s *RedisStore) SetCount(ctx context.Context, clientID string, n int) error {
	if err := s.client.Set(ctx, countKeyPrefix+clientID, strconv.Itoa(n), 0).Err(); err != nil {
		return fmt.Errorf("write counter: %w", err)
	}
	return nil
}

func (s *RedisStore) Premium(ctx context.Context, clientID string) (bool, error) {
	val, err := s.client.Get(ctx, premiumKeyPrefix+clientID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read premium flag: %w", err)
	}
	return val == "true", nil
}

func (s *RedisStore) SetPremium(ctx context.Context, clientID string, premium bool) error {
	key := premiumKeyPrefix + clientID
	if !premium {
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("clear premium flag: %w", err)
		}
		return nil
	}
	if err := s.client.Set(ctx, key, "true", 0).Err(); err != nil {
		return fmt.Errorf("write premium flag: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, clientID string) error {
	if err := s.client.Del(ctx, countKeyPrefix+clientID, premiumKeyPrefix+clientID).Err(); err != nil {
		return fmt.Errorf("clear entitlement state: %w", err)
	}
	return nil
}
