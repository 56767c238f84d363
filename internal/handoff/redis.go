package handoff

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const slotKeyPrefix = "handoff:"

// RedisMailbox is a Redis-backed Mailbox. GETDEL gives the read-then-delete
// consume semantics in a single round trip.
type RedisMailbox struct {
	client *redis.Client
}

// NewRedisMailbox creates a mailbox over an existing Redis client.
func NewRedisMailbox(client *redis.Client) *RedisMailbox {
	return &RedisMailbox{client: client}
}

func (m *RedisMailbox) Park(ctx context.Context, clientID string, payload []byte) error {
	if err := m.client.Set(ctx, slotKeyPrefix+clientID, payload, TTL).Err(); err != nil {
		return fmt.Errorf("park payload: %w", err)
	}
	return nil
}

func (m *RedisMailbox) Consume(ctx context.Context, clientID string) ([]byte, bool, error) {
	val, err := m.client.GetDel(ctx, slotKeyPrefix+clientID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("consume payload: %w", err)
	}
	return val, true, nil
}
