package convo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "convo:sess:"

// RedisStore implements Store on a Redis client, one JSON blob per
// conversation with the idle lifetime enforced by key TTL.
type RedisStore struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewRedisStore creates a Redis-backed conversation store.
func NewRedisStore(client *redis.Client, defaultTTL time.Duration) *RedisStore {
	if defaultTTL == 0 {
		defaultTTL = 30 * time.Minute
	}
	return &RedisStore{client: client, defaultTTL: defaultTTL}
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*State, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation state: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation state: %w", err)
	}
	return &state, nil
}

func (r *RedisStore) Save(ctx context.Context, sessionID string, state *State, ttl time.Duration) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation state: %w", err)
	}
	if ttl == 0 {
		ttl = r.defaultTTL
	}
	return r.client.Set(ctx, sessionKeyPrefix+sessionID, data, ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
