package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/famoussince/storefront/pkg/redis"
)

// Redis stores snapshots as plain string values without expiry.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, scope, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.client.StateKey(scope, key))
	if errors.Is(err, redis.ErrNil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s/%s: %w", scope, key, err)
	}
	return []byte(v), nil
}

func (r *Redis) Set(ctx context.Context, scope, key string, value []byte) error {
	if err := r.client.Set(ctx, r.client.StateKey(scope, key), string(value), 0); err != nil {
		return fmt.Errorf("redis set %s/%s: %w", scope, key, err)
	}
	return nil
}

func (r *Redis) Ping(ctx context.Context) error { return r.client.Ping(ctx) }

func (r *Redis) Close() error { return r.client.Close() }
