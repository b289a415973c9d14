package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisKey namespaces the session payload inside a shared Redis instance.
const redisKey = "session:" + Key

// Redis stores the session payload under a single Redis key with no
// expiry; logout deletes it.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed slot wrapping the given client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Load(ctx context.Context) ([]byte, error) {
	payload, err := r.client.Get(ctx, redisKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session slot: %w", err)
	}
	return payload, nil
}

func (r *Redis) Save(ctx context.Context, payload []byte) error {
	if err := r.client.Set(ctx, redisKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("write session slot: %w", err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("clear session slot: %w", err)
	}
	return nil
}
