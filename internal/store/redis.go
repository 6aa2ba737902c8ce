package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os-scheduler-sim/internal/responses"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "scheduler:run:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore stores runs under scheduler:run:<id>. A zero ttl keeps
// them forever.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Save(ctx context.Context, response *responses.ScheduleResponse) (string, error) {
	id := uuid.NewString()
	response.RunID = id

	payload, err := json.Marshal(response)
	if err != nil {
		return "", fmt.Errorf("encode run %s: %w", id, err)
	}
	if err := r.client.Set(ctx, keyPrefix+id, payload, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("save run %s: %w", id, err)
	}
	return id, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*responses.ScheduleResponse, error) {
	payload, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", id, err)
	}

	var response responses.ScheduleResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, fmt.Errorf("decode run %s: %w", id, err)
	}
	return &response, nil
}
