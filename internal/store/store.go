// Package store keeps finished simulation results so they can be fetched
// again by run id.
package store

import (
	"context"
	"errors"
	"os-scheduler-sim/config"
	"os-scheduler-sim/internal/responses"

	"github.com/redis/go-redis/v9"
)

var ErrRunNotFound = errors.New("run not found")

type RunStore interface {
	// Save assigns a new run id to the response, stores it and returns the id.
	Save(ctx context.Context, response *responses.ScheduleResponse) (string, error)
	Get(ctx context.Context, id string) (*responses.ScheduleResponse, error)
}

// New returns a Redis backed store when an address is configured and an
// in-memory one otherwise.
func New(cfg *config.SchedulerConfig) RunStore {
	if cfg.Redis.Addr == "" {
		return NewMemoryStore()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return NewRedisStore(client, cfg.Redis.TTL)
}
