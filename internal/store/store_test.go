package store

import (
	"context"
	"os-scheduler-sim/config"
	"os-scheduler-sim/internal/requests"
	"os-scheduler-sim/internal/responses"
	"os-scheduler-sim/internal/schedulers"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResponse(t *testing.T) responses.ScheduleResponse {
	t.Helper()
	response, err := schedulers.Simulate(requests.ScheduleRequest{
		Algorithm: "rr",
		RunFor:    10,
		Quantum:   2,
		Jobs: []requests.Job{
			{Name: "A", Arrival: 0, Burst: 5},
			{Name: "B", Arrival: 1, Burst: 3},
		},
	})
	require.NoError(t, err)
	return response
}

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), server
}

func testRoundTrip(t *testing.T, s RunStore) {
	ctx := context.Background()
	response := sampleResponse(t)

	id, err := s.Save(ctx, &response)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, id, response.RunID)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	if diff := cmp.Diff(response, *got); diff != "" {
		t.Fatalf("stored run mismatch (-want +got):\n%s", diff)
	}

	other := sampleResponse(t)
	otherID, err := s.Save(ctx, &other)
	require.NoError(t, err)
	assert.NotEqual(t, id, otherID)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestMemoryStore(t *testing.T) {
	testRoundTrip(t, NewMemoryStore())
}

func TestMemoryStoreCopiesOnSave(t *testing.T) {
	s := NewMemoryStore()
	response := sampleResponse(t)
	id, err := s.Save(context.Background(), &response)
	require.NoError(t, err)

	response.AlgorithmName = "changed"
	got, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Round-Robin", got.AlgorithmName)
}

func TestRedisStore(t *testing.T) {
	s, _ := newRedisStore(t, time.Hour)
	testRoundTrip(t, s)
}

func TestRedisStoreKeyAndTTL(t *testing.T) {
	s, server := newRedisStore(t, time.Minute)
	response := sampleResponse(t)

	id, err := s.Save(context.Background(), &response)
	require.NoError(t, err)

	key := "scheduler:run:" + id
	assert.True(t, server.Exists(key))
	assert.Equal(t, time.Minute, server.TTL(key))

	server.FastForward(2 * time.Minute)
	_, err = s.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRedisStoreCorruptPayload(t *testing.T) {
	s, server := newRedisStore(t, 0)
	require.NoError(t, server.Set("scheduler:run:bad", "not json"))

	_, err := s.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRunNotFound)
	assert.Contains(t, err.Error(), "decode run bad")
}

func TestNew(t *testing.T) {
	_, ok := New(&config.SchedulerConfig{}).(*MemoryStore)
	assert.True(t, ok)

	server := miniredis.RunT(t)
	cfg := &config.SchedulerConfig{}
	cfg.Redis.Addr = server.Addr()
	cfg.Redis.TTL = time.Hour

	s, ok := New(cfg).(*RedisStore)
	require.True(t, ok)
	testRoundTrip(t, s)
}
