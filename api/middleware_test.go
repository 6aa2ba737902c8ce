package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterPerClient(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return clock }

	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.2"))

	clock = clock.Add(time.Second)
	assert.True(t, rl.allow("10.0.0.1"))
}

func TestRateLimiterSweepsIdleClients(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return clock }

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		rl.allow(ip)
	}
	assert.Len(t, rl.limiters, 3)

	clock = clock.Add(limiterIdleTTL / 2)
	rl.allow("10.0.0.3")
	assert.Len(t, rl.limiters, 3)

	clock = clock.Add(limiterIdleTTL / 2)
	rl.allow("10.0.0.4")
	assert.Len(t, rl.limiters, 2)
	assert.Contains(t, rl.limiters, "10.0.0.3")
	assert.Contains(t, rl.limiters, "10.0.0.4")
}
