package api

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client's bucket survives without requests.
const limiterIdleTTL = 3 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than limiterIdleTTL are swept so the map tracks only recent clients.
type RateLimiter struct {
	limiters          map[string]*clientLimiter
	mu                sync.Mutex
	requestsPerSecond float64
	burst             int
	idleTTL           time.Duration
	lastSweep         time.Time
	now               func() time.Time
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters:          make(map[string]*clientLimiter),
		requestsPerSecond: requestsPerSecond,
		burst:             burst,
		idleTTL:           limiterIdleTTL,
		now:               time.Now,
	}
}

// Handler rejects requests over the limit with 429. A zero rate disables it.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if rl.requestsPerSecond <= 0 {
			return ctx.Next()
		}
		if !rl.allow(ctx.IP()) {
			return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")
		}
		return ctx.Next()
	}
}

func (rl *RateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.idleTTL {
		rl.sweep(now)
	}

	client, exists := rl.limiters[clientIP]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rl.requestsPerSecond), rl.burst)}
		rl.limiters[clientIP] = client
	}
	client.lastSeen = now
	return client.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) sweep(now time.Time) {
	for clientIP, client := range rl.limiters {
		if now.Sub(client.lastSeen) >= rl.idleTTL {
			delete(rl.limiters, clientIP)
		}
	}
	rl.lastSweep = now
}
