// Package ratelimit implements a per-client token bucket in front of the
// scoring endpoints. Evaluations are cheap CPU work, but the insight path
// spends external API credit per call, so both sit behind the same limiter.
package ratelimit

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const idleEviction = 10 * time.Minute

// Config sizes the bucket. Zero values fall back to 60 requests per minute.
type Config struct {
	MaxRequestsPerMinute int
	WindowDuration       time.Duration
	Logger               *zap.Logger
}

type client struct {
	mu       sync.Mutex
	tokens   float64
	lastSeen time.Time
}

// RateLimiter tracks one token bucket per caller, keyed by API key when the
// request carries one and by source IP otherwise.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*client
	capacity float64
	refill   float64 // tokens per second
	logger   *zap.Logger
	janitor  *time.Ticker
	done     chan struct{}
}

func New(cfg Config) *RateLimiter {
	if cfg.MaxRequestsPerMinute <= 0 {
		cfg.MaxRequestsPerMinute = 60
	}
	if cfg.WindowDuration <= 0 {
		cfg.WindowDuration = time.Minute
	}

	rl := &RateLimiter{
		clients:  make(map[string]*client),
		capacity: float64(cfg.MaxRequestsPerMinute),
		refill:   float64(cfg.MaxRequestsPerMinute) / cfg.WindowDuration.Seconds(),
		logger:   cfg.Logger,
		janitor:  time.NewTicker(5 * time.Minute),
		done:     make(chan struct{}),
	}

	go rl.evictIdle()

	return rl
}

// Middleware rejects requests over budget with 429.
func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("X-API-Key")
		if key == "" {
			key = c.IP()
		}

		if !rl.allow(key) {
			if rl.logger != nil {
				rl.logger.Warn("Rate limit exceeded",
					zap.String("ip", c.IP()),
					zap.String("path", c.Path()),
				)
			}
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		}

		return c.Next()
	}
}

func (rl *RateLimiter) allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	cl, ok := rl.clients[key]
	if !ok {
		cl = &client{tokens: rl.capacity, lastSeen: now}
		rl.clients[key] = cl
	}
	rl.mu.Unlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	elapsed := now.Sub(cl.lastSeen).Seconds()
	cl.tokens = minF(rl.capacity, cl.tokens+elapsed*rl.refill)
	cl.lastSeen = now

	if cl.tokens < 1 {
		return false
	}
	cl.tokens--
	return true
}

func (rl *RateLimiter) evictIdle() {
	for {
		select {
		case <-rl.done:
			return
		case <-rl.janitor.C:
			cutoff := time.Now().Add(-idleEviction)
			rl.mu.Lock()
			for key, cl := range rl.clients {
				cl.mu.Lock()
				idle := cl.lastSeen.Before(cutoff)
				cl.mu.Unlock()
				if idle {
					delete(rl.clients, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop terminates the eviction loop.
func (rl *RateLimiter) Stop() {
	rl.janitor.Stop()
	close(rl.done)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
