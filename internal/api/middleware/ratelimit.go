package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/sirene/bombeiros-api/internal/api/response"
)

const limiterMaxAge = 10 * time.Minute

// RateLimiter keeps one token bucket per key. Idle buckets are evicted.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu    sync.Mutex
	store map[string]*limiterEntry
	now   func() time.Time
}

type limiterEntry struct {
	limiter *rate.Limiter
	updated time.Time
}

func NewRateLimiter(reqPerSec float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limit: rate.Limit(reqPerSec),
		burst: burst,
		store: make(map[string]*limiterEntry),
		now:   time.Now,
	}
}

// Allow consumes one token from the bucket of key.
func (r *RateLimiter) Allow(key string) bool {
	return r.get(key).AllowN(r.now(), 1)
}

func (r *RateLimiter) get(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if entry, ok := r.store[key]; ok {
		entry.updated = now
		return entry.limiter
	}

	for k, entry := range r.store {
		if now.Sub(entry.updated) > limiterMaxAge {
			delete(r.store, k)
		}
	}

	lim := rate.NewLimiter(r.limit, r.burst)
	r.store[key] = &limiterEntry{limiter: lim, updated: now}
	return lim
}

// RateLimit answers 429 once the client address exhausts its bucket.
func RateLimit(limiter *RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				c.Response().Header().Set("Retry-After", "1")
				return response.Fail(c, http.StatusTooManyRequests, "Limite de requisições excedido", nil)
			}
			return next(c)
		}
	}
}
