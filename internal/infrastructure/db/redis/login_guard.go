package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	defaultLoginWindow = 15 * time.Minute
)

// LoginGuard counts failed logins per client address.
// Key format: auth:login:fail:<ip>
type LoginGuard struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginGuard creates a LoginGuard. Non-positive limits fall back to
// 5 attempts per 15 minutes.
func NewLoginGuard(client *redis.Client, maxAttempts int, window time.Duration) *LoginGuard {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultLoginWindow
	}
	return &LoginGuard{client: client, maxAttempts: int64(maxAttempts), window: window}
}

// Allow reports whether ip may attempt another login.
func (g *LoginGuard) Allow(ctx context.Context, ip string) (bool, error) {
	n, err := g.client.Get(ctx, g.key(ip)).Int64()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("login guard get: %w", err)
	}
	return n < g.maxAttempts, nil
}

// Fail records a failed attempt. The window starts at the first failure.
func (g *LoginGuard) Fail(ctx context.Context, ip string) (int64, error) {
	key := g.key(ip)
	n, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("login guard incr: %w", err)
	}
	if n == 1 {
		if err := g.client.Expire(ctx, key, g.window).Err(); err != nil {
			return n, fmt.Errorf("login guard expire: %w", err)
		}
	}
	return n, nil
}

// Reset clears the counter after a successful login.
func (g *LoginGuard) Reset(ctx context.Context, ip string) error {
	return g.client.Del(ctx, g.key(ip)).Err()
}

func (g *LoginGuard) key(ip string) string {
	return "auth:login:fail:" + ip
}
