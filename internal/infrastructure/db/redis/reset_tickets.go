package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultResetWindow = 15 * time.Minute

// ResetTickets marks a password reset as requested for a bounded window.
// Key format: auth:reset:<militar_id>
type ResetTickets struct {
	client *redis.Client
	window time.Duration
}

func NewResetTickets(client *redis.Client, window time.Duration) *ResetTickets {
	if window <= 0 {
		window = defaultResetWindow
	}
	return &ResetTickets{client: client, window: window}
}

// Open starts or restarts the window for id.
func (t *ResetTickets) Open(ctx context.Context, id string) error {
	if err := t.client.Set(ctx, t.key(id), "1", t.window).Err(); err != nil {
		return fmt.Errorf("reset ticket set: %w", err)
	}
	return nil
}

// Consume deletes the ticket and reports whether it was still open.
func (t *ResetTickets) Consume(ctx context.Context, id string) (bool, error) {
	n, err := t.client.Del(ctx, t.key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("reset ticket del: %w", err)
	}
	return n > 0, nil
}

func (t *ResetTickets) key(id string) string {
	return fmt.Sprintf("auth:reset:%s", id)
}
