package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 24 * time.Hour

// BookingGuard provides duplicate-booking checks backed by Redis.
// Key format: booking:<guest_id>:<host_id>:<unix_start_time>
type BookingGuard struct {
	client *redis.Client
}

// NewBookingGuard creates a BookingGuard wrapping the given Redis client.
func NewBookingGuard(client *redis.Client) *BookingGuard {
	return &BookingGuard{client: client}
}

// IsDuplicate reports whether an identical booking was created recently.
func (g *BookingGuard) IsDuplicate(ctx context.Context, guestID, hostID string, startTime time.Time) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(guestID, hostID, startTime)).Result()
	if err != nil {
		return false, fmt.Errorf("duplicate check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this booking has been created (expires after guardTTL).
func (g *BookingGuard) Mark(ctx context.Context, guestID, hostID string, startTime time.Time) error {
	return g.client.Set(ctx, g.key(guestID, hostID, startTime), "1", guardTTL).Err()
}

func (g *BookingGuard) key(guestID, hostID string, startTime time.Time) string {
	return fmt.Sprintf("booking:%s:%s:%d", guestID, hostID, startTime.Unix())
}
