// Package notification implements the external notification sink over Redis.
// Each parish has one list used as an inbox; the registry only ever pushes.
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
)

const parishInboxKeyPrefix = "notifications:"

// RedisNotifier delivers decree notifications by pushing JSON messages onto
// the addressed parish's inbox list.
type RedisNotifier struct {
	client *redis.Client
}

// NewRedisNotifier constructs a Redis-backed notifier from a connection URL.
// An empty URL returns nil, meaning notifications are not configured.
func NewRedisNotifier(ctx context.Context, redisURL string) (*RedisNotifier, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisNotifier{client: client}, nil
}

// Ensure RedisNotifier implements the ports interface
var _ portssvc.Notifier = (*RedisNotifier)(nil)

func (n *RedisNotifier) Send(ctx context.Context, notification domain.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to encode notification for decree %s: %w", notification.DecreeID, err)
	}
	key := parishInboxKeyPrefix + notification.ParishID
	if err := n.client.LPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("failed to push notification for decree %s: %w", notification.DecreeID, err)
	}
	return nil
}

// Close closes the Redis connection.
func (n *RedisNotifier) Close() error {
	return n.client.Close()
}
