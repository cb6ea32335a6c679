package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const statusTTL = time.Hour

// NotificationStatusStore keeps the last webhook delivery outcome per
// submitter so the dashboard can surface it.
// Key format: notify:<email>
type NotificationStatusStore struct {
	client *redis.Client
}

// NewNotificationStatusStore creates a store wrapping the given Redis client.
func NewNotificationStatusStore(client *redis.Client) *NotificationStatusStore {
	return &NotificationStatusStore{client: client}
}

// Set records the latest delivery status for an email (expires after statusTTL).
func (s *NotificationStatusStore) Set(ctx context.Context, email, status string) error {
	return s.client.Set(ctx, s.key(email), status, statusTTL).Err()
}

// Get returns the last recorded status, or the empty string when none exists.
func (s *NotificationStatusStore) Get(ctx context.Context, email string) (string, error) {
	v, err := s.client.Get(ctx, s.key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("notification status: %w", err)
	}
	return v, nil
}

func (s *NotificationStatusStore) key(email string) string {
	return fmt.Sprintf("notify:%s", email)
}
