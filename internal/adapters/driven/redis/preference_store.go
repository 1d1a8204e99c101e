package redis

import (
	"context"
	"fmt"

	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven"
	"github.com/redis/go-redis/v9"
)

// Verify interface compliance
var _ driven.PreferenceStore = (*PreferenceStore)(nil)

const prefPrefix = "botdesk:pref:"

// PreferenceStore implements driven.PreferenceStore using Redis
type PreferenceStore struct {
	client *redis.Client
}

// NewPreferenceStore creates a new Redis-backed PreferenceStore
func NewPreferenceStore(client *redis.Client) *PreferenceStore {
	return &PreferenceStore{client: client}
}

// Get returns the stored value, or "" when the key is unset
func (s *PreferenceStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, prefPrefix+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference %s: %w", key, err)
	}
	return value, nil
}

// Set stores a preference value
func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, prefPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}
	return nil
}

// Delete removes a preference
func (s *PreferenceStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, prefPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete preference %s: %w", key, err)
	}
	return nil
}
