// Package redis implements the client storage ports on Redis, giving a
// shared credential and preference store for deployments where several
// console instances serve the same operator.
package redis

import (
	"context"
	"fmt"

	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven"
	"github.com/redis/go-redis/v9"
)

// Verify interface compliance
var _ driven.TokenStore = (*TokenStore)(nil)

const (
	// Key prefixes for Redis
	accessTokenKey  = "botdesk:token:access"
	refreshTokenKey = "botdesk:token:refresh"
)

// TokenStore implements driven.TokenStore using Redis
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a new Redis-backed TokenStore
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// AccessToken returns the stored access token, or "" when absent
func (s *TokenStore) AccessToken(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, accessTokenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	return token, nil
}

// RefreshToken returns the stored refresh token, or "" when absent
func (s *TokenStore) RefreshToken(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, refreshTokenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get refresh token: %w", err)
	}
	return token, nil
}

// SetTokens stores both tokens atomically
func (s *TokenStore) SetTokens(ctx context.Context, access, refresh string) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, accessTokenKey, access, 0)
	pipe.Set(ctx, refreshTokenKey, refresh, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set tokens: %w", err)
	}
	return nil
}

// Clear removes both tokens
func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, accessTokenKey, refreshTokenKey).Err(); err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	return nil
}
