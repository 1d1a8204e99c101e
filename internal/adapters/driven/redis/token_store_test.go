package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// setupTestRedis creates a miniredis-backed client
func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, func() {
		client.Close()
		mr.Close()
	}
}

func TestTokenStore_EmptyByDefault(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewTokenStore(client)
	ctx := context.Background()

	access, err := store.AccessToken(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if access != "" {
		t.Errorf("expected empty access token, got %q", access)
	}

	refresh, err := store.RefreshToken(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refresh != "" {
		t.Errorf("expected empty refresh token, got %q", refresh)
	}
}

func TestTokenStore_SetAndGet(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewTokenStore(client)
	ctx := context.Background()

	if err := store.SetTokens(ctx, "at-1", "rt-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	access, _ := store.AccessToken(ctx)
	refresh, _ := store.RefreshToken(ctx)
	if access != "at-1" || refresh != "rt-1" {
		t.Errorf("unexpected tokens: access=%q refresh=%q", access, refresh)
	}

	// A second write replaces both values
	if err := store.SetTokens(ctx, "at-2", "rt-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	access, _ = store.AccessToken(ctx)
	refresh, _ = store.RefreshToken(ctx)
	if access != "at-2" || refresh != "rt-2" {
		t.Errorf("tokens not replaced: access=%q refresh=%q", access, refresh)
	}
}

func TestTokenStore_Clear(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewTokenStore(client)
	ctx := context.Background()

	if err := store.SetTokens(ctx, "at", "rt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	access, _ := store.AccessToken(ctx)
	refresh, _ := store.RefreshToken(ctx)
	if access != "" || refresh != "" {
		t.Errorf("tokens not cleared: access=%q refresh=%q", access, refresh)
	}

	// Clearing an already empty store is a no-op
	if err := store.Clear(ctx); err != nil {
		t.Errorf("unexpected error on second clear: %v", err)
	}
}
