package mocks

import (
	"context"
	"sync"
)

// MockTokenStore is an in-memory TokenStore for testing
type MockTokenStore struct {
	mu      sync.RWMutex
	access  string
	refresh string

	// SetCount tracks writes for race-related assertions
	setCount   int
	clearCount int
}

// NewMockTokenStore creates a new MockTokenStore
func NewMockTokenStore() *MockTokenStore {
	return &MockTokenStore{}
}

func (m *MockTokenStore) AccessToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.access, nil
}

func (m *MockTokenStore) RefreshToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refresh, nil
}

func (m *MockTokenStore) SetTokens(ctx context.Context, access, refresh string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = access
	m.refresh = refresh
	m.setCount++
	return nil
}

func (m *MockTokenStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = ""
	m.refresh = ""
	m.clearCount++
	return nil
}

// Helper methods for testing

// SetCount returns how many times SetTokens was called
func (m *MockTokenStore) SetCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.setCount
}

// ClearCount returns how many times Clear was called
func (m *MockTokenStore) ClearCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.clearCount
}
