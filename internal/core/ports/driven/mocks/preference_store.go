package mocks

import (
	"context"
	"sync"
)

// MockPreferenceStore is an in-memory PreferenceStore for testing
type MockPreferenceStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMockPreferenceStore creates a new MockPreferenceStore
func NewMockPreferenceStore() *MockPreferenceStore {
	return &MockPreferenceStore{values: make(map[string]string)}
}

func (m *MockPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MockPreferenceStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockPreferenceStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
