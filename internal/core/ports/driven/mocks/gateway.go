package mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
)

// GatewayCall records one request seen by the mock gateway
type GatewayCall struct {
	Method string
	Path   string
	Body   any
}

// MockGateway is a mock implementation of Gateway for testing.
// Responses are produced by the Handler; when nil, every call succeeds
// with an empty body.
type MockGateway struct {
	mu    sync.Mutex
	calls []GatewayCall

	// Handler returns the payload to decode into out, or an error
	Handler func(method, path string, body any) (any, error)

	// DownloadResult is returned by Download when set
	DownloadResult *domain.FileDownload
}

// NewMockGateway creates a new MockGateway
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) do(method, path string, body, out any) error {
	m.mu.Lock()
	m.calls = append(m.calls, GatewayCall{Method: method, Path: path, Body: body})
	handler := m.Handler
	m.mu.Unlock()

	if handler == nil {
		return nil
	}

	payload, err := handler(method, path, body)
	if err != nil {
		return err
	}
	if payload == nil || out == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mock gateway: marshal payload: %w", err)
	}
	return json.Unmarshal(data, out)
}

func (m *MockGateway) Get(ctx context.Context, path string, out any) error {
	return m.do("GET", path, nil, out)
}

func (m *MockGateway) Post(ctx context.Context, path string, body, out any) error {
	return m.do("POST", path, body, out)
}

func (m *MockGateway) Put(ctx context.Context, path string, body, out any) error {
	return m.do("PUT", path, body, out)
}

func (m *MockGateway) Patch(ctx context.Context, path string, body, out any) error {
	return m.do("PATCH", path, body, out)
}

func (m *MockGateway) Delete(ctx context.Context, path string, out any) error {
	return m.do("DELETE", path, nil, out)
}

func (m *MockGateway) Upload(ctx context.Context, path string, file domain.FileUpload, out any) error {
	return m.do("POST", path, file, out)
}

func (m *MockGateway) Download(ctx context.Context, path string) (*domain.FileDownload, error) {
	if err := m.do("GET", path, nil, nil); err != nil {
		return nil, err
	}
	if m.DownloadResult != nil {
		return m.DownloadResult, nil
	}
	return &domain.FileDownload{}, nil
}

// Helper methods for testing

// Calls returns a copy of the recorded calls
func (m *MockGateway) Calls() []GatewayCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]GatewayCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of recorded calls
func (m *MockGateway) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// LastCall returns the most recent call, or nil when none were made
func (m *MockGateway) LastCall() *GatewayCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return nil
	}
	call := m.calls[len(m.calls)-1]
	return &call
}

// Reset clears the recorded calls
func (m *MockGateway) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
