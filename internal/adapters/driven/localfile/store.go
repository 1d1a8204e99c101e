// Package localfile implements the client storage ports on a single
// JSON file, the default for one-off console sessions where no Redis is
// available. The file plays the role browser storage plays for the web
// dashboard: a small flat key-value bag surviving restarts.
package localfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven"
)

// Verify interface compliance
var (
	_ driven.TokenStore      = (*Store)(nil)
	_ driven.PreferenceStore = (*Store)(nil)
)

const (
	accessKey  = "token.access"
	refreshKey = "token.refresh"
	prefPrefix = "pref."
)

// Store implements both TokenStore and PreferenceStore in one file.
// Every write rewrites the file atomically via a rename.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a Store persisting to path. The parent directory is
// created on first write.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// AccessToken returns the stored access token, or "" when absent
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	return values[accessKey], nil
}

// RefreshToken returns the stored refresh token, or "" when absent
func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	return values[refreshKey], nil
}

// SetTokens stores both tokens
func (s *Store) SetTokens(ctx context.Context, access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[accessKey] = access
	values[refreshKey] = refresh
	return s.save(values)
}

// Clear removes both tokens, leaving preferences intact
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	delete(values, accessKey)
	delete(values, refreshKey)
	return s.save(values)
}

// Get returns the stored preference, or "" when unset
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	return values[prefPrefix+key], nil
}

// Set stores a preference value
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[prefPrefix+key] = value
	return s.save(values)
}

// Delete removes a preference
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	delete(values, prefPrefix+key)
	return s.save(values)
}

func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	values := make(map[string]string)
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse storage file: %w", err)
	}
	return values, nil
}

func (s *Store) save(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}
