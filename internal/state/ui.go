package state

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
)

// NotificationLevel classifies a toast notification
type NotificationLevel string

const (
	NotificationInfo    NotificationLevel = "info"
	NotificationSuccess NotificationLevel = "success"
	NotificationWarning NotificationLevel = "warning"
	NotificationError   NotificationLevel = "error"
)

// Notification is a toast-style message shown to the operator
type Notification struct {
	ID        string
	Level     NotificationLevel
	Message   string
	Read      bool
	CreatedAt time.Time
}

// Hydrate loads the persisted UI settings. Call once at startup, after
// which the in-memory values are authoritative.
func (s *Store) Hydrate(ctx context.Context) {
	if s.prefs == nil {
		return
	}

	theme, err := s.prefs.Get(ctx, domain.PrefTheme)
	if err != nil {
		s.logger.Warn("failed to load theme preference", "error", err)
	}
	collapsed, err := s.prefs.Get(ctx, domain.PrefSidebarCollapsed)
	if err != nil {
		s.logger.Warn("failed to load sidebar preference", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if theme == string(domain.ThemeDark) {
		s.theme = domain.ThemeDark
	}
	s.sidebarCollapsed = collapsed == "true"
}

// SetTheme switches the colour scheme and persists the choice
func (s *Store) SetTheme(ctx context.Context, theme domain.Theme) {
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()

	if s.prefs != nil {
		if err := s.prefs.Set(ctx, domain.PrefTheme, string(theme)); err != nil {
			s.logger.Warn("failed to persist theme", "error", err)
		}
	}
}

// Theme returns the active colour scheme
func (s *Store) Theme() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetSidebarCollapsed records the sidebar state and persists it
func (s *Store) SetSidebarCollapsed(ctx context.Context, collapsed bool) {
	s.mu.Lock()
	s.sidebarCollapsed = collapsed
	s.mu.Unlock()

	if s.prefs != nil {
		value := "false"
		if collapsed {
			value = "true"
		}
		if err := s.prefs.Set(ctx, domain.PrefSidebarCollapsed, value); err != nil {
			s.logger.Warn("failed to persist sidebar state", "error", err)
		}
	}
}

// SidebarCollapsed reports whether the sidebar is collapsed
func (s *Store) SidebarCollapsed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarCollapsed
}

// Notify appends a notification and returns its id
func (s *Store) Notify(level NotificationLevel, message string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}
	s.notifications = append(s.notifications, n)
	return n.ID
}

// Notifications returns a copy of the notification list
func (s *Store) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Notification(nil), s.notifications...)
}

// UnreadCount returns the number of unread notifications
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flags a notification as read
func (s *Store) MarkRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

// Dismiss removes a notification
func (s *Store) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i:i], s.notifications[i+1:]...)
			return
		}
	}
}
