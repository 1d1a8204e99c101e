// Package state holds the dashboard's client-side state in one typed
// container. Every mutation goes through a named method holding the
// write lock, so there is exactly one writer at a time and readers
// always observe a complete update.
package state

import (
	"log/slog"
	"sync"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven"
)

// Config holds the state container configuration
type Config struct {
	// Preferences persists the UI settings across sessions. Optional;
	// without it theme and sidebar state are kept in memory only.
	Preferences driven.PreferenceStore

	// Logger for persistence warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// Store is the typed state container backing the dashboard views
type Store struct {
	mu     sync.RWMutex
	prefs  driven.PreferenceStore
	logger *slog.Logger

	// auth
	user          *domain.User
	authenticated bool
	authErr       error

	// documents
	documents          []domain.Document
	liveStatus         map[string]domain.ProcessingStatus
	summary            *domain.ProcessingSummary
	uploadProgress     map[string]float64
	filters            domain.DocumentFilters
	selectedDocumentID string

	// chatbots
	chatbots          []domain.Chatbot
	selectedChatbotID string
	assignedDocs      map[string][]string

	// chat
	threads  map[string][]domain.ChatThread
	messages map[string][]domain.ChatMessage

	// company
	company     *domain.Company
	members     []domain.TeamMember
	invitations []domain.Invitation

	// ui
	theme            domain.Theme
	sidebarCollapsed bool
	notifications    []Notification
}

// NewStore creates a new state container
func NewStore(cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		prefs:          cfg.Preferences,
		logger:         logger,
		liveStatus:     make(map[string]domain.ProcessingStatus),
		uploadProgress: make(map[string]float64),
		assignedDocs:   make(map[string][]string),
		threads:        make(map[string][]domain.ChatThread),
		messages:       make(map[string][]domain.ChatMessage),
		filters:        domain.DefaultDocumentFilters(),
		theme:          domain.ThemeLight,
	}
}

// SetUser records the authenticated user
func (s *Store) SetUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.authenticated = user != nil
	s.authErr = nil
}

// User returns the authenticated user, or nil
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated reports whether a user session is active
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// SetAuthError records the last authentication failure
func (s *Store) SetAuthError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authErr = err
}

// AuthError returns the last authentication failure, or nil
func (s *Store) AuthError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authErr
}

// ClearSession drops everything tied to the signed-in user. UI settings
// survive, matching the dashboard's behaviour on logout.
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.authenticated = false
	s.authErr = nil

	s.documents = nil
	s.liveStatus = make(map[string]domain.ProcessingStatus)
	s.summary = nil
	s.uploadProgress = make(map[string]float64)
	s.filters = domain.DefaultDocumentFilters()
	s.selectedDocumentID = ""

	s.chatbots = nil
	s.selectedChatbotID = ""
	s.assignedDocs = make(map[string][]string)

	s.threads = make(map[string][]domain.ChatThread)
	s.messages = make(map[string][]domain.ChatMessage)

	s.company = nil
	s.members = nil
	s.invitations = nil
}

// SetCompany records the tenant profile
func (s *Store) SetCompany(company *domain.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.company = company
}

// Company returns the tenant profile, or nil
func (s *Store) Company() *domain.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.company == nil {
		return nil
	}
	c := *s.company
	return &c
}

// SetMembers replaces the team member list
func (s *Store) SetMembers(members []domain.TeamMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append([]domain.TeamMember(nil), members...)
}

// Members returns a copy of the team member list
func (s *Store) Members() []domain.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.TeamMember(nil), s.members...)
}

// SetInvitations replaces the invitation list
func (s *Store) SetInvitations(invitations []domain.Invitation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invitations = append([]domain.Invitation(nil), invitations...)
}

// Invitations returns a copy of the invitation list
func (s *Store) Invitations() []domain.Invitation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Invitation(nil), s.invitations...)
}

// SetChatbots replaces the chatbot list
func (s *Store) SetChatbots(bots []domain.Chatbot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatbots = append([]domain.Chatbot(nil), bots...)
}

// Chatbots returns a copy of the chatbot list
func (s *Store) Chatbots() []domain.Chatbot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Chatbot(nil), s.chatbots...)
}

// SelectChatbot marks a chatbot as the active one
func (s *Store) SelectChatbot(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedChatbotID = id
}

// SelectedChatbot returns the active chatbot, or nil
func (s *Store) SelectedChatbot() *domain.Chatbot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.chatbots {
		if s.chatbots[i].ID == s.selectedChatbotID {
			bot := s.chatbots[i]
			return &bot
		}
	}
	return nil
}

// SetAssignedDocuments replaces the assigned document ids for a chatbot
func (s *Store) SetAssignedDocuments(chatbotID string, documentIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignedDocs[chatbotID] = append([]string(nil), documentIDs...)
}

// AssignedDocuments returns the assigned document ids for a chatbot
func (s *Store) AssignedDocuments(chatbotID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.assignedDocs[chatbotID]...)
}

// AssignDocument adds a document id to a chatbot's assignment set.
// Repeating the call is a no-op.
func (s *Store) AssignDocument(chatbotID, documentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.assignedDocs[chatbotID] {
		if id == documentID {
			return
		}
	}
	s.assignedDocs[chatbotID] = append(s.assignedDocs[chatbotID], documentID)
}

// UnassignDocument removes a document id from a chatbot's assignment
// set. Repeating the call is a no-op.
func (s *Store) UnassignDocument(chatbotID, documentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.assignedDocs[chatbotID]
	for i, id := range ids {
		if id == documentID {
			s.assignedDocs[chatbotID] = append(ids[:i:i], ids[i+1:]...)
			return
		}
	}
}
