package state

import "github.com/custodia-labs/botdesk-client/internal/core/domain"

// SetThreads replaces the thread list for a chatbot
func (s *Store) SetThreads(chatbotID string, threads []domain.ChatThread) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[chatbotID] = append([]domain.ChatThread(nil), threads...)
}

// Threads returns a copy of the thread list for a chatbot
func (s *Store) Threads(chatbotID string) []domain.ChatThread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ChatThread(nil), s.threads[chatbotID]...)
}

// AddThread appends a newly created thread
func (s *Store) AddThread(thread domain.ChatThread) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[thread.ChatbotID] = append(s.threads[thread.ChatbotID], thread)
}

// RemoveThread deletes a thread and cascades to its message history
func (s *Store) RemoveThread(chatbotID, threadID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	threads := s.threads[chatbotID]
	for i, thread := range threads {
		if thread.ID == threadID {
			s.threads[chatbotID] = append(threads[:i:i], threads[i+1:]...)
			break
		}
	}
	delete(s.messages, threadID)
}

// RenameThread updates a thread's title in place
func (s *Store) RenameThread(chatbotID, threadID, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	threads := s.threads[chatbotID]
	for i := range threads {
		if threads[i].ID == threadID {
			threads[i].Title = title
			return
		}
	}
}

// SetMessages replaces the message history for a thread
func (s *Store) SetMessages(threadID string, msgs []domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[threadID] = append([]domain.ChatMessage(nil), msgs...)
}

// Messages returns a copy of the message history for a thread
func (s *Store) Messages(threadID string) []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ChatMessage(nil), s.messages[threadID]...)
}

// AppendMessage adds a message to a thread's history
func (s *Store) AppendMessage(msg domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[msg.ThreadID] = append(s.messages[msg.ThreadID], msg)
}
