package services

import (
	"context"
	"net/url"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driving"
)

// Ensure chatService implements ChatService
var _ driving.ChatService = (*chatService)(nil)

// chatService implements the ChatService interface
type chatService struct {
	gateway driven.Gateway
}

// NewChatService creates a new ChatService
func NewChatService(gateway driven.Gateway) driving.ChatService {
	return &chatService{gateway: gateway}
}

func threadsPath(chatbotID string) string {
	return "/chat/" + url.PathEscape(chatbotID) + "/threads"
}

// CreateThread starts a conversation with a chatbot
func (s *chatService) CreateThread(ctx context.Context, chatbotID, title string) (*domain.ChatThread, error) {
	if chatbotID == "" {
		return nil, domain.ErrInvalidInput
	}

	var thread domain.ChatThread
	err := s.gateway.Post(ctx, threadsPath(chatbotID), map[string]string{"title": title}, &thread)
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// Threads lists the conversations for a chatbot
func (s *chatService) Threads(ctx context.Context, chatbotID string) ([]domain.ChatThread, error) {
	if chatbotID == "" {
		return nil, domain.ErrInvalidInput
	}

	var threads []domain.ChatThread
	if err := s.gateway.Get(ctx, threadsPath(chatbotID), &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

// SendMessage posts a user message and returns the assistant reply
func (s *chatService) SendMessage(ctx context.Context, chatbotID, threadID, content string) (*domain.ChatMessage, error) {
	if chatbotID == "" || threadID == "" || content == "" {
		return nil, domain.ErrInvalidInput
	}

	var msg domain.ChatMessage
	path := threadsPath(chatbotID) + "/" + url.PathEscape(threadID) + "/message"
	err := s.gateway.Post(ctx, path, map[string]string{"content": content}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// Messages lists a thread's message history
func (s *chatService) Messages(ctx context.Context, chatbotID, threadID string) ([]domain.ChatMessage, error) {
	if chatbotID == "" || threadID == "" {
		return nil, domain.ErrInvalidInput
	}

	var msgs []domain.ChatMessage
	path := threadsPath(chatbotID) + "/" + url.PathEscape(threadID) + "/messages"
	if err := s.gateway.Get(ctx, path, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// DeleteThread removes a conversation
func (s *chatService) DeleteThread(ctx context.Context, chatbotID, threadID string) error {
	if chatbotID == "" || threadID == "" {
		return domain.ErrInvalidInput
	}
	return s.gateway.Delete(ctx, threadsPath(chatbotID)+"/"+url.PathEscape(threadID), nil)
}

// RenameThread changes a conversation's title
func (s *chatService) RenameThread(ctx context.Context, chatbotID, threadID, title string) error {
	if chatbotID == "" || threadID == "" || title == "" {
		return domain.ErrInvalidInput
	}
	path := threadsPath(chatbotID) + "/" + url.PathEscape(threadID) + "/rename"
	return s.gateway.Put(ctx, path, map[string]string{"title": title}, nil)
}
