package driving

import (
	"context"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
)

// ChatService drives the chat thread endpoints
type ChatService interface {
	// CreateThread starts a conversation with a chatbot
	CreateThread(ctx context.Context, chatbotID, title string) (*domain.ChatThread, error)

	// Threads lists the conversations for a chatbot
	Threads(ctx context.Context, chatbotID string) ([]domain.ChatThread, error)

	// SendMessage posts a user message and returns the assistant reply
	SendMessage(ctx context.Context, chatbotID, threadID, content string) (*domain.ChatMessage, error)

	// Messages lists a thread's message history
	Messages(ctx context.Context, chatbotID, threadID string) ([]domain.ChatMessage, error)

	// DeleteThread removes a conversation
	DeleteThread(ctx context.Context, chatbotID, threadID string) error

	// RenameThread changes a conversation's title
	RenameThread(ctx context.Context, chatbotID, threadID, title string) error
}
