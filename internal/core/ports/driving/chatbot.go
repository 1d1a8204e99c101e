package driving

import (
	"context"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
)

// ChatbotService drives the chatbot endpoints
type ChatbotService interface {
	// List fetches the company's chatbots
	List(ctx context.Context) ([]domain.Chatbot, error)

	// Get fetches a single chatbot
	Get(ctx context.Context, id string) (*domain.Chatbot, error)

	// Create makes a new chatbot from a validated draft
	Create(ctx context.Context, draft domain.ChatbotDraft) (*domain.Chatbot, error)

	// Update replaces a chatbot's configuration
	Update(ctx context.Context, id string, draft domain.ChatbotDraft) (*domain.Chatbot, error)

	// Delete removes a chatbot
	Delete(ctx context.Context, id string) error

	// AssignedDocuments lists the documents backing a chatbot
	AssignedDocuments(ctx context.Context, chatbotID string) ([]domain.Document, error)

	// AssignDocument adds a document to a chatbot's knowledge base.
	// Idempotent: repeating the call with the same arguments is a no-op.
	AssignDocument(ctx context.Context, chatbotID, documentID string) error

	// UnassignDocument removes a document from a chatbot's knowledge base.
	// Idempotent like AssignDocument.
	UnassignDocument(ctx context.Context, chatbotID, documentID string) error

	// UpdateBranding changes the widget appearance without touching the
	// rest of the chatbot's configuration
	UpdateBranding(ctx context.Context, chatbotID string, branding domain.Branding) (*domain.Chatbot, error)

	// GeneratePublicLink enables anonymous access, minting a link id as a
	// side effect of enabling
	GeneratePublicLink(ctx context.Context, chatbotID string) (*domain.PublicLink, error)

	// PublicLinkStatus reads the current public link without changing it
	PublicLinkStatus(ctx context.Context, chatbotID string) (*domain.PublicLink, error)

	// DisablePublicLink turns anonymous access off
	DisablePublicLink(ctx context.Context, chatbotID string) error

	// PublicChatbot fetches a chatbot anonymously by its public link id
	PublicChatbot(ctx context.Context, publicLinkID string) (*domain.Chatbot, error)

	// WidgetCode fetches the embeddable widget snippet
	WidgetCode(ctx context.Context, chatbotID string) (*domain.WidgetCode, error)

	// Test sends a one-off message through the chatbot's configuration
	Test(ctx context.Context, chatbotID, message string) (*domain.TestReply, error)
}
