package services

import (
	"context"
	"net/url"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driving"
)

// Ensure chatbotService implements ChatbotService
var _ driving.ChatbotService = (*chatbotService)(nil)

// chatbotService implements the ChatbotService interface
type chatbotService struct {
	gateway driven.Gateway
}

// NewChatbotService creates a new ChatbotService
func NewChatbotService(gateway driven.Gateway) driving.ChatbotService {
	return &chatbotService{gateway: gateway}
}

// List fetches the company's chatbots
func (s *chatbotService) List(ctx context.Context) ([]domain.Chatbot, error) {
	var bots []domain.Chatbot
	if err := s.gateway.Get(ctx, "/chatbots", &bots); err != nil {
		return nil, err
	}
	return bots, nil
}

// Get fetches a single chatbot
func (s *chatbotService) Get(ctx context.Context, id string) (*domain.Chatbot, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}

	var bot domain.Chatbot
	if err := s.gateway.Get(ctx, "/chatbots/"+url.PathEscape(id), &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// Create makes a new chatbot from a validated draft
func (s *chatbotService) Create(ctx context.Context, draft domain.ChatbotDraft) (*domain.Chatbot, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	var bot domain.Chatbot
	if err := s.gateway.Post(ctx, "/chatbots", draft, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// Update replaces a chatbot's configuration
func (s *chatbotService) Update(ctx context.Context, id string, draft domain.ChatbotDraft) (*domain.Chatbot, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	var bot domain.Chatbot
	if err := s.gateway.Put(ctx, "/chatbots/"+url.PathEscape(id), draft, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// Delete removes a chatbot
func (s *chatbotService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.gateway.Delete(ctx, "/chatbots/"+url.PathEscape(id), nil)
}

// AssignedDocuments lists the documents backing a chatbot
func (s *chatbotService) AssignedDocuments(ctx context.Context, chatbotID string) ([]domain.Document, error) {
	if chatbotID == "" {
		return nil, domain.ErrInvalidInput
	}

	var docs []domain.Document
	if err := s.gateway.Get(ctx, "/chatbots/"+url.PathEscape(chatbotID)+"/documents", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// AssignDocument adds a document to a chatbot's knowledge base
func (s *chatbotService) AssignDocument(ctx context.Context, chatbotID, documentID string) error {
	if chatbotID == "" || documentID == "" {
		return domain.ErrInvalidInput
	}
	path := "/chatbots/" + url.PathEscape(chatbotID) + "/documents/" + url.PathEscape(documentID) + "/assign"
	return s.gateway.Post(ctx, path, nil, nil)
}

// UnassignDocument removes a document from a chatbot's knowledge base
func (s *chatbotService) UnassignDocument(ctx context.Context, chatbotID, documentID string) error {
	if chatbotID == "" || documentID == "" {
		return domain.ErrInvalidInput
	}
	path := "/chatbots/" + url.PathEscape(chatbotID) + "/documents/" + url.PathEscape(documentID) + "/unassign"
	return s.gateway.Post(ctx, path, nil, nil)
}

// UpdateBranding changes the widget appearance settings only
func (s *chatbotService) UpdateBranding(ctx context.Context, chatbotID string, branding domain.Branding) (*domain.Chatbot, error) {
	if chatbotID == "" {
		return nil, domain.ErrInvalidInput
	}

	var bot domain.Chatbot
	if err := s.gateway.Patch(ctx, "/chatbots/"+url.PathEscape(chatbotID)+"/branding", branding, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// GeneratePublicLink enables anonymous access, minting a link id
func (s *chatbotService) GeneratePublicLink(ctx context.Context, chatbotID string) (*domain.PublicLink, error) {
	if chatbotID == "" {
		return nil, domain.ErrInvalidInput
	}

	var link domain.PublicLink
	if err := s.gateway.Post(ctx, "/chatbots/"+url.PathEscape(chatbotID)+"/public-link/generate", nil, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// PublicLinkStatus reads the current public link state
func (s *chatbotService) PublicLinkStatus(ctx context.Context, chatbotID string) (*domain.PublicLink, error) {
	if chatbotID == "" {
		return nil, domain.ErrInvalidInput
	}

	var link domain.PublicLink
	if err := s.gateway.Get(ctx, "/chatbots/"+url.PathEscape(chatbotID)+"/public-link", &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// DisablePublicLink turns anonymous access off
func (s *chatbotService) DisablePublicLink(ctx context.Context, chatbotID string) error {
	if chatbotID == "" {
		return domain.ErrInvalidInput
	}
	return s.gateway.Post(ctx, "/chatbots/"+url.PathEscape(chatbotID)+"/public-link/disable", nil, nil)
}

// PublicChatbot fetches a chatbot anonymously by its public link id
func (s *chatbotService) PublicChatbot(ctx context.Context, publicLinkID string) (*domain.Chatbot, error) {
	if publicLinkID == "" {
		return nil, domain.ErrInvalidInput
	}

	var bot domain.Chatbot
	if err := s.gateway.Get(ctx, "/chatbots/public/"+url.PathEscape(publicLinkID), &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// WidgetCode fetches the embeddable widget snippet
func (s *chatbotService) WidgetCode(ctx context.Context, chatbotID string) (*domain.WidgetCode, error) {
	if chatbotID == "" {
		return nil, domain.ErrInvalidInput
	}

	var code domain.WidgetCode
	if err := s.gateway.Get(ctx, "/chatbots/"+url.PathEscape(chatbotID)+"/widget-code", &code); err != nil {
		return nil, err
	}
	return &code, nil
}

// Test sends a one-off message through the chatbot's configuration
func (s *chatbotService) Test(ctx context.Context, chatbotID, message string) (*domain.TestReply, error) {
	if chatbotID == "" || message == "" {
		return nil, domain.ErrInvalidInput
	}

	var reply domain.TestReply
	err := s.gateway.Post(ctx, "/chatbots/"+url.PathEscape(chatbotID)+"/test", map[string]string{"message": message}, &reply)
	if err != nil {
		return nil, err
	}
	return &reply, nil
}
