package services

import (
	"context"
	"net/url"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driving"
)

// Ensure documentService implements DocumentService
var _ driving.DocumentService = (*documentService)(nil)

// documentService implements the DocumentService interface
type documentService struct {
	gateway driven.Gateway
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(gateway driven.Gateway) driving.DocumentService {
	return &documentService{gateway: gateway}
}

// List fetches the company's full document list
func (s *documentService) List(ctx context.Context) ([]domain.Document, error) {
	var docs []domain.Document
	if err := s.gateway.Get(ctx, "/documents", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Get fetches a single document, including chunks when processed
func (s *documentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}

	var doc domain.Document
	if err := s.gateway.Get(ctx, "/documents/"+url.PathEscape(id), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Upload sends a document for processing
func (s *documentService) Upload(ctx context.Context, upload domain.DocumentUpload) (*domain.Document, error) {
	if err := upload.Validate(); err != nil {
		return nil, err
	}

	file := domain.FileUpload{
		Field:       "file",
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Data:        upload.Data,
		Extra:       upload.Metadata,
	}

	var doc domain.Document
	if err := s.gateway.Upload(ctx, "/documents/upload", file, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes a document
func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.gateway.Delete(ctx, "/documents/"+url.PathEscape(id), nil)
}

// Download fetches the original file
func (s *documentService) Download(ctx context.Context, id string) (*domain.FileDownload, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.gateway.Download(ctx, "/documents/download/"+url.PathEscape(id))
}

// Status fetches the live processing status for one document
func (s *documentService) Status(ctx context.Context, id string) (*domain.ProcessingStatus, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}

	var status domain.ProcessingStatus
	if err := s.gateway.Get(ctx, "/documents/"+url.PathEscape(id)+"/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ProcessingStats fetches the fleet-wide processing summary
func (s *documentService) ProcessingStats(ctx context.Context) (*domain.ProcessingSummary, error) {
	var summary domain.ProcessingSummary
	if err := s.gateway.Get(ctx, "/documents/processing-stats", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
