package driving

import (
	"context"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
)

// DocumentService drives the document endpoints
type DocumentService interface {
	// List fetches the company's full document list
	List(ctx context.Context) ([]domain.Document, error)

	// Get fetches a single document, including chunks when processed
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Upload sends a document for processing
	Upload(ctx context.Context, upload domain.DocumentUpload) (*domain.Document, error)

	// Delete removes a document
	Delete(ctx context.Context, id string) error

	// Download fetches the original file
	Download(ctx context.Context, id string) (*domain.FileDownload, error)

	// Status fetches the live processing status for one document
	Status(ctx context.Context, id string) (*domain.ProcessingStatus, error)

	// ProcessingStats fetches the fleet-wide processing summary
	ProcessingStats(ctx context.Context) (*domain.ProcessingSummary, error)
}
