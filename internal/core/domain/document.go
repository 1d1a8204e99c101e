package domain

import "time"

// DocumentStatus is the processing lifecycle state of a document
type DocumentStatus string

const (
	DocumentStatusPending    DocumentStatus = "pending"
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusCompleted  DocumentStatus = "completed"
	DocumentStatusFailed     DocumentStatus = "failed"
	DocumentStatusDeleted    DocumentStatus = "deleted"
)

// Document represents an uploaded knowledge-base document as the API reports it
type Document struct {
	ID               string           `json:"id"`
	Filename         string           `json:"filename"`
	OriginalFilename string           `json:"original_filename,omitempty"`
	Title            string           `json:"title,omitempty"`
	Description      string           `json:"description,omitempty"`
	FileSize         int64            `json:"file_size"`
	FileType         string           `json:"file_type,omitempty"`
	MimeType         string           `json:"mime_type,omitempty"`
	CompanyID        string           `json:"company_id"`
	UploadedBy       string           `json:"uploaded_by,omitempty"`
	Status           DocumentStatus   `json:"status"`
	ChunkCount       int              `json:"chunk_count"`
	ProcessingError  string           `json:"processing_error,omitempty"`
	Chunks           []DocumentChunk  `json:"chunks,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// DocumentChunk is one extracted content chunk of a processed document
type DocumentChunk struct {
	Index    int               `json:"index"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ProcessingStatus is the live per-document payload from the status endpoint.
// A polled value always overrides the status carried by the full list.
type ProcessingStatus struct {
	Status                DocumentStatus `json:"status"`
	ChunkCount            int            `json:"chunk_count"`
	ProcessingError       string         `json:"processing_error,omitempty"`
	ProcessingStartedAt   *time.Time     `json:"processing_started_at,omitempty"`
	ProcessingCompletedAt *time.Time     `json:"processing_completed_at,omitempty"`
}

// ProcessingSummary is the fleet-wide aggregate for a company.
// It is replaced wholesale on every fetch, never merged.
type ProcessingSummary struct {
	TotalDocuments int                    `json:"total_documents"`
	StatusCounts   map[DocumentStatus]int `json:"status_counts"`
	TotalStorageMB float64                `json:"total_storage_mb"`
	TotalChunks    int                    `json:"total_chunks"`
	TotalVectors   int                    `json:"total_vectors"`
}

// DocumentUpload is the multipart payload for the upload endpoint
type DocumentUpload struct {
	Filename    string
	ContentType string
	Data        []byte
	Metadata    map[string]string
}

// Validate checks the upload before any network call is made
func (u DocumentUpload) Validate() error {
	if u.Filename == "" || len(u.Data) == 0 {
		return ErrInvalidInput
	}
	return nil
}

// DocumentFilters mirrors the list view's client-side filtering controls
type DocumentFilters struct {
	Search    string
	Status    string
	SortBy    string
	SortOrder string
}

// DefaultDocumentFilters returns the list view's initial filter state
func DefaultDocumentFilters() DocumentFilters {
	return DocumentFilters{
		Status:    "all",
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}
