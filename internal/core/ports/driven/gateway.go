package driven

import (
	"context"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
)

// Gateway is the single chokepoint for requests to the botdesk API.
// It owns bearer-token attachment, request/response/error logging and the
// 401-triggered refresh protocol; callers see only the final outcome.
//
// Paths are relative to the configured base URL. When out is non-nil the
// response body is JSON-decoded into it.
type Gateway interface {
	// Get issues a GET request
	Get(ctx context.Context, path string, out any) error

	// Post issues a POST request with an optional JSON body
	Post(ctx context.Context, path string, body, out any) error

	// Put issues a PUT request with an optional JSON body
	Put(ctx context.Context, path string, body, out any) error

	// Patch issues a PATCH request with an optional JSON body
	Patch(ctx context.Context, path string, body, out any) error

	// Delete issues a DELETE request
	Delete(ctx context.Context, path string, out any) error

	// Upload issues a multipart/form-data POST carrying one file plus
	// any extra form fields
	Upload(ctx context.Context, path string, file domain.FileUpload, out any) error

	// Download fetches a raw payload, reading the filename from the
	// Content-Disposition header when present
	Download(ctx context.Context, path string) (*domain.FileDownload, error)
}
