package driven

import "github.com/custodia-labs/botdesk-client/internal/core/domain"

// TokenInspector decodes an access token's claims without verifying the
// signature. Verification belongs to the backend; the client only needs
// identity and expiry for display and startup checks.
type TokenInspector interface {
	// Claims decodes the token payload
	Claims(token string) (*domain.TokenClaims, error)
}
