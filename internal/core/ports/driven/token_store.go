package driven

import "context"

// TokenStore persists the session's bearer credentials (the browser
// storage analog). Implementations return empty strings, not errors,
// for absent tokens.
//
// Only the login/registration flows and the gateway's refresh step write
// to it; every outbound request reads from it. Concurrent 401s may race
// on SetTokens - last writer wins, which is accepted behaviour.
type TokenStore interface {
	// AccessToken returns the stored access token, or "" when absent
	AccessToken(ctx context.Context) (string, error)

	// RefreshToken returns the stored refresh token, or "" when absent
	RefreshToken(ctx context.Context) (string, error)

	// SetTokens stores both credentials atomically
	SetTokens(ctx context.Context, access, refresh string) error

	// Clear removes both credentials
	Clear(ctx context.Context) error
}
