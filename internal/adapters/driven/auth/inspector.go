// Package auth decodes access tokens for display purposes. Tokens are
// issued and verified by the backend; the client never holds the signing
// secret, so claims are parsed without verification and must not be
// used for authorization decisions.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven"
)

// Ensure Inspector implements TokenInspector
var _ driven.TokenInspector = (*Inspector)(nil)

// jwtClaims wraps domain.TokenClaims for JWT compatibility
type jwtClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	CompanyID string `json:"company_id"`
	jwt.RegisteredClaims
}

// Inspector decodes JWT access tokens without signature verification
type Inspector struct {
	parser *jwt.Parser
}

// NewInspector creates a new token inspector
func NewInspector() *Inspector {
	return &Inspector{parser: jwt.NewParser()}
}

// Claims extracts the payload of an access token
func (i *Inspector) Claims(tokenString string) (*domain.TokenClaims, error) {
	token, _, err := i.parser.ParseUnverified(tokenString, &jwtClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	out := &domain.TokenClaims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		CompanyID: claims.CompanyID,
	}
	if claims.UserID == "" && claims.Subject != "" {
		out.UserID = claims.Subject
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
