package domain

import (
	"regexp"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// TokenPair holds the bearer credentials issued by the API.
// Both values are opaque to the client; the access token happens to be a JWT
// and can be introspected for expiry display, but is never validated locally.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Empty reports whether no credentials are present
func (t TokenPair) Empty() bool {
	return t.AccessToken == "" && t.RefreshToken == ""
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login input before any network call is made
func (r LoginRequest) Validate() error {
	if !emailPattern.MatchString(r.Email) {
		return ErrInvalidInput
	}
	if r.Password == "" {
		return ErrInvalidInput
	}
	return nil
}

// LoginResult is returned after successful authentication or registration
type LoginResult struct {
	User   *User     `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// RegisterRequest creates a new user, optionally with a new company.
// CompanyName is required for the full registration flow and must be empty
// for the simple (company-less) flow.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name,omitempty"`
	CompanySlug string `json:"company_slug,omitempty"`
}

// Validate checks the registration input before any network call is made
func (r RegisterRequest) Validate() error {
	if !emailPattern.MatchString(r.Email) {
		return ErrInvalidInput
	}
	if len(r.Password) < 8 {
		return ErrInvalidInput
	}
	if r.FullName == "" {
		return ErrInvalidInput
	}
	return nil
}

// TokenClaims is the decoded (unverified) payload of an access token.
// Verification is the backend's job; the client only reads expiry and
// identity for display and startup checks.
type TokenClaims struct {
	UserID    string
	Email     string
	CompanyID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token expiry has passed
func (c *TokenClaims) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

// SessionInfo summarises the stored session for display
type SessionInfo struct {
	Authenticated bool
	Email         string
	ExpiresAt     time.Time
}

// Message is the generic {message} response used by the auth endpoints
type Message struct {
	Message string `json:"message"`
}
