package services

import (
	"context"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driving"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService implements the AuthService interface
type authService struct {
	gateway   driven.Gateway
	tokens    driven.TokenStore
	prefs     driven.PreferenceStore
	inspector driven.TokenInspector
}

// NewAuthService creates a new AuthService
func NewAuthService(
	gateway driven.Gateway,
	tokens driven.TokenStore,
	prefs driven.PreferenceStore,
	inspector driven.TokenInspector,
) driving.AuthService {
	return &authService{
		gateway:   gateway,
		tokens:    tokens,
		prefs:     prefs,
		inspector: inspector,
	}
}

// Login authenticates and persists the returned token pair
func (s *authService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	req := domain.LoginRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var result domain.LoginResult
	if err := s.gateway.Post(ctx, "/auth/login", req, &result); err != nil {
		return nil, err
	}

	if !result.Tokens.Empty() {
		if err := s.tokens.SetTokens(ctx, result.Tokens.AccessToken, result.Tokens.RefreshToken); err != nil {
			return nil, err
		}
	}

	return &result, nil
}

// Register creates a user and company, persisting the token pair
func (s *authService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.register(ctx, "/auth/register", req)
}

// RegisterSimple creates a user without a company
func (s *authService) RegisterSimple(ctx context.Context, req domain.RegisterRequest) (*domain.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.CompanyName = ""
	req.CompanySlug = ""
	return s.register(ctx, "/auth/register-simple", req)
}

func (s *authService) register(ctx context.Context, path string, req domain.RegisterRequest) (*domain.LoginResult, error) {
	var result domain.LoginResult
	if err := s.gateway.Post(ctx, path, req, &result); err != nil {
		return nil, err
	}

	if !result.Tokens.Empty() {
		if err := s.tokens.SetTokens(ctx, result.Tokens.AccessToken, result.Tokens.RefreshToken); err != nil {
			return nil, err
		}
	}

	return &result, nil
}

// VerifyEmail confirms the address with the emailed OTP
func (s *authService) VerifyEmail(ctx context.Context, email, otp string) (*domain.Message, error) {
	if email == "" || otp == "" {
		return nil, domain.ErrInvalidInput
	}

	var msg domain.Message
	err := s.gateway.Post(ctx, "/auth/verify-email", map[string]string{
		"email": email,
		"otp":   otp,
	}, &msg)
	if err != nil {
		return nil, err
	}

	_ = s.prefs.Delete(ctx, domain.PrefLastVerifyEmail)
	return &msg, nil
}

// ResendVerification requests a fresh verification OTP.
// The email is remembered so the verify view can prefill it later.
func (s *authService) ResendVerification(ctx context.Context, email string) (*domain.Message, error) {
	if email == "" {
		return nil, domain.ErrInvalidInput
	}

	var msg domain.Message
	err := s.gateway.Post(ctx, "/auth/resend-verification", map[string]string{"email": email}, &msg)
	if err != nil {
		return nil, err
	}

	_ = s.prefs.Set(ctx, domain.PrefLastVerifyEmail, email)
	return &msg, nil
}

// ForgotPassword starts the password reset flow
func (s *authService) ForgotPassword(ctx context.Context, email string) (*domain.Message, error) {
	if email == "" {
		return nil, domain.ErrInvalidInput
	}

	var msg domain.Message
	err := s.gateway.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}, &msg)
	if err != nil {
		return nil, err
	}

	_ = s.prefs.Set(ctx, domain.PrefLastResetEmail, email)
	return &msg, nil
}

// ResetPassword completes the reset flow with the emailed OTP
func (s *authService) ResetPassword(ctx context.Context, email, otp, newPassword string) (*domain.Message, error) {
	if email == "" || otp == "" || len(newPassword) < 8 {
		return nil, domain.ErrInvalidInput
	}

	var msg domain.Message
	err := s.gateway.Post(ctx, "/auth/reset-password", map[string]string{
		"email":        email,
		"otp":          otp,
		"new_password": newPassword,
	}, &msg)
	if err != nil {
		return nil, err
	}

	_ = s.prefs.Delete(ctx, domain.PrefLastResetEmail)
	return &msg, nil
}

// ChangePassword changes the password for the authenticated user
func (s *authService) ChangePassword(ctx context.Context, currentPassword, newPassword string) (*domain.Message, error) {
	if currentPassword == "" || len(newPassword) < 8 {
		return nil, domain.ErrInvalidInput
	}

	var msg domain.Message
	err := s.gateway.Post(ctx, "/auth/change-password", map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// Logout invalidates the refresh token server-side and purges storage.
// Local credentials are cleared even when the server call fails; the
// session is gone either way.
func (s *authService) Logout(ctx context.Context) error {
	refresh, err := s.tokens.RefreshToken(ctx)
	if err != nil {
		return err
	}

	var callErr error
	if refresh != "" {
		callErr = s.gateway.Post(ctx, "/auth/logout", map[string]string{"refresh_token": refresh}, nil)
	}

	if err := s.tokens.Clear(ctx); err != nil {
		return err
	}
	return callErr
}

// CurrentUser fetches the authenticated user
func (s *authService) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := s.gateway.Get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SessionInfo summarises the stored session without a network call
func (s *authService) SessionInfo(ctx context.Context) (*domain.SessionInfo, error) {
	access, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	if access == "" {
		return &domain.SessionInfo{}, nil
	}

	claims, err := s.inspector.Claims(access)
	if err != nil {
		// An undecodable token is still a token; the backend decides
		// whether it works.
		return &domain.SessionInfo{Authenticated: true}, nil
	}

	return &domain.SessionInfo{
		Authenticated: true,
		Email:         claims.Email,
		ExpiresAt:     claims.ExpiresAt,
	}, nil
}
