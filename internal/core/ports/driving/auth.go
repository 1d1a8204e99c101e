package driving

import (
	"context"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
)

// AuthService drives the session lifecycle against the auth endpoints
type AuthService interface {
	// Login authenticates and persists the returned token pair
	Login(ctx context.Context, email, password string) (*domain.LoginResult, error)

	// Register creates a user and company, persisting the token pair
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.LoginResult, error)

	// RegisterSimple creates a user without a company
	RegisterSimple(ctx context.Context, req domain.RegisterRequest) (*domain.LoginResult, error)

	// VerifyEmail confirms the address with the emailed OTP
	VerifyEmail(ctx context.Context, email, otp string) (*domain.Message, error)

	// ResendVerification requests a fresh verification OTP
	ResendVerification(ctx context.Context, email string) (*domain.Message, error)

	// ForgotPassword starts the password reset flow
	ForgotPassword(ctx context.Context, email string) (*domain.Message, error)

	// ResetPassword completes the reset flow with the emailed OTP
	ResetPassword(ctx context.Context, email, otp, newPassword string) (*domain.Message, error)

	// ChangePassword changes the password for the authenticated user
	ChangePassword(ctx context.Context, currentPassword, newPassword string) (*domain.Message, error)

	// Logout invalidates the refresh token server-side and purges storage
	Logout(ctx context.Context) error

	// CurrentUser fetches the authenticated user
	CurrentUser(ctx context.Context) (*domain.User, error)

	// SessionInfo summarises the stored session without a network call
	SessionInfo(ctx context.Context) (*domain.SessionInfo, error)
}
